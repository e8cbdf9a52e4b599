package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
)

// UnitOfWork runs a multi-document transaction on a client session. The session rides in the
// context Begin returns, and the driver enlists every operation made with that context.
// Transactions need a replica set or sharded cluster.
type UnitOfWork struct {
	client *mongo.Client
	db     *mongo.Database
	logger coreport.Logger
}

// NewUnitOfWork creates a UnitOfWork running transactions in client sessions
func NewUnitOfWork(client *mongo.Client, db *mongo.Database, logger coreport.Logger) persistence.UnitOfWork {
	return &UnitOfWork{client: client, db: db, logger: logger}
}

func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if mongo.SessionFromContext(ctx) != nil {
		return ctx, errors.New("transaction already open in context")
	}

	session, err := u.client.StartSession()
	if err != nil {
		return ctx, fmt.Errorf("start session: %w", err)
	}
	if err := session.StartTransaction(); err != nil {
		session.EndSession(ctx)
		return ctx, fmt.Errorf("start transaction: %w", err)
	}

	u.logger.Debug("Document transaction started", nil)
	return mongo.NewSessionContext(ctx, session), nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	session := mongo.SessionFromContext(ctx)
	if session == nil {
		return errors.New("no transaction found in context")
	}
	defer session.EndSession(ctx)

	if err := session.CommitTransaction(ctx); err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the transaction; a session that already committed or aborted is not an error
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	session := mongo.SessionFromContext(ctx)
	if session == nil {
		return errors.New("no transaction found in context")
	}
	defer session.EndSession(ctx)

	err := session.AbortTransaction(ctx)
	if err != nil && isFinishedTransaction(err) {
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("rollback transaction: %w", err)
	}

	u.logger.Debug("Document transaction rolled back", nil)
	return nil
}

func (u *UnitOfWork) GetUserRepository(_ context.Context) persistence.UserRepository {
	return NewUserRepository(u.db, u.logger)
}

func (u *UnitOfWork) GetPurchaseRepository(_ context.Context) persistence.PurchaseRepository {
	return NewPurchaseRepository(u.db, u.logger)
}

func isFinishedTransaction(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "cannot call abortTransaction") ||
		strings.Contains(msg, "ended session was used")
}
