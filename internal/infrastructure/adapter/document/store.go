package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/config"
)

// Collection names
const (
	colUsers     = "users"
	colHooks     = "generated_hooks"
	colSearches  = "user_searches"
	colPurchases = "user_purchases"
)

// Manager owns the MongoDB client and hands out the document-backed persistence ports
type Manager struct {
	config       config.DatabaseConfig
	client       *mongo.Client
	db           *mongo.Database
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewManager creates a new document store manager
func NewManager(cfg config.DatabaseConfig, logger coreport.Logger, timeProvider coreport.TimeProvider) *Manager {
	return &Manager{config: cfg, logger: logger, timeProvider: timeProvider}
}

// Connect opens the client and waits until the server answers a ping
func (m *Manager) Connect(ctx context.Context) error {
	m.logger.Info("Connecting to document store", map[string]any{
		"database": m.config.Mongo.Database,
	})

	opts := options.Client().
		ApplyURI(m.config.Mongo.URI).
		SetServerSelectionTimeout(5 * time.Second)
	if m.config.MaxOpenConns > 0 {
		opts.SetMaxPoolSize(uint64(m.config.MaxOpenConns))
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return fmt.Errorf("failed to create mongo client: %w", err)
	}

	attempts := max(m.config.RetryAttempts, 1)
	delay := m.config.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}
	for attempt := 1; ; attempt++ {
		err = client.Ping(ctx, readpref.Primary())
		if err == nil {
			break
		}
		if attempt >= attempts || !isTransient(err) {
			_ = client.Disconnect(context.Background())
			return fmt.Errorf("failed to connect to document store: %w", err)
		}
		m.logger.Warn("Document store unreachable, retrying", map[string]any{
			"attempt":    attempt,
			"maxRetries": attempts,
			"error":      err.Error(),
		})
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			_ = client.Disconnect(context.Background())
			return ctx.Err()
		}
	}

	m.client = client
	m.db = client.Database(m.config.Mongo.Database)
	m.logger.Info("Successfully connected to document store", map[string]any{
		"database": m.config.Mongo.Database,
	})
	return nil
}

// Migrate creates the indexes every collection relies on
func (m *Manager) Migrate(ctx context.Context) error {
	for col, indexes := range migrationIndexes() {
		if len(indexes) == 0 {
			continue
		}
		if _, err := m.db.Collection(col).Indexes().CreateMany(ctx, indexes); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	m.logger.Info("Document store indexes ensured", nil)
	return nil
}

// Ping checks the connection, used by the health endpoint
func (m *Manager) Ping(ctx context.Context) error {
	if m.client == nil {
		return errors.New("document store not connected")
	}
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (m *Manager) Close() error {
	m.logger.Info("Closing document store connection", nil)
	if m.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return m.client.Disconnect(ctx)
}

func (m *Manager) UnitOfWork() persistence.UnitOfWork {
	return NewUnitOfWork(m.client, m.db, m.logger)
}

func (m *Manager) UserRepository() persistence.UserRepository {
	return NewUserRepository(m.db, m.logger)
}

func (m *Manager) HookRepository() persistence.HookRepository {
	return NewHookRepository(m.db, m.logger)
}

func (m *Manager) SearchRepository() persistence.SearchRepository {
	return NewSearchRepository(m.db, m.logger)
}

func (m *Manager) PurchaseRepository() persistence.PurchaseRepository {
	return NewPurchaseRepository(m.db, m.logger)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func isTransient(err error) bool {
	return mongo.IsNetworkError(err) || mongo.IsTimeout(err)
}

// migrationIndexes returns the index definitions for all collections
func migrationIndexes() map[string][]mongo.IndexModel {
	byUserNewest := bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}
	return map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
		colHooks: {
			{Keys: byUserNewest},
			{
				Keys:    bson.D{{Key: "original_hook_id", Value: 1}},
				Options: options.Index().SetSparse(true),
			},
		},
		colSearches: {
			{Keys: byUserNewest},
		},
		colPurchases: {
			{
				Keys:    bson.D{{Key: "session_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: byUserNewest},
		},
	}
}

// limitOf converts a history limit into find options, newest first
func limitOf(limit int) *options.FindOptionsBuilder {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return opts
}
