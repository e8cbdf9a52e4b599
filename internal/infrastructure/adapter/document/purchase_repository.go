package document

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
)

// PurchaseRepository stores purchases in user_purchases; session_id carries a unique index
type PurchaseRepository struct {
	col    *mongo.Collection
	logger coreport.Logger
}

func NewPurchaseRepository(db *mongo.Database, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{col: db.Collection(colPurchases), logger: logger}
}

var _ persistence.PurchaseRepository = (*PurchaseRepository)(nil)

func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	if _, err := r.col.InsertOne(ctx, toPurchaseDoc(purchase)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.logger.Warn("Purchase for session already recorded", map[string]any{
				"sessionId": purchase.SessionID,
				"userId":    purchase.UserID,
			})
			return errs.ErrDuplicatePurchase
		}
		r.logger.Error("Failed to store purchase", map[string]any{
			"sessionId": purchase.SessionID,
			"userId":    purchase.UserID,
			"error":     err.Error(),
		})
		return errs.NewPersistenceError("create purchase", err)
	}
	return nil
}

func (r *PurchaseRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.Purchase, error) {
	var doc purchaseDoc
	if err := r.col.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, nil
		}
		return nil, errs.NewPersistenceError("get purchase", err)
	}
	return fromPurchaseDoc(&doc), nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error) {
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, limitOf(limit))
	if err != nil {
		return nil, errs.NewPersistenceError("list purchases", err)
	}
	var docs []purchaseDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errs.NewPersistenceError("list purchases", err)
	}

	purchases := make([]*entity.Purchase, 0, len(docs))
	for i := range docs {
		purchases = append(purchases, fromPurchaseDoc(&docs[i]))
	}
	return purchases, nil
}
