package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/infrastructure/adapter/model"
)

// PurchaseRepository stores purchases in user_purchases, unique by payment session
type PurchaseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) *PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

var _ persistence.PurchaseRepository = (*PurchaseRepository)(nil)

// Create saves a new purchase, reporting a session that was already recorded as a duplicate
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	if err := conn(ctx, r.db).Create(purchaseToModel(purchase)).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
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

// GetBySessionID returns nil without error when the session has no purchase
func (r *PurchaseRepository) GetBySessionID(ctx context.Context, sessionID string) (*entity.Purchase, error) {
	var purchaseModel model.UserPurchase
	err := conn(ctx, r.db).Where("session_id = ?", sessionID).Take(&purchaseModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errs.NewPersistenceError("get purchase", err)
	}
	return purchaseToEntity(&purchaseModel), nil
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error) {
	var purchaseModels []model.UserPurchase
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&purchaseModels).Error
	if err != nil {
		return nil, errs.NewPersistenceError("list purchases", err)
	}

	purchases := make([]*entity.Purchase, 0, len(purchaseModels))
	for i := range purchaseModels {
		purchases = append(purchases, purchaseToEntity(&purchaseModels[i]))
	}
	return purchases, nil
}
