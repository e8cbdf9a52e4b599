package persistence

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// HookRepository stores generated hook records
type HookRepository interface {
	Create(ctx context.Context, hook *entity.GeneratedHook) error
	// GetByID returns ErrHookNotFound when the hook does not exist
	GetByID(ctx context.Context, id string) (*entity.GeneratedHook, error)
	// ListByUser returns the newest hooks first
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error)
}

// SearchRepository stores one record per generation request
type SearchRepository interface {
	Create(ctx context.Context, search *entity.SearchRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error)
}

// PurchaseRepository stores completed purchases
type PurchaseRepository interface {
	// Create returns ErrDuplicatePurchase when the session id was already recorded
	Create(ctx context.Context, purchase *entity.Purchase) error
	// GetBySessionID returns (nil, nil) when no purchase carries that session id
	GetBySessionID(ctx context.Context, sessionID string) (*entity.Purchase, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error)
}
