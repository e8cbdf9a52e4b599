package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// HistoryUseCase lists a user's past activity, newest first
type HistoryUseCase interface {
	ListHooks(ctx context.Context, userID string, limit int) ([]*entity.GeneratedHook, error)
	ListSearches(ctx context.Context, userID string, limit int) ([]*entity.SearchRecord, error)
	ListPurchases(ctx context.Context, userID string, limit int) ([]*entity.Purchase, error)
}
