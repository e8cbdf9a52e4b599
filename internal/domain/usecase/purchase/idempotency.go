package purchase

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
)

// IdempotencyHandler detects payment sessions that were already fulfilled
type IdempotencyHandler struct{}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler() *IdempotencyHandler {
	return &IdempotencyHandler{}
}

// CheckIdempotency returns the existing purchase and true when sessionID was already recorded.
// The repository passed in decides which transaction the lookup joins.
func (h *IdempotencyHandler) CheckIdempotency(
	ctx context.Context,
	purchaseRepo persistence.PurchaseRepository,
	sessionID string,
) (*entity.Purchase, bool, error) {
	existing, err := purchaseRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check for existing purchase: %w", err)
	}
	if existing == nil {
		return nil, false, nil
	}
	return existing, true, nil
}
