package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// PurchaseUseCase sells token packages
type PurchaseUseCase interface {
	CreateCheckout(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error)
	// FulfillCheckout records the purchase and credits tokens once per session
	FulfillCheckout(ctx context.Context, completion entity.CheckoutCompletion) (*entity.FulfillmentResult, error)
	// HandleWebhook verifies a payment notification and fulfills it when it is a completed checkout.
	// The result is nil for events that need no action.
	HandleWebhook(ctx context.Context, payload []byte, signature string) (*entity.FulfillmentResult, error)
}
