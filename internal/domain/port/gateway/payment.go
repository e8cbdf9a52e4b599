package gateway

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// Payment event types the service reacts to
const (
	EventCheckoutCompleted = "checkout.session.completed"
)

// PaymentEvent is a verified webhook notification. Completion is set only for
// checkout completed events.
type PaymentEvent struct {
	ID         string
	Type       string
	Completion *entity.CheckoutCompletion
}

// PaymentGateway talks to the payment processor
type PaymentGateway interface {
	// CreateCheckoutSession opens a one-time payment session for a token purchase
	CreateCheckoutSession(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error)
	// VerifyWebhook checks the signature and decodes the event; PaymentVerificationError on failure
	VerifyWebhook(payload []byte, signature string) (*PaymentEvent, error)
}
