package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/stripe/stripe-go/v82"
	checksession "github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
)

// Checkout session metadata keys
const (
	metaUserID    = "userId"
	metaPackageID = "packageId"
	metaTokens    = "tokens"
)

// Config holds the Stripe credentials and the checkout redirect targets
type Config struct {
	SecretKey     string
	WebhookSecret string
	AppURL        string
	Currency      string
}

// sessionCreator is the part of the checkout session client the gateway uses
type sessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeGateway opens checkout sessions and verifies webhook events
type StripeGateway struct {
	cfg      Config
	sessions sessionCreator
	logger   coreport.Logger
}

// NewStripeGateway creates a gateway bound to its own Stripe client
func NewStripeGateway(cfg Config, logger coreport.Logger) *StripeGateway {
	if cfg.Currency == "" {
		cfg.Currency = string(stripe.CurrencyUSD)
	}
	return &StripeGateway{
		cfg:      cfg,
		sessions: &checksession.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.SecretKey},
		logger:   logger,
	}
}

var _ gateway.PaymentGateway = (*StripeGateway)(nil)

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error) {
	params := g.newCheckoutParams(req)
	params.Context = ctx

	sess, err := g.sessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("%w: create checkout session: %v", errs.ErrPayment, err)
	}

	g.logger.Debug("Stripe checkout session opened", map[string]any{
		"sessionId": sess.ID,
		"userId":    req.UserID,
	})
	return &entity.CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// newCheckoutParams builds a one-time card payment for a single token bundle
func (g *StripeGateway) newCheckoutParams(req entity.CheckoutRequest) *stripe.CheckoutSessionParams {
	appURL := strings.TrimRight(g.cfg.AppURL, "/")
	return &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(g.cfg.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(entity.LineItemName(req.Tokens)),
					},
					UnitAmount: stripe.Int64(entity.PriceToMinorUnits(req.Price)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(fmt.Sprintf("%s/dashboard?success=true&tokens=%d", appURL, req.Tokens)),
		CancelURL:  stripe.String(appURL + "/dashboard"),
		Metadata: map[string]string{
			metaUserID:    req.UserID,
			metaPackageID: req.PackageID,
			metaTokens:    strconv.FormatInt(req.Tokens, 10),
		},
	}
}

// VerifyWebhook checks the Stripe-Signature header against the endpoint secret
func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*gateway.PaymentEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.cfg.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, &errs.PaymentVerificationError{Err: err}
	}

	out := &gateway.PaymentEvent{ID: event.ID, Type: string(event.Type)}
	if out.Type != gateway.EventCheckoutCompleted {
		return out, nil
	}

	completion, err := completionFromEvent(event)
	if err != nil {
		return nil, &errs.PaymentVerificationError{Err: err}
	}
	out.Completion = completion
	return out, nil
}

func completionFromEvent(event stripe.Event) (*entity.CheckoutCompletion, error) {
	var sess stripe.CheckoutSession
	if event.Data == nil {
		return nil, fmt.Errorf("event %s carries no data", event.ID)
	}
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return nil, fmt.Errorf("decode checkout session: %w", err)
	}

	var tokens int64
	if raw := sess.Metadata[metaTokens]; raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tokens metadata %q: %w", raw, err)
		}
		tokens = n
	}

	return &entity.CheckoutCompletion{
		SessionID:   sess.ID,
		UserID:      sess.Metadata[metaUserID],
		PackageID:   sess.Metadata[metaPackageID],
		Tokens:      tokens,
		AmountTotal: sess.AmountTotal,
	}, nil
}
