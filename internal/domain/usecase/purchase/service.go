package purchase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
)

// Service opens checkout sessions and turns completed payments into tokens
type Service struct {
	uow          persistence.UnitOfWork
	ledger       usecase.LedgerUseCase
	payments     gateway.PaymentGateway
	validator    *CheckoutValidator
	idempotency  *IdempotencyHandler
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	uow persistence.UnitOfWork,
	ledger usecase.LedgerUseCase,
	payments gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.PurchaseUseCase {
	return &Service{
		uow:          uow,
		ledger:       ledger,
		payments:     payments,
		validator:    NewCheckoutValidator(),
		idempotency:  NewIdempotencyHandler(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateCheckout opens a payment session for a token package
func (s *Service) CreateCheckout(ctx context.Context, req entity.CheckoutRequest) (*entity.CheckoutSession, error) {
	if err := s.validator.ValidateCheckout(req); err != nil {
		return nil, err
	}

	session, err := s.payments.CreateCheckoutSession(ctx, req)
	if err != nil {
		s.logger.Error("Failed to create checkout session", map[string]any{
			"userId":    req.UserID,
			"packageId": req.PackageID,
			"error":     err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Checkout session created", map[string]any{
		"userId":    req.UserID,
		"packageId": req.PackageID,
		"tokens":    req.Tokens,
		"sessionId": session.ID,
	})
	return session, nil
}

// HandleWebhook verifies a notification and fulfills completed checkouts
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) (*entity.FulfillmentResult, error) {
	event, err := s.payments.VerifyWebhook(payload, signature)
	if err != nil {
		s.logger.Warn("Rejected payment webhook", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	if event.Type != gateway.EventCheckoutCompleted || event.Completion == nil {
		s.logger.Debug("Ignoring payment event", map[string]any{
			"eventId":   event.ID,
			"eventType": event.Type,
		})
		return nil, nil
	}

	return s.FulfillCheckout(ctx, *event.Completion)
}

// FulfillCheckout records the purchase and credits the tokens in one store transaction.
// A session that was already fulfilled is reported as a duplicate and credits nothing.
func (s *Service) FulfillCheckout(ctx context.Context, completion entity.CheckoutCompletion) (*entity.FulfillmentResult, error) {
	if err := s.validator.ValidateCompletion(completion); err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, errs.NewPersistenceError("begin fulfillment", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				s.logger.Error("Failed to roll back fulfillment", map[string]any{
					"sessionId": completion.SessionID,
					"error":     rbErr.Error(),
				})
			}
		}
	}()

	purchaseRepo := s.uow.GetPurchaseRepository(txCtx)

	existing, found, err := s.idempotency.CheckIdempotency(txCtx, purchaseRepo, completion.SessionID)
	if err != nil {
		return nil, errs.NewPersistenceError("check purchase", err)
	}
	if found {
		s.logger.Info("Checkout already fulfilled", map[string]any{
			"sessionId": completion.SessionID,
			"userId":    existing.UserID,
		})
		return &entity.FulfillmentResult{Purchase: existing, Duplicate: true}, nil
	}

	purchase := &entity.Purchase{
		ID:        uuid.NewString(),
		UserID:    completion.UserID,
		PackageID: completion.PackageID,
		Tokens:    completion.Tokens,
		Price:     entity.MinorUnitsToPrice(completion.AmountTotal),
		Status:    entity.PurchaseCompleted,
		SessionID: completion.SessionID,
		CreatedAt: s.timeProvider.Now(),
	}
	if err := purchaseRepo.Create(txCtx, purchase); err != nil {
		if errors.Is(err, errs.ErrDuplicatePurchase) {
			return &entity.FulfillmentResult{Purchase: purchase, Duplicate: true}, nil
		}
		return nil, errs.NewPersistenceError("record purchase", err)
	}

	balance, err := s.ledger.ApplyDelta(txCtx, completion.UserID, completion.Tokens)
	if err != nil {
		return nil, err
	}

	if err := s.markPaid(txCtx, completion.UserID); err != nil {
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, errs.NewPersistenceError("commit fulfillment", err)
	}
	committed = true

	s.logger.Info("Tokens purchased", map[string]any{
		"userId":    completion.UserID,
		"packageId": completion.PackageID,
		"tokens":    completion.Tokens,
		"price":     purchase.Price,
		"balance":   balance,
		"sessionId": completion.SessionID,
	})

	return &entity.FulfillmentResult{Purchase: purchase, Balance: balance}, nil
}

// markPaid upgrades a free account after its first purchase
func (s *Service) markPaid(ctx context.Context, userID string) error {
	upgraded, err := s.uow.GetUserRepository(ctx).UpgradeAccountType(ctx, userID, s.timeProvider.Now())
	if err != nil {
		return errs.NewPersistenceError("upgrade account", err)
	}
	if upgraded {
		s.logger.Debug("Account upgraded", map[string]any{"userId": userID})
	}
	return nil
}
