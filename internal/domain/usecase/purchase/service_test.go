package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/gateway"
	mockcore "github.com/amirhossein-jamali/adspark/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/adspark/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/adspark/mocks/port/persistence"
	mockusecase "github.com/amirhossein-jamali/adspark/mocks/port/usecase"
)

type txKey struct{}

type purchaseMocks struct {
	uow          *mockpersistence.MockUnitOfWork
	purchaseRepo *mockpersistence.MockPurchaseRepository
	userRepo     *mockpersistence.MockUserRepository
	ledger       *mockusecase.MockLedgerUseCase
	payments     *mockgateway.MockPaymentGateway
	logger       *mockcore.MockLogger
}

func newTestService(t *testing.T) (*Service, *purchaseMocks) {
	m := &purchaseMocks{
		uow:          mockpersistence.NewMockUnitOfWork(t),
		purchaseRepo: mockpersistence.NewMockPurchaseRepository(t),
		userRepo:     mockpersistence.NewMockUserRepository(t),
		ledger:       mockusecase.NewMockLedgerUseCase(t),
		payments:     mockgateway.NewMockPaymentGateway(t),
		logger:       mockcore.NewMockLogger(t),
	}
	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).Maybe()

	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()

	svc := NewPurchaseService(m.uow, m.ledger, m.payments, mockTime, m.logger).(*Service)
	return svc, m
}

func basicCompletion() entity.CheckoutCompletion {
	return entity.CheckoutCompletion{
		SessionID:   "cs_test_1",
		UserID:      "u1",
		PackageID:   "basic",
		Tokens:      100,
		AmountTotal: 999,
	}
}

func TestService_CreateCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("should open a session for a catalog package", func(t *testing.T) {
		svc, m := newTestService(t)
		req := entity.CheckoutRequest{UserID: "u1", PackageID: "basic", Tokens: 100, Price: 9.99}
		m.payments.EXPECT().CreateCheckoutSession(ctx, req).Return(&entity.CheckoutSession{ID: "cs_test_1"}, nil).Once()

		session, err := svc.CreateCheckout(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "cs_test_1", session.ID)
	})

	t.Run("should reject a catalog package with the wrong price", func(t *testing.T) {
		svc, m := newTestService(t)

		_, err := svc.CreateCheckout(ctx, entity.CheckoutRequest{UserID: "u1", PackageID: "premium", Tokens: 1000, Price: 0.99})

		assert.ErrorIs(t, err, errs.ErrUnknownPackage)
		m.payments.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.CreateCheckout(ctx, entity.CheckoutRequest{PackageID: "basic"})

		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, []string{"userId", "tokens", "price"}, validation.Fields)
	})

	t.Run("should surface processor failures", func(t *testing.T) {
		svc, m := newTestService(t)
		req := entity.CheckoutRequest{UserID: "u1", PackageID: "custom", Tokens: 42, Price: 4.2}
		m.payments.EXPECT().CreateCheckoutSession(ctx, req).Return(nil, errs.ErrPayment).Once()
		m.logger.EXPECT().Error("Failed to create checkout session", mock.Anything).Once()

		_, err := svc.CreateCheckout(ctx, req)

		assert.ErrorIs(t, err, errs.ErrPayment)
	})
}

func TestService_FulfillCheckout(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txKey{}, "tx")

	t.Run("should record the purchase, credit tokens and upgrade the account", func(t *testing.T) {
		svc, m := newTestService(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetPurchaseRepository(txCtx).Return(m.purchaseRepo).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.userRepo).Once()
		m.purchaseRepo.EXPECT().GetBySessionID(txCtx, "cs_test_1").Return(nil, nil).Once()
		m.purchaseRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(p *entity.Purchase) bool {
			return p.UserID == "u1" && p.Tokens == 100 && p.Price == 9.99 &&
				p.Status == entity.PurchaseCompleted && p.SessionID == "cs_test_1"
		})).Return(nil).Once()
		m.ledger.EXPECT().ApplyDelta(txCtx, "u1", int64(100)).Return(int64(150), nil).Once()
		m.userRepo.EXPECT().UpgradeAccountType(txCtx, "u1", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).Return(true, nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		result, err := svc.FulfillCheckout(ctx, basicCompletion())

		require.NoError(t, err)
		assert.False(t, result.Duplicate)
		assert.Equal(t, int64(150), result.Balance)
		assert.Equal(t, 9.99, result.Purchase.Price)
	})

	t.Run("should not credit a session twice", func(t *testing.T) {
		svc, m := newTestService(t)
		existing := &entity.Purchase{ID: "p1", UserID: "u1", SessionID: "cs_test_1", Tokens: 100}
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetPurchaseRepository(txCtx).Return(m.purchaseRepo).Once()
		m.purchaseRepo.EXPECT().GetBySessionID(txCtx, "cs_test_1").Return(existing, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		result, err := svc.FulfillCheckout(ctx, basicCompletion())

		require.NoError(t, err)
		assert.True(t, result.Duplicate)
		assert.Same(t, existing, result.Purchase)
		m.ledger.AssertNotCalled(t, "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should roll back when crediting fails", func(t *testing.T) {
		svc, m := newTestService(t)
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetPurchaseRepository(txCtx).Return(m.purchaseRepo).Once()
		m.purchaseRepo.EXPECT().GetBySessionID(txCtx, "cs_test_1").Return(nil, nil).Once()
		m.purchaseRepo.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.ledger.EXPECT().ApplyDelta(txCtx, "u1", int64(100)).
			Return(int64(0), errs.NewPersistenceError("apply delta", errs.ErrUserNotFound)).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := svc.FulfillCheckout(ctx, basicCompletion())

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		m.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should reject completions without metadata", func(t *testing.T) {
		svc, m := newTestService(t)
		c := basicCompletion()
		c.UserID = ""
		c.Tokens = 0

		_, err := svc.FulfillCheckout(ctx, c)

		assert.ErrorIs(t, err, errs.ErrValidation)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should fail when a transaction cannot start", func(t *testing.T) {
		svc, m := newTestService(t)
		m.uow.EXPECT().Begin(ctx).Return(ctx, errors.New("pool exhausted")).Once()

		_, err := svc.FulfillCheckout(ctx, basicCompletion())

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}

func TestService_HandleWebhook(t *testing.T) {
	ctx := context.Background()
	payload := []byte(`{"id":"evt_1"}`)

	t.Run("should reject bad signatures", func(t *testing.T) {
		svc, m := newTestService(t)
		m.payments.EXPECT().VerifyWebhook(payload, "bad").
			Return(nil, &errs.PaymentVerificationError{Err: errors.New("signature mismatch")}).Once()

		_, err := svc.HandleWebhook(ctx, payload, "bad")

		assert.ErrorIs(t, err, errs.ErrPaymentVerification)
	})

	t.Run("should ignore other event types", func(t *testing.T) {
		svc, m := newTestService(t)
		m.payments.EXPECT().VerifyWebhook(payload, "sig").
			Return(&gateway.PaymentEvent{ID: "evt_1", Type: "payment_intent.created"}, nil).Once()

		result, err := svc.HandleWebhook(ctx, payload, "sig")

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("should fulfill completed checkouts", func(t *testing.T) {
		svc, m := newTestService(t)
		completion := basicCompletion()
		m.payments.EXPECT().VerifyWebhook(payload, "sig").
			Return(&gateway.PaymentEvent{ID: "evt_1", Type: gateway.EventCheckoutCompleted, Completion: &completion}, nil).Once()

		txCtx := context.WithValue(ctx, txKey{}, "tx")
		m.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		m.uow.EXPECT().GetPurchaseRepository(txCtx).Return(m.purchaseRepo).Once()
		m.uow.EXPECT().GetUserRepository(txCtx).Return(m.userRepo).Once()
		m.purchaseRepo.EXPECT().GetBySessionID(txCtx, "cs_test_1").Return(nil, nil).Once()
		m.purchaseRepo.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.ledger.EXPECT().ApplyDelta(txCtx, "u1", int64(100)).Return(int64(100), nil).Once()
		m.userRepo.EXPECT().UpgradeAccountType(txCtx, "u1", mock.Anything).Return(false, nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		result, err := svc.HandleWebhook(ctx, payload, "sig")

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.Purchase.Tokens)
		m.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
