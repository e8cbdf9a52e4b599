package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/mocks/port/core"
	mockpersistence "github.com/amirhossein-jamali/adspark/mocks/port/persistence"
)

func newTestLedger(t *testing.T) (*Ledger, *mockpersistence.MockUserRepository, *core.MockLogger) {
	fixedTime := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mockUserRepo := mockpersistence.NewMockUserRepository(t)
	mockTime := core.NewMockTimeProvider(t)
	mockLogger := core.NewMockLogger(t)

	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	mockLogger.On("Debug", mock.Anything, mock.Anything).Return().Maybe()

	l := NewLedger(mockUserRepo, mockTime, mockLogger).(*Ledger)
	return l, mockUserRepo, mockLogger
}

func TestLedger_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should return stored balance", func(t *testing.T) {
		l, repo, _ := newTestLedger(t)
		repo.On("GetTokens", ctx, "u1").Return(int64(40), nil)

		balance, err := l.GetBalance(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, int64(40), balance)
	})

	t.Run("should return zero when no record exists", func(t *testing.T) {
		l, repo, _ := newTestLedger(t)
		repo.On("GetTokens", ctx, "ghost").Return(int64(0), errs.ErrUserNotFound)

		balance, err := l.GetBalance(ctx, "ghost")

		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("should surface store failures as persistence errors", func(t *testing.T) {
		l, repo, logger := newTestLedger(t)
		repo.On("GetTokens", ctx, "u1").Return(int64(0), errors.New("connection refused"))
		logger.On("Error", "Failed to read token balance", mock.Anything).Return()

		_, err := l.GetBalance(ctx, "u1")

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("should be stable across repeated reads", func(t *testing.T) {
		l, repo, _ := newTestLedger(t)
		repo.On("GetTokens", ctx, "u1").Return(int64(25), nil).Twice()

		first, err := l.GetBalance(ctx, "u1")
		require.NoError(t, err)
		second, err := l.GetBalance(ctx, "u1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("should reject an empty user id", func(t *testing.T) {
		l, _, _ := newTestLedger(t)

		_, err := l.GetBalance(ctx, "")

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestLedger_HasSufficientBalance(t *testing.T) {
	l, _, _ := newTestLedger(t)

	assert.True(t, l.HasSufficientBalance(10, 10))
	assert.False(t, l.HasSufficientBalance(9, 10))
}

func TestLedger_ApplyDelta(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should debit and return the new balance", func(t *testing.T) {
		l, repo, _ := newTestLedger(t)
		repo.On("ApplyTokenDelta", ctx, "u1", int64(-10), fixedTime).
			Return(persistence.TokenDelta{Previous: 50, Current: 40}, nil)

		balance, err := l.ApplyDelta(ctx, "u1", -10)

		require.NoError(t, err)
		assert.Equal(t, int64(40), balance)
	})

	t.Run("should credit purchases", func(t *testing.T) {
		l, repo, _ := newTestLedger(t)
		repo.On("ApplyTokenDelta", ctx, "u1", int64(100), fixedTime).
			Return(persistence.TokenDelta{Previous: 40, Current: 140}, nil)

		balance, err := l.ApplyDelta(ctx, "u1", 100)

		require.NoError(t, err)
		assert.Equal(t, int64(140), balance)
	})

	t.Run("should never go below zero and should warn on clamp", func(t *testing.T) {
		l, repo, logger := newTestLedger(t)
		repo.On("ApplyTokenDelta", ctx, "u1", int64(-1000), fixedTime).
			Return(persistence.TokenDelta{Previous: 5, Current: 0}, nil)
		logger.On("Warn", "Token balance clamped at zero", mock.MatchedBy(func(f map[string]any) bool {
			return f["uncollected"] == int64(995)
		})).Return().Once()

		balance, err := l.ApplyDelta(ctx, "u1", -1000)

		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("should wrap a missing user as a persistence error", func(t *testing.T) {
		l, repo, logger := newTestLedger(t)
		repo.On("ApplyTokenDelta", ctx, "ghost", int64(-10), fixedTime).
			Return(persistence.TokenDelta{}, errs.ErrUserNotFound)
		logger.On("Error", "Failed to apply token delta", mock.Anything).Return()

		_, err := l.ApplyDelta(ctx, "ghost", -10)

		assert.ErrorIs(t, err, errs.ErrPersistence)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
