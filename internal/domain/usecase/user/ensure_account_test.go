package user

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
	coremocks "github.com/amirhossein-jamali/adspark/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/adspark/mocks/port/persistence"
)

func TestEnsureAccount(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	identity := entity.Identity{UserID: "user-1", Email: "ada@example.com", DisplayName: "Ada"}

	t.Run("Creates account with starting balance on first sign-in", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *entity.UserAccount) bool {
			return u.ID == "user-1" && u.Tokens == entity.StartingBalance && u.AccountType == entity.AccountFree
		})).Return(nil).Once()
		mockLogger.EXPECT().Info("Account created", mock.Anything).Once()

		uc := NewUserUseCase(mockRepo, mockTime, mockLogger)

		// Execute
		account, created, err := uc.EnsureAccount(ctx, identity)

		// Assertions
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(50), account.Tokens)
		assert.Equal(t, "ada@example.com", account.Email)
		assert.Equal(t, fixedTime, account.LastLogin)
		assert.Len(t, account.SocialLinks, len(entity.DefaultSocialPlatforms))
	})

	t.Run("Refreshes login for an existing account without touching tokens", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.UserAccount{
			ID:          "user-1",
			Tokens:      7,
			AccountType: entity.AccountPaid,
			LastLogin:   fixedTime.Add(-24 * time.Hour),
		}
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(existing, nil).Once()
		mockRepo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

		uc := NewUserUseCase(mockRepo, mockTime, mockLogger)

		// Execute
		account, created, err := uc.EnsureAccount(ctx, identity)

		// Assertions
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(7), account.Tokens)
		assert.Equal(t, entity.AccountPaid, account.AccountType)
		assert.Equal(t, fixedTime, account.LastLogin)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Falls back to login refresh when a concurrent sign-in created the account", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		winner := &entity.UserAccount{ID: "user-1", Tokens: 50, AccountType: entity.AccountFree}
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(winner, nil).Once()
		mockRepo.EXPECT().Update(mock.Anything, winner).Return(nil).Once()

		uc := NewUserUseCase(mockRepo, mockTime, mockLogger)

		// Execute
		account, created, err := uc.EnsureAccount(ctx, identity)

		// Assertions
		require.NoError(t, err)
		assert.False(t, created)
		assert.Same(t, winner, account)
	})

	t.Run("Rejects an empty user id", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		uc := NewUserUseCase(mockRepo, mockTime, mockLogger)

		// Execute
		_, _, err := uc.EnsureAccount(ctx, entity.Identity{})

		// Assertions
		assert.ErrorIs(t, err, errs.ErrValidation)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Wraps store failures", func(t *testing.T) {
		// Setup mocks
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errors.New("connection reset")).Once()
		mockLogger.EXPECT().Error("Failed to load account", mock.Anything).Once()

		uc := NewUserUseCase(mockRepo, mockTime, mockLogger)

		// Execute
		account, created, err := uc.EnsureAccount(ctx, identity)

		// Assertions
		assert.Nil(t, account)
		assert.False(t, created)
		assert.ErrorIs(t, err, errs.ErrPersistence)
	})
}
