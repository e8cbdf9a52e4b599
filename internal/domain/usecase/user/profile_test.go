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

func strPtr(s string) *string { return &s }

func TestProfile(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	newUseCase := func(t *testing.T) (*UserUseCase, *persistencemocks.MockUserRepository, *coremocks.MockLogger) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
		return NewUserUseCase(mockRepo, mockTime, mockLogger).(*UserUseCase), mockRepo, mockLogger
	}

	t.Run("GetProfile returns not found untouched", func(t *testing.T) {
		uc, mockRepo, _ := newUseCase(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, errs.ErrUserNotFound).Once()

		_, err := uc.GetProfile(ctx, "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		assert.NotErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("GetProfile wraps store failures", func(t *testing.T) {
		uc, mockRepo, _ := newUseCase(t)
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(nil, errors.New("timeout")).Once()

		_, err := uc.GetProfile(ctx, "user-1")

		assert.ErrorIs(t, err, errs.ErrPersistence)
	})

	t.Run("UpdateProfile applies the edit", func(t *testing.T) {
		uc, mockRepo, _ := newUseCase(t)
		account := &entity.UserAccount{ID: "user-1", Tokens: 20, SocialLinks: map[string]string{"twitter": ""}}
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(account, nil).Once()
		mockRepo.EXPECT().Update(mock.Anything, account).Return(nil).Once()

		updated, err := uc.UpdateProfile(ctx, "user-1", entity.ProfileUpdate{
			DisplayName: strPtr("  Grace  "),
			Bio:         strPtr("Builds compilers"),
			SocialLinks: map[string]string{"Twitter": "https://twitter.com/grace"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Grace", updated.DisplayName)
		assert.Equal(t, "Builds compilers", updated.Bio)
		assert.Equal(t, "https://twitter.com/grace", updated.SocialLinks["twitter"])
		assert.Equal(t, int64(20), updated.Tokens)
		assert.Equal(t, fixedTime, updated.UpdatedAt)
	})

	t.Run("UpdateProfile rejects non-URL social links", func(t *testing.T) {
		uc, mockRepo, _ := newUseCase(t)

		_, err := uc.UpdateProfile(ctx, "user-1", entity.ProfileUpdate{
			SocialLinks: map[string]string{"LinkedIn": "not a url"},
		})

		var validation *errs.ValidationError
		require.ErrorAs(t, err, &validation)
		assert.Equal(t, []string{"socialLinks.linkedin"}, validation.Fields)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("UpdatePreferences stores the opt-in", func(t *testing.T) {
		uc, mockRepo, _ := newUseCase(t)
		account := &entity.UserAccount{ID: "user-1"}
		mockRepo.EXPECT().GetByID(mock.Anything, "user-1").Return(account, nil).Once()
		mockRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(u *entity.UserAccount) bool {
			return u.MarketingOptIn
		})).Return(nil).Once()

		updated, err := uc.UpdatePreferences(ctx, "user-1", true)

		require.NoError(t, err)
		assert.True(t, updated.MarketingOptIn)
	})

	t.Run("UpdatePreferences requires a user id", func(t *testing.T) {
		uc, _, _ := newUseCase(t)

		_, err := uc.UpdatePreferences(ctx, " ", true)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}
