package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/adspark/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserAccount(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("First sign-in creates a free account with the starting balance", func(t *testing.T) {
		user, err := NewUserAccount(Identity{
			UserID:      "uid-1",
			Email:       "ada@example.com",
			DisplayName: "Ada",
			PhotoURL:    "https://example.com/ada.png",
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "uid-1", user.ID)
		assert.Equal(t, int64(50), user.Tokens)
		assert.Equal(t, AccountFree, user.AccountType)
		assert.False(t, user.MarketingOptIn)
		assert.Equal(t, map[string]string{"twitter": "", "linkedin": "", "website": ""}, user.SocialLinks)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.LastLogin)
		assert.Nil(t, user.LastTokenUpdate)
	})

	t.Run("Empty user ID should return error", func(t *testing.T) {
		user, err := NewUserAccount(Identity{UserID: "  "}, mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})
}

func TestUserAccount_RecordLogin(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(48 * time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()
	mockTime.EXPECT().Now().Return(later).Once()

	user, err := NewUserAccount(Identity{UserID: "uid-1", DisplayName: "Ada"}, mockTime)
	require.NoError(t, err)

	user.RecordLogin(Identity{UserID: "uid-1", Email: "new@example.com"}, mockTime)

	assert.Equal(t, "Ada", user.DisplayName, "empty identity fields keep stored values")
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, later, user.LastLogin)
	assert.Equal(t, created, user.CreatedAt)
	assert.Equal(t, int64(50), user.Tokens)
}

func TestUserAccount_ApplyProfile(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, err := NewUserAccount(Identity{UserID: "uid-1"}, mockTime)
	require.NoError(t, err)

	name := "  Grace  "
	bio := "Growth marketer"
	user.ApplyProfile(ProfileUpdate{
		DisplayName: &name,
		Bio:         &bio,
		SocialLinks: map[string]string{"Twitter": " https://x.com/grace "},
	}, mockTime)

	assert.Equal(t, "Grace", user.DisplayName)
	assert.Equal(t, "Growth marketer", user.Bio)
	assert.Equal(t, "", user.Location)
	assert.Equal(t, "https://x.com/grace", user.SocialLinks["twitter"])
	assert.Equal(t, "", user.SocialLinks["linkedin"])
}

func TestUserAccount_CanAfford(t *testing.T) {
	user := &UserAccount{ID: "uid-1", Tokens: 10}

	assert.True(t, user.CanAfford(GenerationCost))
	assert.False(t, user.CanAfford(GenerationCost+1))
}
