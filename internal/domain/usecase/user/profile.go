package user

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
)

const (
	maxDisplayNameLength = 80
	maxBioLength         = 500
)

// GetProfile returns the account of userID
func (u *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.UserAccount, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errs.NewValidationError("user id is required", "userId")
	}

	account, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, err
		}
		return nil, errs.NewPersistenceError("load profile", err)
	}
	return account, nil
}

// UpdateProfile applies an edit of the user-facing profile fields
func (u *UserUseCase) UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.UserAccount, error) {
	if err := validateProfile(update); err != nil {
		return nil, err
	}

	account, err := u.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.ApplyProfile(update, u.timeProvider)
	if err := u.userRepo.Update(ctx, account); err != nil {
		return nil, errs.NewPersistenceError("update profile", err)
	}

	u.logger.Info("Profile updated", map[string]any{"userId": userID})
	return account, nil
}

// UpdatePreferences stores the marketing opt-in choice
func (u *UserUseCase) UpdatePreferences(ctx context.Context, userID string, marketingOptIn bool) (*entity.UserAccount, error) {
	account, err := u.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	account.MarketingOptIn = marketingOptIn
	account.UpdatedAt = u.timeProvider.Now()
	if err := u.userRepo.Update(ctx, account); err != nil {
		return nil, errs.NewPersistenceError("update preferences", err)
	}

	u.logger.Info("Preferences updated", map[string]any{
		"userId":         userID,
		"marketingOptIn": marketingOptIn,
	})
	return account, nil
}

func validateProfile(update entity.ProfileUpdate) error {
	var invalid []string
	if update.DisplayName != nil && len([]rune(strings.TrimSpace(*update.DisplayName))) > maxDisplayNameLength {
		invalid = append(invalid, "displayName")
	}
	if update.Bio != nil && len([]rune(*update.Bio)) > maxBioLength {
		invalid = append(invalid, "bio")
	}
	for platform, url := range update.SocialLinks {
		url = strings.TrimSpace(url)
		if url != "" && !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			invalid = append(invalid, "socialLinks."+strings.ToLower(platform))
		}
	}
	if len(invalid) > 0 {
		return errs.NewValidationError("invalid profile fields", invalid...)
	}
	return nil
}
