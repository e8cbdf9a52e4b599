package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// UserUseCase manages account lifecycle and profile data
type UserUseCase interface {
	// EnsureAccount creates the account on first sign-in and refreshes last login afterwards
	EnsureAccount(ctx context.Context, identity entity.Identity) (*entity.UserAccount, bool, error)
	GetProfile(ctx context.Context, userID string) (*entity.UserAccount, error)
	UpdateProfile(ctx context.Context, userID string, update entity.ProfileUpdate) (*entity.UserAccount, error)
	UpdatePreferences(ctx context.Context, userID string, marketingOptIn bool) (*entity.UserAccount, error)
}
