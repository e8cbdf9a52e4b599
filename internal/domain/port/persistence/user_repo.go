package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// TokenDelta is the outcome of an atomic balance change
type TokenDelta struct {
	Previous int64
	Current  int64
}

// Clamped reports whether the zero floor swallowed part of delta
func (d TokenDelta) Clamped(delta int64) bool {
	return d.Previous+delta < 0
}

// UserRepository stores user accounts and their token balance
type UserRepository interface {
	// Create stores a new account
	//
	// Possible errors:
	// - ErrConstraintViolation: account with same ID already exists
	// - PersistenceError: store unreachable
	Create(ctx context.Context, user *entity.UserAccount) error

	// GetByID returns ErrUserNotFound when no account exists
	GetByID(ctx context.Context, id string) (*entity.UserAccount, error)

	// Update writes profile, preference and login fields. Neither the balance nor the account
	// type is written through Update.
	Update(ctx context.Context, user *entity.UserAccount) error

	// GetTokens reads the balance only; ErrUserNotFound when no account exists
	GetTokens(ctx context.Context, id string) (int64, error)

	// ApplyTokenDelta sets tokens to max(0, tokens+delta) in one atomic store operation and
	// stamps the last token update time.
	//
	// Possible errors:
	// - ErrUserNotFound: no account with that ID
	// - PersistenceError: store unreachable
	ApplyTokenDelta(ctx context.Context, id string, delta int64, at time.Time) (TokenDelta, error)

	// UpgradeAccountType moves a free account to paid with a conditional write and reports
	// whether this call changed it. An already paid account returns false and no error.
	//
	// Possible errors:
	// - ErrUserNotFound: no account with that ID
	// - PersistenceError: store unreachable
	UpgradeAccountType(ctx context.Context, id string, at time.Time) (bool, error)
}
