package user

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
)

// EnsureAccount is called on every sign-in. The first call creates the account with the
// starting balance; later calls only refresh the login time and identity fields.
// The boolean result reports whether the account was created.
func (u *UserUseCase) EnsureAccount(ctx context.Context, identity entity.Identity) (*entity.UserAccount, bool, error) {
	if strings.TrimSpace(identity.UserID) == "" {
		return nil, false, errs.NewValidationError("user id is required", "userId")
	}

	existing, err := u.userRepo.GetByID(ctx, identity.UserID)
	if err == nil {
		return u.recordLogin(ctx, existing, identity)
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		u.logger.Error("Failed to load account", map[string]any{
			"userId": identity.UserID,
			"error":  err.Error(),
		})
		return nil, false, errs.NewPersistenceError("load account", err)
	}

	account, err := entity.NewUserAccount(identity, u.timeProvider)
	if err != nil {
		return nil, false, err
	}

	if err := u.userRepo.Create(ctx, account); err != nil {
		// Another sign-in for the same user won the race
		if errors.Is(err, errs.ErrConstraintViolation) {
			existing, getErr := u.userRepo.GetByID(ctx, identity.UserID)
			if getErr != nil {
				return nil, false, errs.NewPersistenceError("load account", getErr)
			}
			return u.recordLogin(ctx, existing, identity)
		}
		u.logger.Error("Failed to create account", map[string]any{
			"userId": identity.UserID,
			"error":  err.Error(),
		})
		return nil, false, errs.NewPersistenceError("create account", err)
	}

	u.logger.Info("Account created", map[string]any{
		"userId": account.ID,
		"tokens": account.Tokens,
	})
	return account, true, nil
}

func (u *UserUseCase) recordLogin(ctx context.Context, account *entity.UserAccount, identity entity.Identity) (*entity.UserAccount, bool, error) {
	account.RecordLogin(identity, u.timeProvider)
	if err := u.userRepo.Update(ctx, account); err != nil {
		u.logger.Error("Failed to record login", map[string]any{
			"userId": account.ID,
			"error":  err.Error(),
		})
		return nil, false, errs.NewPersistenceError("record login", err)
	}
	return account, false, nil
}
