package ledger

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
	coreport "github.com/amirhossein-jamali/adspark/internal/domain/port/core"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/adspark/internal/domain/port/usecase"
)

// Ledger keeps one non-negative token balance per user on top of the user repository.
// Balance changes are single atomic store operations; the ledger never reads and then writes.
type Ledger struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedger creates a new token ledger
func NewLedger(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.LedgerUseCase {
	return &Ledger{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetBalance reads the current balance. A user without a record has a balance of 0.
func (l *Ledger) GetBalance(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, errs.NewValidationError("user id is required", "userId")
	}

	tokens, err := l.userRepo.GetTokens(ctx, userID)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			return 0, nil
		}
		l.logger.Error("Failed to read token balance", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return 0, errs.NewPersistenceError("get balance", err)
	}

	return tokens, nil
}

// HasSufficientBalance compares a cached snapshot against the required amount
func (l *Ledger) HasSufficientBalance(cached, required int64) bool {
	return entity.HasSufficientBalance(cached, required)
}

// ApplyDelta adds delta to the balance, flooring at zero, and returns the new balance.
// A floor hit is logged as a warning with the amount that could not be charged.
func (l *Ledger) ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, errs.NewValidationError("user id is required", "userId")
	}

	result, err := l.userRepo.ApplyTokenDelta(ctx, userID, delta, l.timeProvider.Now())
	if err != nil {
		l.logger.Error("Failed to apply token delta", map[string]any{
			"userId": userID,
			"delta":  delta,
			"error":  err.Error(),
		})
		return 0, errs.NewPersistenceError("apply delta", err)
	}

	if result.Clamped(delta) {
		l.logger.Warn("Token balance clamped at zero", map[string]any{
			"userId":      userID,
			"delta":       delta,
			"previous":    result.Previous,
			"uncollected": -(result.Previous + delta),
		})
	}

	l.logger.Debug("Token delta applied", map[string]any{
		"userId":   userID,
		"delta":    delta,
		"previous": result.Previous,
		"balance":  result.Current,
	})

	return result.Current, nil
}
