package usecase

import "context"

// LedgerUseCase maintains one non-negative token balance per user
type LedgerUseCase interface {
	// GetBalance returns 0 when the user has no record
	GetBalance(ctx context.Context, userID string) (int64, error)
	// HasSufficientBalance compares a cached snapshot; refresh it before authorizing
	HasSufficientBalance(cached, required int64) bool
	// ApplyDelta applies max(0, balance+delta) atomically and returns the new balance
	ApplyDelta(ctx context.Context, userID string, delta int64) (int64, error)
}
