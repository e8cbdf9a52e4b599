package entity

const (
	// StartingBalance is granted to every account on creation
	StartingBalance int64 = 50

	// GenerationCost is charged for each generate or continue call
	GenerationCost int64 = 10
)

// HasSufficientBalance compares a cached balance snapshot against a required amount.
// Callers refresh the snapshot before using the result for authorization.
func HasSufficientBalance(cached, required int64) bool {
	return cached >= required
}

// ClampBalance applies delta to current and floors the result at zero.
// The second result reports whether the floor was hit.
func ClampBalance(current, delta int64) (int64, bool) {
	next := current + delta
	if next < 0 {
		return 0, true
	}
	return next, false
}

// TokenBalance is a point-in-time view of a user's balance
type TokenBalance struct {
	UserID string
	Tokens int64
}
