package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories so they commit or roll back together.
// Repositories obtained from it, and repositories called with the context Begin returns,
// take part in the same store transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	GetUserRepository(ctx context.Context) UserRepository
	GetPurchaseRepository(ctx context.Context) PurchaseRepository
}
