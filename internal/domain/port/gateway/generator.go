package gateway

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// HookGenerator produces marketing copy from structured parameters.
// Implementations return GenerationError for every failure.
type HookGenerator interface {
	// Name identifies the backend in logs and errors
	Name() string
	// Generate returns one or more hook variants
	Generate(ctx context.Context, params entity.HookParams) ([]string, error)
	// Continue extends a previous hook with an optional user prompt
	Continue(ctx context.Context, req entity.ContinuationRequest) (string, error)
}
