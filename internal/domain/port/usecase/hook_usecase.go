package usecase

import (
	"context"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
)

// HookUseCase runs generations, metered for signed-in users and unmetered for the proxy routes
type HookUseCase interface {
	// GenerateHooks validates, checks balance, generates, logs and charges in that order
	GenerateHooks(ctx context.Context, userID string, params entity.HookParams) (*entity.GenerationResult, error)
	// ContinueHook follows the same order for a continuation and logs one record
	ContinueHook(ctx context.Context, userID string, req entity.ContinuationRequest) (*entity.GenerationResult, error)
	// PreviewHooks forwards to the generator without metering or logging
	PreviewHooks(ctx context.Context, params entity.HookParams) ([]string, error)
	// PreviewContinuation forwards a continuation without metering or logging
	PreviewContinuation(ctx context.Context, req entity.ContinuationRequest) (string, error)
}
