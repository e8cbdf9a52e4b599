package hook

import (
	"strings"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
)

const missingParameters = "missing required parameters"

// HookValidator checks generation and continuation requests before anything is spent
type HookValidator struct{}

// NewHookValidator creates a new HookValidator
func NewHookValidator() *HookValidator {
	return &HookValidator{}
}

// ValidateGeneration validates a metered generation request
func (v *HookValidator) ValidateGeneration(userID string, params entity.HookParams) error {
	if err := v.validateUserID(userID); err != nil {
		return err
	}
	return v.ValidateParams(params)
}

// ValidateParams requires product, audience, tone and platform
func (v *HookValidator) ValidateParams(params entity.HookParams) error {
	if missing := params.MissingFields(); len(missing) > 0 {
		return errs.NewValidationError(missingParameters, missing...)
	}
	return nil
}

// ValidateContinuation validates a metered continuation once the original hook has been resolved
func (v *HookValidator) ValidateContinuation(userID string, req entity.ContinuationRequest) error {
	if err := v.validateUserID(userID); err != nil {
		return err
	}
	if err := v.ValidatePreviousHook(req); err != nil {
		return err
	}
	return v.ValidateParams(req.Context)
}

// ValidatePreviousHook requires the content being continued
func (v *HookValidator) ValidatePreviousHook(req entity.ContinuationRequest) error {
	if strings.TrimSpace(req.PreviousHook) == "" {
		return errs.NewValidationError(missingParameters, "previousHook")
	}
	return nil
}

func (v *HookValidator) validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValidationError("user id is required", "userId")
	}
	return nil
}
