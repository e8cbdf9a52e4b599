package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/adspark/internal/domain/entity"
	errs "github.com/amirhossein-jamali/adspark/internal/domain/error"
)

func TestHookValidator(t *testing.T) {
	v := NewHookValidator()

	testCases := []struct {
		name    string
		userID  string
		params  entity.HookParams
		wantErr bool
	}{
		{"valid", "u1", validParams(), false},
		{"missing user", "", validParams(), true},
		{"missing audience", "u1", entity.HookParams{Product: "a", Tone: "b", Platform: "c"}, true},
		{"whitespace platform", "u1", entity.HookParams{Product: "a", Audience: "x", Tone: "b", Platform: " "}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateGeneration(tc.userID, tc.params)
			if tc.wantErr {
				assert.ErrorIs(t, err, errs.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHookValidator_ValidateContinuation(t *testing.T) {
	v := NewHookValidator()

	assert.NoError(t, v.ValidateContinuation("u1", entity.ContinuationRequest{PreviousHook: "hi", Context: validParams()}))
	assert.ErrorIs(t, v.ValidateContinuation("u1", entity.ContinuationRequest{Context: validParams()}), errs.ErrValidation)
	assert.ErrorIs(t, v.ValidateContinuation("u1", entity.ContinuationRequest{PreviousHook: "hi"}), errs.ErrValidation)
}
