package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientTokens.Error() != "insufficient tokens" {
		t.Errorf("ErrInsufficientTokens has unexpected message: %s", ErrInsufficientTokens.Error())
	}
	if ErrValidation.Error() != "validation failed" {
		t.Errorf("ErrValidation has unexpected message: %s", ErrValidation.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError("missing", "product"), 4001},
		{"UnknownPackage", ErrUnknownPackage, 4002},
		{"PaymentVerification", &PaymentVerificationError{Err: errors.New("bad sig")}, 4003},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"InsufficientTokens", NewInsufficientTokensError("u1", 5, 10), 4020},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"HookNotFound", ErrHookNotFound, 4041},
		{"DuplicatePurchase", ErrDuplicatePurchase, 4090},
		{"RateLimited", ErrRateLimited, 4290},
		{"Persistence", NewPersistenceError("read", errors.New("conn refused")), 5001},
		{"Generation", NewGenerationError("http", 503, "", nil), 5020},
		{"GenerationTimeout", NewGenerationError("http", 0, "", ErrGenerationTimeout), 5040},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrUserNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"Validation", NewValidationError("missing", "tone"), http.StatusBadRequest},
		{"InsufficientTokens", NewInsufficientTokensError("u1", 0, 10), http.StatusPaymentRequired},
		{"Generation", NewGenerationError("gemini", 500, "boom", nil), http.StatusBadGateway},
		{"GenerationTimeout", NewGenerationError("gemini", 0, "", ErrGenerationTimeout), http.StatusGatewayTimeout},
		{"Persistence", NewPersistenceError("write", errors.New("down")), http.StatusInternalServerError},
		{"PaymentVerification", &PaymentVerificationError{Err: errors.New("bad")}, http.StatusBadRequest},
		{"Unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"HookNotFound", ErrHookNotFound, http.StatusNotFound},
		{"RateLimited", ErrRateLimited, http.StatusTooManyRequests},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HTTPStatus(tc.err); got != tc.expected {
				t.Errorf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("missing required parameters", "product", "tone")

	expectedErrMsg := "validation failed: missing required parameters (product, tone)"
	if err.Error() != expectedErrMsg {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, want true")
	}

	noFields := NewValidationError("tokens must be positive")
	if noFields.Error() != "validation failed: tokens must be positive" {
		t.Errorf("ValidationError.Error() = %s", noFields.Error())
	}
}

func TestInsufficientTokensError(t *testing.T) {
	err := NewInsufficientTokensError("u-789", 5, 10)
	if err == nil {
		t.Fatal("NewInsufficientTokensError returned nil")
	}

	expectedErrMsg := "insufficient tokens for user u-789: required 10, available 5"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientTokensError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInsufficientTokens) {
		t.Errorf("errors.Is(err, ErrInsufficientTokens) = false, want true")
	}

	if !IsInsufficientTokensError(fmt.Errorf("wrapped: %w", err)) {
		t.Errorf("IsInsufficientTokensError(wrapped) = false, want true")
	}
}

func TestGenerationError(t *testing.T) {
	err := NewGenerationError("http", 503, "upstream unavailable", nil)

	expectedErrMsg := "hook generation failed via http (status 503): upstream unavailable"
	if err.Error() != expectedErrMsg {
		t.Errorf("GenerationError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrGeneration) {
		t.Errorf("errors.Is(err, ErrGeneration) = false, want true")
	}

	timeout := NewGenerationError("http", 0, "", ErrGenerationTimeout)
	if !errors.Is(timeout, ErrGenerationTimeout) || !errors.Is(timeout, ErrGeneration) {
		t.Errorf("timeout generation error should match both sentinels")
	}
}

func TestPersistenceError(t *testing.T) {
	base := errors.New("connection refused")
	err := NewPersistenceError("apply delta", base)

	expectedErrMsg := "persistence failure during apply delta: connection refused"
	if err.Error() != expectedErrMsg {
		t.Errorf("PersistenceError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrPersistence) || !errors.Is(err, base) {
		t.Errorf("PersistenceError should match ErrPersistence and its cause")
	}

	// Re-wrapping keeps the innermost operation
	again := NewPersistenceError("outer", err)
	if again != err {
		t.Errorf("NewPersistenceError re-wrapped an existing persistence error")
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	if IsNotFoundError(ErrValidation) {
		t.Errorf("IsNotFoundError(ErrValidation) = true, want false")
	}

	if !IsNotFoundError(fmt.Errorf("wrapped: %w", ErrHookNotFound)) {
		t.Errorf("IsNotFoundError(wrapped ErrHookNotFound) = false, want true")
	}

	fields := LogFieldsOf(NewInsufficientTokensError("u1", 1, 10))
	if fields["error_type"] != "insufficient_tokens" {
		t.Errorf("LogFieldsOf returned %v", fields)
	}

	plain := LogFieldsOf(errors.New("plain"))
	if plain["error"] != "plain" {
		t.Errorf("LogFieldsOf(plain) = %v", plain)
	}
}
