package error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4001
	CodeUnknownPackage      = 4002
	CodePaymentVerification = 4003
	CodeUnauthorized        = 4010
	CodeInsufficientTokens  = 4020
	CodeUserNotFound        = 4040
	CodeHookNotFound        = 4041
	CodeDuplicatePurchase   = 4090
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodePersistence       = 5001
	CodePayment           = 5002
	CodeGeneration        = 5020
	CodeGenerationTimeout = 5040
)

// Base error types
var (
	// ErrValidation is returned when a request is missing required input or carries malformed input
	ErrValidation = errors.New("validation failed")

	// ErrInsufficientTokens is returned when a user cannot cover the cost of a generation
	ErrInsufficientTokens = errors.New("insufficient tokens")

	// ErrGeneration is returned when the generation backend fails or answers with garbage
	ErrGeneration = errors.New("hook generation failed")

	// ErrGenerationTimeout is returned when the generation backend does not answer in time
	ErrGenerationTimeout = errors.New("hook generation timed out")

	// ErrPersistence is returned when the store cannot be reached or rejects a write
	ErrPersistence = errors.New("persistence failure")

	// ErrPaymentVerification is returned when a webhook signature does not verify
	ErrPaymentVerification = errors.New("payment verification failed")

	// ErrPayment is returned when the payment processor rejects a request
	ErrPayment = errors.New("payment processor failure")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrHookNotFound is returned when a referenced generated hook doesn't exist
	ErrHookNotFound = errors.New("hook not found")

	// ErrUnauthorized is returned when the caller has no valid session
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrDuplicatePurchase is returned when a payment session was already fulfilled
	ErrDuplicatePurchase = errors.New("purchase already recorded")

	// ErrUnknownPackage is returned when a checkout names a package that disagrees with the catalog
	ErrUnknownPackage = errors.New("unknown token package")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrUnknownPackage):
		return CodeUnknownPackage
	case errors.Is(err, ErrPaymentVerification):
		return CodePaymentVerification
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInsufficientTokens):
		return CodeInsufficientTokens
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrHookNotFound):
		return CodeHookNotFound
	case errors.Is(err, ErrDuplicatePurchase):
		return CodeDuplicatePurchase
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case errors.Is(err, ErrGenerationTimeout):
		return CodeGenerationTimeout
	case errors.Is(err, ErrGeneration):
		return CodeGeneration
	case errors.Is(err, ErrPayment):
		return CodePayment
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrConstraintViolation):
		return CodePersistence
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps an error to the status code the API answers with
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeValidation, CodeUnknownPackage, CodePaymentVerification:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeInsufficientTokens:
		return http.StatusPaymentRequired
	case CodeUserNotFound, CodeHookNotFound:
		return http.StatusNotFound
	case CodeDuplicatePurchase:
		return http.StatusConflict
	case CodeRateLimited:
		return http.StatusTooManyRequests
	case CodeGeneration, CodePayment:
		return http.StatusBadGateway
	case CodeGenerationTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError lists the request fields that were missing or malformed
type ValidationError struct {
	Fields []string
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s (%s)", ErrValidation, e.Reason, strings.Join(e.Fields, ", "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"reason":     e.Reason,
		"error_code": CodeValidation,
	}
}

// NewValidationError creates a validation error for the given fields
func NewValidationError(reason string, fields ...string) error {
	return &ValidationError{Fields: fields, Reason: reason}
}

// InsufficientTokensError provides detailed information about a refused spend
type InsufficientTokensError struct {
	UserID   string
	Balance  int64
	Required int64
}

// Error implements the error interface
func (e *InsufficientTokensError) Error() string {
	return fmt.Sprintf("insufficient tokens for user %s: required %d, available %d",
		e.UserID, e.Required, e.Balance)
}

// Is checks if the target error is an ErrInsufficientTokens
func (e *InsufficientTokensError) Is(target error) bool {
	return target == ErrInsufficientTokens
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientTokensError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_tokens",
		"user_id":    e.UserID,
		"balance":    e.Balance,
		"required":   e.Required,
		"error_code": CodeInsufficientTokens,
	}
}

// NewInsufficientTokensError creates a new detailed insufficient tokens error
func NewInsufficientTokensError(userID string, balance, required int64) error {
	return &InsufficientTokensError{UserID: userID, Balance: balance, Required: required}
}

// GenerationError wraps a failure of the generation backend.
// StatusCode is the upstream HTTP status when one was received, zero otherwise.
type GenerationError struct {
	Provider   string
	StatusCode int
	Detail     string
	Err        error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("%s via %s", ErrGeneration, e.Provider)
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg = msg + ": " + e.Detail
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Is checks if the target error is an ErrGeneration
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// Unwrap returns the underlying error
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *GenerationError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type":  "generation_error",
		"provider":    e.Provider,
		"status_code": e.StatusCode,
		"detail":      e.Detail,
		"error_code":  ErrorCode(e),
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewGenerationError creates a generation error for the named provider
func NewGenerationError(provider string, statusCode int, detail string, err error) error {
	return &GenerationError{Provider: provider, StatusCode: statusCode, Detail: detail, Err: err}
}

// PersistenceError wraps a store failure with the operation that hit it
type PersistenceError struct {
	Operation string
	Err       error
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s during %s: %v", ErrPersistence, e.Operation, e.Err)
}

// Is checks if the target error is an ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Unwrap returns the underlying error
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PersistenceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "persistence_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": CodePersistence,
	}
}

// NewPersistenceError wraps err unless it already is a persistence error
func NewPersistenceError(operation string, err error) error {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Operation: operation, Err: err}
}

// PaymentVerificationError wraps a webhook signature or payload failure
type PaymentVerificationError struct {
	Err error
}

// Error implements the error interface
func (e *PaymentVerificationError) Error() string {
	return e.Err.Error()
}

// Is checks if the target error is an ErrPaymentVerification
func (e *PaymentVerificationError) Is(target error) bool {
	return target == ErrPaymentVerification
}

// Unwrap returns the underlying error
func (e *PaymentVerificationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PaymentVerificationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "payment_verification_error",
		"error":      e.Err.Error(),
		"error_code": CodePaymentVerification,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrHookNotFound)
}

// IsInsufficientTokensError checks if the error is a refused spend
func IsInsufficientTokensError(err error) bool {
	return errors.Is(err, ErrInsufficientTokens)
}

// LogFieldsOf returns the structured fields of err when it carries any
func LogFieldsOf(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error()}
}
