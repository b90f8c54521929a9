package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Validation errors, the only ones surfaced to clients as hard failures
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// Upstream errors, recovered internally by falling back to demo data
	ErrCodeExternalService ErrorCode = "EXTERNAL_SERVICE"
	ErrCodeAPITimeout      ErrorCode = "API_TIMEOUT"
	ErrCodeAPIRateLimit    ErrorCode = "API_RATE_LIMIT"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Internal errors
	ErrCodeDatabase ErrorCode = "DATABASE"
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewInvalidInput creates a client input error (HTTP 400)
func NewInvalidInput(message string) *AppError {
	return &AppError{
		Code:     ErrCodeInvalidInput,
		Message:  message,
		HTTPCode: http.StatusBadRequest,
	}
}

// NewMissingField creates an error for a missing required field (HTTP 400)
func NewMissingField(field string) *AppError {
	return &AppError{
		Code:     ErrCodeMissingField,
		Message:  fmt.Sprintf("missing required field: %s", field),
		HTTPCode: http.StatusBadRequest,
	}
}

// NewNotFound creates a not-found error (HTTP 404)
func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:     ErrCodeNotFound,
		Message:  fmt.Sprintf("%s not found", resource),
		HTTPCode: http.StatusNotFound,
	}
}

// NewExternalService creates an upstream failure error
func NewExternalService(service string, cause error) *AppError {
	return &AppError{
		Code:     ErrCodeExternalService,
		Message:  fmt.Sprintf("%s request failed", service),
		Cause:    cause,
		HTTPCode: http.StatusBadGateway,
	}
}

// NewDatabase creates a database error (HTTP 500)
func NewDatabase(operation string, cause error) *AppError {
	return &AppError{
		Code:     ErrCodeDatabase,
		Message:  fmt.Sprintf("database %s failed", operation),
		Cause:    cause,
		HTTPCode: http.StatusInternalServerError,
	}
}

// IsClientError reports whether the error should be surfaced as a 4xx
func IsClientError(err error) bool {
	if appErr, ok := err.(*AppError); ok {
		return appErr.HTTPCode >= 400 && appErr.HTTPCode < 500
	}
	return false
}
