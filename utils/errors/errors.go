// Package errors provides structured error handling for the activity index.
// It defines error types with codes, messages, causes, and contextual
// information so failures can be attributed to a specific source and
// operation across the application layers.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

// Error code constants for categorizing application errors.
const (
	ErrCodeDatabase    ErrorCode = "DATABASE_ERROR"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeConfig      ErrorCode = "CONFIG_ERROR"
	ErrCodeExternalAPI ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeParse       ErrorCode = "PARSE_ERROR"
	ErrCodeTimeout     ErrorCode = "TIMEOUT_ERROR"
	ErrCodeRateLimit   ErrorCode = "RATE_LIMIT_ERROR"
	ErrCodeUnknown     ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports error
// unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// DatabaseError creates an AppError for database-related errors.
func DatabaseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeDatabase,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ValidationError creates an AppError for input validation failures.
func ValidationError(message string, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Context: context,
	}
}

// ConfigError creates an AppError for configuration problems detected before
// any work starts.
func ConfigError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeConfig,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ExternalAPIError creates an AppError for upstream transport failures and
// non-success responses.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeExternalAPI,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// ParseError creates an AppError for malformed upstream payloads.
func ParseError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// TimeoutError creates an AppError for deadline expirations.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeTimeout,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// RateLimitError creates an AppError for rate limiting failures.
func RateLimitError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeRateLimit,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// CodeOf extracts the code from a classified error. Errors that never passed
// through a constructor report ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrCodeUnknown
}

// SourceContext builds the context map every fetch error carries so operators
// can attribute the failure to a specific upstream.
func SourceContext(kind, sourceID string) map[string]interface{} {
	return map[string]interface{}{
		"source_kind": kind,
		"source_id":   sourceID,
	}
}
