// Package errors defines the business errors of the domain. Each error
// carries a stable code and a user-facing message; the message is what the
// presentation layer shows when it surfaces the failure.
package errors

import (
	"barista/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	ErrorCode() string // Business error code.
	Message() string   // User-friendly error message.
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(errorCode, message string) *BaseError {
	return &BaseError{
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The messages are part of the consumer contract:
// the auth machine copies them verbatim into its error field.
var (
	ErrInvalidCredentials = NewBaseError(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	ErrUserAlreadyExists = NewBaseError(
		"USER_ALREADY_EXISTS",
		"User with this email already exists",
	)

	ErrNameRequired = NewBaseError(
		"NAME_REQUIRED",
		"Name is required",
	)

	ErrNotAuthenticated = NewBaseError(
		"NOT_AUTHENTICATED",
		"Not authenticated",
	)

	ErrValidationFailed = NewBaseError(
		"VALIDATION_FAILED",
		"Invalid card information",
	)

	// ErrInternal is the catch-all for unexpected storage failures; the
	// underlying cause is logged, never shown.
	ErrInternal = NewBaseError(
		"INTERNAL",
		"An error occurred",
	)
)
