package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when a request value cannot be interpreted.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when a write collides with an existing row
	// (for example a second user with the same email).
	ErrConflict = errors.New("conflict")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field: %s)", e.Base.Error(), e.Message, e.Field)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Base.Error(), e.Message)
	}
	return e.Base.Error()
}

// Unwrap returns the base error for errors.Is/As support.
func (e *DomainError) Unwrap() error {
	return e.Base
}

// NewNotFoundError creates a not found error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{Base: ErrNotFound, Message: resource}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{Base: ErrInvalidInput, Message: message, Field: field}
}

// NewConflictError creates a conflict error with context.
func NewConflictError(message string) *DomainError {
	return &DomainError{Base: ErrConflict, Message: message}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// DatabaseConnectionError is returned when Postgres cannot be reached with the
// current settings. Message is safe to show to API clients; Cause keeps the
// driver error for diagnostics.
type DatabaseConnectionError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *DatabaseConnectionError) Error() string {
	return e.Message
}

// Unwrap returns the underlying driver error.
func (e *DatabaseConnectionError) Unwrap() error {
	return e.Cause
}

// AsDatabaseConnectionError extracts a DatabaseConnectionError from an error chain.
func AsDatabaseConnectionError(err error) (*DatabaseConnectionError, bool) {
	var dbErr *DatabaseConnectionError
	if errors.As(err, &dbErr) {
		return dbErr, true
	}
	return nil, false
}

// IsDatabaseConnectionError checks if an error is a database connection failure.
func IsDatabaseConnectionError(err error) bool {
	_, ok := AsDatabaseConnectionError(err)
	return ok
}
