// Package apperrors defines the application error taxonomy. Handlers and
// services wrap these sentinels so the HTTP layer can map them to status
// codes with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

// Resource errors
var (
	// ErrResourceNotFound indicates the requested resource does not exist
	ErrResourceNotFound = errors.New("resource not found")
	// ErrCourseNotFound indicates the requested course does not exist
	ErrCourseNotFound = errors.New("course not found")
	// ErrInstructorNotFound indicates the requested instructor does not exist
	ErrInstructorNotFound = errors.New("instructor not found")
)

// Conflict errors
var (
	// ErrConflict indicates the operation conflicts with existing state
	ErrConflict = errors.New("resource conflict")
	// ErrCourseNameTaken indicates another course already uses the name.
	// It wraps ErrConflict so both sentinels match with errors.Is.
	ErrCourseNameTaken = fmt.Errorf("%w: course name already in use", ErrConflict)
)

// Validation errors
var (
	// ErrValidationFailed indicates the input failed validation
	ErrValidationFailed = errors.New("validation failed")
	// ErrInvalidID indicates a malformed resource identifier
	ErrInvalidID = errors.New("invalid identifier")
)

// Infrastructure errors
var (
	// ErrDatabaseOperation indicates a database operation failed
	ErrDatabaseOperation = errors.New("database operation failed")
)

// CustomError provides additional context around a sentinel error
type CustomError struct {
	Err     error  // the underlying sentinel
	Message string // human-readable detail
	Details any    // optional structured details (e.g. field errors)
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped sentinel so errors.Is keeps working
func (e *CustomError) Unwrap() error {
	return e.Err
}

// New creates a CustomError wrapping the given sentinel
func New(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// NewValidationError creates a validation error with field details
func NewValidationError(message string, details any) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
		Details: details,
	}
}

// NewNotFoundError creates a not-found error for the named resource
func NewNotFoundError(resource string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewConflictError creates a conflict error with a descriptive message
func NewConflictError(message string) *CustomError {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
