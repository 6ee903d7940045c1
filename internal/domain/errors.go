package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrDependency   = errors.New("dependency failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// SessionError reports that the acting user has no active session.
// Callers are expected to send the user back to the login page.
type SessionError struct {
	Username string
	Cause    error
}

func (e *SessionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("session for %q is not active: %v", e.Username, e.Cause)
	}
	return fmt.Sprintf("session for %q is not active", e.Username)
}

func (e *SessionError) Unwrap() error { return ErrUnauthorized }

// RedirectToLogin reports whether the client should be sent to the login page.
func (e *SessionError) RedirectToLogin() bool { return true }

// DependencyError wraps a failure of storage or another required collaborator.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() []error { return []error{ErrDependency, e.Err} }

// NewDependencyError wraps err as a DependencyError for the named operation.
func NewDependencyError(op string, err error) *DependencyError {
	return &DependencyError{Op: op, Err: err}
}
