package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrBusy is returned when a flow already has a request in flight
	// for the calling session.
	ErrBusy = errors.New("request already in flight")

	// ErrCredentialRequired is returned when a high-resolution generation
	// is attempted without a personal API key on the session.
	ErrCredentialRequired = errors.New("api key required")

	// ErrPermissionDenied is returned when the image provider rejects a
	// request because the supplied API key lacks access to the model.
	ErrPermissionDenied = errors.New("permission denied")
)

// ProviderError carries an image provider failure so the transport can
// surface the provider's own message to the client unchanged.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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
