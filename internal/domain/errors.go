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
)

// Attachment errors. Both wrap a sentinel above so transport can map them
// without knowing about attachments.
var (
	ErrInvalidAttachmentType = fmt.Errorf("invalid attachment type: %w", ErrValidation)
	ErrAttachmentNotFound    = fmt.Errorf("attachment: %w", ErrNotFound)
)

// Job posting extraction errors.
var (
	ErrCredentialMissing = errors.New("extraction credential is not configured")
	ErrCredentialInvalid = errors.New("extraction credential was rejected")
	ErrExtractionEmpty   = errors.New("no job details could be extracted")
	ErrExtractionFailed  = errors.New("job posting extraction failed")
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
