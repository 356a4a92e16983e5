package models

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Library callers match these with errors.As; the
// HTTP layer maps them onto status codes.

// ValidationError reports caller input that violates an operation contract
// (empty topic, non-positive limits, empty historical series).
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IngestionError wraps a signal source failure (network, parse, timeout).
// Tracking recovers from it with fallback records and a degraded flag; it
// never reaches the caller of Track.
type IngestionError struct {
	Source string
	Err    error
}

func NewIngestionError(source string, err error) *IngestionError {
	return &IngestionError{Source: source, Err: err}
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion from %s failed: %v", e.Source, e.Err)
}

func (e *IngestionError) Unwrap() error { return e.Err }

// NotFoundError reports a trend name absent from the supplied trend set or
// from the historical series store.
type NotFoundError struct {
	Kind string
	Name string
}

func NewNotFoundError(kind, name string) *NotFoundError {
	return &NotFoundError{Kind: kind, Name: name}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsIngestion reports whether err is (or wraps) an IngestionError.
func IsIngestion(err error) bool {
	var ie *IngestionError
	return errors.As(err, &ie)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
