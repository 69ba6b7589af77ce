package factura

import (
	"errors"
	"fmt"
)

// Common invoice lifecycle errors
var (
	// ErrInvoiceNotFound is returned when no persisted invoice has the
	// requested id.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrEmptyDraft is returned when a draft with no line items is finalized.
	ErrEmptyDraft = errors.New("draft has no line items")

	// ErrNoClient is returned when a draft without a client name is finalized.
	ErrNoClient = errors.New("draft has no client name")

	// ErrItemIndexOutOfRange is returned when a draft item index does not
	// refer to an existing line item.
	ErrItemIndexOutOfRange = errors.New("line item index out of range")
)

// LoadError reports an unreadable or corrupt snapshot file. It is a warning:
// the store proceeds with an empty collection and the caller decides how to
// surface it.
type LoadError struct {
	// Path is the snapshot file that could not be read.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	return fmt.Sprintf("factura: failed to load snapshot %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// StoreError reports a failed snapshot write. It is a hard error: the
// mutation that triggered it was not durably committed and the caller must
// not assume success.
type StoreError struct {
	// Op is the operation that failed (e.g., "Save", "Delete").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("factura: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("factura: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// RenderError reports a failed PDF generation. No record is added or
// replaced when rendering fails; the store never points at a missing
// artifact on the happy path.
type RenderError struct {
	// InvoiceID is the id the artifact was being rendered for.
	InvoiceID int

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("factura: rendering invoice %04d failed: %v", e.InvoiceID, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// ValidationError represents invalid user input. The offending action is
// rejected before any state mutation.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s (value: %v)", e.Field, e.Message, e.Value)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}
