package domain

import "errors"

var (
	ErrProductNotFound = errors.New("Product not found")
	ErrInvalidID       = errors.New("Invalid product ID")
	ErrSKUConflict     = errors.New("SKU must be unique")
)

// ValidationError reports a request field that failed validation.
// It maps to a 400 response at the HTTP layer.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
