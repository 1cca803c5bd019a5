package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an asset or operation does not exist for the owner
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks contract violations by the caller (nil IDs, negative windows...)
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports a malformed asset or operation rejected at ingestion
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidArgument) match validation failures
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
