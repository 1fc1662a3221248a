package service

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound matches every NotFoundError via errors.Is.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a lookup by ID with no matching record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s does not exist", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
	Value   any
}

// ValidationError reports input that failed format checks. It is never retryable.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Details))
	for i, d := range e.Details {
		parts[i] = d.Field + ": " + d.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(details ...FieldError) error {
	return &ValidationError{Details: details}
}
