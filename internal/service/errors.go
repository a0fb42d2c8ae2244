package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jacklucas/notes-api/models"
)

var (
	// ErrValidation is the sentinel every [ValidationError] unwraps to.
	// Handlers match on it to return 400 with per-field details.
	ErrValidation = errors.New("validation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// ValidationError carries the field-level findings of a failed request
// validation. It unwraps to [ErrValidation] so callers can match the class
// without inspecting fields.
type ValidationError struct {
	Fields []models.FieldErrorItem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Name, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// newValidationError builds a [ValidationError] from (field, message) pairs.
func newValidationError(fields ...models.FieldErrorItem) *ValidationError {
	return &ValidationError{Fields: fields}
}

func fieldError(name, message string) models.FieldErrorItem {
	return models.FieldErrorItem{Name: name, Message: message}
}
