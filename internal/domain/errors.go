package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEntry  = errors.New("duplicate entry")
	ErrNotFound        = errors.New("not found")
	ErrNoRowsAffected  = errors.New("no rows affected")
	ErrNothingToUpdate = errors.New("no fields to update")

	// ErrReferenceNotFound is returned when a name or email used to resolve a
	// foreign key matches no row.
	ErrReferenceNotFound = errors.New("referenced record not found")

	// ErrMissingParent is a foreign key violation: the row points at an id
	// that does not exist.
	ErrMissingParent = errors.New("referenced parent row does not exist")
)

// ValidationError reports a request value rejected before any database call.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
