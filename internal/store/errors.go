package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("store: habit not found")
	ErrCorruptData = errors.New("store: corrupt data file")
	ErrLocked      = errors.New("store: data file locked by another habitd instance")
)

// ValidationError marks bad user input so the shell can report it inline
// next to the offending field instead of as a fatal error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: invalid %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
