package core

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned (wrapped) when no record with the requested
	// id currently exists in the store.
	ErrNotFound = errors.New("book not found")
)

// InvalidInputError reports caller-supplied data failing a precondition:
// a blank title or author on Add, or a search with no active criterion.
// It is always recoverable by correcting the request; the store returns it
// without mutating state.
type InvalidInputError struct {
	Field   string // field (or operation input) that failed validation
	Message string // human-readable description
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input for '%s': %s", e.Field, e.Message)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie *InvalidInputError
	return errors.As(err, &ie)
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
