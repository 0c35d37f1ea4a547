package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is wrapped by every error reporting a missing venue or
// artist.
var ErrNotFound = errors.New("not found")

// ValidationError is a user-correctable problem with submitted data.
// Nothing has been written when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// PersistenceError wraps a failed write.  The transaction has been rolled
// back; the cause is meant for logs, not for users.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistence reports whether err is (or wraps) a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func notFound(what string, id uint64, cause error) error {
	return fmt.Errorf("%s %d: %w: %w", what, id, ErrNotFound, cause)
}
