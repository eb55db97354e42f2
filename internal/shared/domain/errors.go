package domain

import (
	"errors"
	"fmt"
)

// The three error kinds every operation in the system can fail with before
// any write happens. Callers match them with errors.Is.
var (
	// ErrNotFound marks a referenced plan, facility, user, subscription or
	// payment that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks malformed input, such as a zero-length or inverted
	// time interval.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a booking that overlaps an existing booking or
	// maintenance window.
	ErrConflict = errors.New("conflict")
)

// NotFoundError wraps ErrNotFound with the missing resource.
func NotFoundError(resource string) error {
	return fmt.Errorf("%s: %w", resource, ErrNotFound)
}

// ValidationError wraps ErrValidation with a reason.
func ValidationError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrValidation)
}

// ConflictError wraps ErrConflict with a reason.
func ConflictError(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrConflict)
}

// IsNotFound reports whether err is an ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err is an ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsConflict reports whether err is an ErrConflict.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }
