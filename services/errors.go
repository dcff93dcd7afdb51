package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a missing user, room, booking, payment or refund request.
var ErrNotFound = errors.New("not found")

// ErrConflict marks a requested interval that overlaps an occupying booking.
var ErrConflict = errors.New("booking conflict")

// ValidationError is a client-side input problem caught before any mutation.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IllegalStateError is a lifecycle operation attempted from a status that
// does not permit it. The message names the current and required status.
type IllegalStateError struct {
	Op       string
	Current  string
	Expected string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("%s requires status %s, current status is %s", e.Op, e.Expected, e.Current)
}

func notFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}
