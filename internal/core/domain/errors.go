package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the trimmed input has zero length.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrNothingToCopy is returned when a copy is requested before any output exists.
	ErrNothingToCopy = errors.New("nothing to copy")

	// ErrServiceUnavailable is matched by every remote model failure.
	ErrServiceUnavailable = errors.New("formalization service unavailable")

	// ErrBusy is returned when a formalization is requested while another one is in flight.
	ErrBusy = errors.New("formalization already in progress")

	// ErrUnknownStrategy is returned for strategy names no factory knows.
	ErrUnknownStrategy = errors.New("unknown formalization strategy")
)

// ServiceError describes a failed call to the remote model.
type ServiceError struct {
	Op  string
	Err error
}

func (e *ServiceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, ErrServiceUnavailable)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrServiceUnavailable, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *ServiceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrServiceUnavailable}
	}
	return []error{ErrServiceUnavailable, e.Err}
}
