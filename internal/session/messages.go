package session

import (
	"errors"

	"github.com/baditaflorin/formalized/internal/core/domain"
)

// User-facing messages.
const (
	MessageEmptyInput    = "Input text cannot be empty."
	MessageFailed        = "Failed to formalize text. Please try again."
	MessageNothingToCopy = "Nothing to copy."
	MessageBusy          = "A formalization is already in progress."
	MessageCopyFailed    = "Failed to copy text to the clipboard."
)

// MessageFor maps an error to the message a shell shows the user.
func MessageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrEmptyInput):
		return MessageEmptyInput
	case errors.Is(err, domain.ErrNothingToCopy):
		return MessageNothingToCopy
	case errors.Is(err, domain.ErrBusy):
		return MessageBusy
	default:
		return MessageFailed
	}
}
