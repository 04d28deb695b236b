package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/ports"
)

// writeAll is a package-level variable so tests can replace the system clipboard.
var writeAll = clipboard.WriteAll

// System writes to the operating system clipboard.
type System struct{}

// NewSystem returns the system clipboard.
func NewSystem() ports.Clipboard {
	return System{}
}

// Unsupported reports whether the platform has no clipboard utility.
func Unsupported() bool {
	return clipboard.Unsupported
}

// WriteAll copies text to the clipboard. Empty text is refused.
func (System) WriteAll(text string) error {
	if text == "" {
		return domain.ErrNothingToCopy
	}
	if err := writeAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard for headless shells and tests.
type Memory struct {
	Text string
}

// WriteAll stores text.
func (m *Memory) WriteAll(text string) error {
	if text == "" {
		return domain.ErrNothingToCopy
	}
	m.Text = text
	return nil
}
