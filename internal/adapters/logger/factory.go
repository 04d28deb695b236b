package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/formalized/internal/ports"
)

// Backend names a logging implementation.
const (
	BackendStandard = "l"
	BackendZap      = "zap"
	BackendNone     = "none"
)

// Options selects and configures a logger backend.
type Options struct {
	Backend string
	JSON    bool
	// File is the log destination; empty means Output (or stdout).
	File   string
	Output io.Writer
	Debug  bool
}

// New creates the logger described by opts.
func New(opts Options) (ports.Logger, error) {
	switch opts.Backend {
	case "", BackendStandard:
		output := opts.Output
		if output == nil {
			output = os.Stdout
		}
		if opts.File != "" {
			file, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
			if err != nil {
				return nil, fmt.Errorf("failed to open log file: %w", err)
			}
			output = file
		}
		logger, err := NewCustomStdLogger(defaultConfig(output, opts.JSON), opts.Debug)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		return logger, nil
	case BackendZap:
		logger, err := NewZapLogger(opts.File, opts.JSON, opts.Debug)
		if err != nil {
			return nil, fmt.Errorf("failed to create zap logger: %w", err)
		}
		return logger, nil
	case BackendNone:
		return NewNopLogger(), nil
	default:
		return nil, fmt.Errorf("unknown logging backend %q", opts.Backend)
	}
}
