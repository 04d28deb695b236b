package remote

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/ports"
)

// Name identifies the remote model strategy.
const Name = "remote"

// Defaults for the remote strategy.
const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 30 * time.Second
)

// Config holds configuration for the remote model strategy.
type Config struct {
	Model       string
	Instruction string
	// Timeout bounds one request; zero disables the bound.
	Timeout time.Duration
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Model:       DefaultModel,
		Instruction: DefaultInstruction,
		Timeout:     DefaultTimeout,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Model) == "" {
		return errors.New("model must not be empty")
	}
	if strings.TrimSpace(c.Instruction) == "" {
		return errors.New("instruction must not be empty")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

// Model formalizes text by asking a generative model. Failures are never
// retried and never yield partial output.
type Model struct {
	config    Config
	generator ports.Generator
	sanitizer ports.Sanitizer
	logger    ports.Logger
}

// NewModel creates a remote model strategy. A nil sanitizer returns responses verbatim.
func NewModel(config Config, generator ports.Generator, sanitizer ports.Sanitizer, logger ports.Logger) (*Model, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if generator == nil {
		return nil, errors.New("generator is required")
	}
	if sanitizer == nil {
		sanitizer = VerbatimSanitizer{}
	}

	return &Model{
		config:    config,
		generator: generator,
		sanitizer: sanitizer,
		logger:    logger,
	}, nil
}

// Name returns the strategy name.
func (m *Model) Name() string {
	return Name
}

// Formalize implements ports.Formalizer.
func (m *Model) Formalize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyInput
	}

	if m.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	m.logger.Debug("Requesting formalization", "model", m.config.Model, "input_length", len(text))

	raw, err := m.generator.Generate(ctx, m.config.Model, BuildPrompt(m.config.Instruction, text))
	if err != nil {
		m.logger.Error("Error formalizing text", "model", m.config.Model, "error", err)
		return "", &domain.ServiceError{Op: "generate", Err: err}
	}

	out := m.sanitizer.Sanitize(raw)
	if strings.TrimSpace(out) == "" {
		m.logger.Error("Model returned empty output", "model", m.config.Model)
		return "", &domain.ServiceError{Op: "generate", Err: errors.New("empty response")}
	}

	m.logger.Debug("Formalized text",
		"strategy", Name,
		"model", m.config.Model,
		"output_length", len(out),
		"duration", time.Since(start),
	)
	return out, nil
}
