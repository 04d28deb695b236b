package formalizer

import (
	"context"
	"time"

	"github.com/baditaflorin/formalized/internal/adapters/logger"
	"github.com/baditaflorin/formalized/internal/adapters/remote"
	"github.com/baditaflorin/formalized/internal/core/rules"
	"github.com/baditaflorin/formalized/internal/ports"
	"github.com/baditaflorin/l"
)

// Formalizer rewrites informal text with either the built-in rules or a
// generative model.
type Formalizer struct {
	strategy ports.Formalizer
	logger   ports.Logger
}

// Option defines a functional option for configuring Formalizer.
type Option func(*formalizerConfig)

type formalizerConfig struct {
	Logger    ports.Logger
	Remote    bool
	APIKey    string
	Model     string
	Timeout   time.Duration
	Raw       bool
	Generator ports.Generator
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *formalizerConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithRemoteModel selects the generative model strategy using the Gemini API.
func WithRemoteModel(apiKey, model string) Option {
	return func(cfg *formalizerConfig) {
		cfg.Remote = true
		cfg.APIKey = apiKey
		cfg.Model = model
	}
}

// WithGenerator selects the generative model strategy with a custom model client.
func WithGenerator(g ports.Generator) Option {
	return func(cfg *formalizerConfig) {
		cfg.Remote = true
		cfg.Generator = g
	}
}

// WithTimeout bounds each remote request.
func WithTimeout(d time.Duration) Option {
	return func(cfg *formalizerConfig) {
		cfg.Timeout = d
	}
}

// WithRawOutput returns model responses verbatim instead of sanitizing them.
func WithRawOutput() Option {
	return func(cfg *formalizerConfig) {
		cfg.Raw = true
	}
}

// New creates a new Formalizer. Without options it uses the rule-based strategy.
func New(opts ...Option) (*Formalizer, error) {
	config := &formalizerConfig{
		Timeout: remote.DefaultTimeout,
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if !config.Remote {
		engine, err := rules.NewEngine(rules.DefaultConfig(), config.Logger)
		if err != nil {
			return nil, err
		}
		return &Formalizer{strategy: engine, logger: config.Logger}, nil
	}

	generator := config.Generator
	if generator == nil {
		var err error
		generator, err = remote.NewGenAIGenerator(context.Background(), config.APIKey, -1)
		if err != nil {
			return nil, err
		}
	}

	remoteConfig := remote.DefaultConfig()
	remoteConfig.Timeout = config.Timeout
	if config.Model != "" {
		remoteConfig.Model = config.Model
	}

	var sanitizer ports.Sanitizer
	if !config.Raw {
		sanitizer = remote.NewOutputSanitizer()
	}

	model, err := remote.NewModel(remoteConfig, generator, sanitizer, config.Logger)
	if err != nil {
		return nil, err
	}
	return &Formalizer{strategy: model, logger: config.Logger}, nil
}

// Formalize rewrites text. Blank input fails with domain.ErrEmptyInput; remote
// failures match domain.ErrServiceUnavailable.
func (f *Formalizer) Formalize(ctx context.Context, text string) (string, error) {
	return f.strategy.Formalize(ctx, text)
}

// Strategy returns the name of the active strategy.
func (f *Formalizer) Strategy() string {
	return f.strategy.Name()
}

// Close releases the logger.
func (f *Formalizer) Close() error {
	return f.logger.Close()
}
