package rules

import (
	"context"
	"errors"
	"strings"

	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/ports"
)

// Name identifies the rule-based strategy.
const Name = "rules"

// Config holds configuration for the rule engine.
type Config struct {
	Separator string
	Rules     RuleSet
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Separator: DefaultSeparator,
		Rules:     DefaultRuleSet(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.Separator == "" {
		return errors.New("separator must not be empty")
	}
	for _, r := range c.Rules {
		if r.Pattern == nil {
			return errors.New("rule " + r.Name + " has no pattern")
		}
	}
	return nil
}

// Engine implements the rule-based formalizer: the rule set followed by the
// sentence capitalization pass. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	config      Config
	capitalizer *Capitalizer
	logger      ports.Logger
}

// NewEngine creates a new rule engine.
func NewEngine(config Config, logger ports.Logger) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		config:      config,
		capitalizer: NewCapitalizer(config.Separator),
		logger:      logger,
	}, nil
}

// Name returns the strategy name.
func (e *Engine) Name() string {
	return Name
}

// Rules returns the configured rule set.
func (e *Engine) Rules() RuleSet {
	return e.config.Rules
}

// Apply is the pure transformation. It fails only on blank input.
func (e *Engine) Apply(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyInput
	}
	return e.capitalizer.Rewrite(e.config.Rules.Apply(text)), nil
}

// Formalize applies the rule set to text, logging each call.
func (e *Engine) Formalize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	out, err := e.Apply(text)
	if err != nil {
		e.logger.Warn("Refusing to formalize", "error", err)
		return "", err
	}

	e.logger.Debug("Formalized text",
		"strategy", Name,
		"rules", len(e.config.Rules),
		"input_length", len(text),
		"output_length", len(out),
	)
	return out, nil
}
