// Package strategy builds the configured formalization strategy.
package strategy

import (
	"context"
	"fmt"

	"github.com/baditaflorin/formalized/internal/adapters/remote"
	"github.com/baditaflorin/formalized/internal/config"
	"github.com/baditaflorin/formalized/internal/core/domain"
	"github.com/baditaflorin/formalized/internal/core/rules"
	"github.com/baditaflorin/formalized/internal/ports"
)

// GeneratorFactory creates the model client used by the remote strategy.
type GeneratorFactory func(ctx context.Context, apiKey string, temperature float64) (ports.Generator, error)

// Factory builds strategies from configuration.
type Factory struct {
	logger       ports.Logger
	newGenerator GeneratorFactory
}

// NewFactory creates a factory backed by the Gemini API.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger, newGenerator: remote.NewGenAIGenerator}
}

// WithGeneratorFactory replaces the model client constructor.
func (f *Factory) WithGeneratorFactory(newGenerator GeneratorFactory) *Factory {
	f.newGenerator = newGenerator
	return f
}

// New returns the strategy named by name, configured from cfg.
func (f *Factory) New(ctx context.Context, name string, cfg *config.Config) (ports.Formalizer, error) {
	switch name {
	case config.StrategyRules:
		engine, err := NewRuleBased(f.logger)
		if err != nil {
			return nil, err
		}
		return engine, nil
	case config.StrategyRemote:
		return f.newRemote(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStrategy, name)
	}
}

// FromConfig returns the strategy selected by cfg.Strategy.
func (f *Factory) FromConfig(ctx context.Context, cfg *config.Config) (ports.Formalizer, error) {
	return f.New(ctx, cfg.Strategy, cfg)
}

// NewRuleBased returns the rule engine with the built-in rule set.
func NewRuleBased(logger ports.Logger) (*rules.Engine, error) {
	return rules.NewEngine(rules.DefaultConfig(), logger)
}

func (f *Factory) newRemote(ctx context.Context, cfg *config.Config) (ports.Formalizer, error) {
	timeout, err := cfg.RemoteTimeout()
	if err != nil {
		return nil, err
	}

	remoteConfig := remote.DefaultConfig()
	remoteConfig.Timeout = timeout
	if cfg.Remote.Model != "" {
		remoteConfig.Model = cfg.Remote.Model
	}
	if cfg.Remote.Instruction != "" {
		remoteConfig.Instruction = cfg.Remote.Instruction
	}

	generator, err := f.newGenerator(ctx, cfg.Remote.APIKey, cfg.Remote.Temperature)
	if err != nil {
		return nil, fmt.Errorf("remote strategy: %w", err)
	}

	var sanitizer ports.Sanitizer
	if cfg.Remote.Sanitize {
		sanitizer = remote.NewOutputSanitizer()
	}

	model, err := remote.NewModel(remoteConfig, generator, sanitizer, f.logger)
	if err != nil {
		return nil, fmt.Errorf("remote strategy: %w", err)
	}
	return model, nil
}
