package ports

import "context"

// Formalizer defines a formalization strategy.
type Formalizer interface {
	// Name identifies the strategy in logs and responses.
	Name() string
	// Formalize rewrites text into a more formal register.
	Formalize(ctx context.Context, text string) (string, error)
}

// Generator sends a prompt to a generative model and returns its text.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Sanitizer cleans model output before it is shown.
type Sanitizer interface {
	Sanitize(text string) string
}

// Clipboard receives copied output.
type Clipboard interface {
	WriteAll(text string) error
}
