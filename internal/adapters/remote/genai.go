package remote

import (
	"context"
	"errors"
	"fmt"

	"github.com/baditaflorin/formalized/internal/ports"
	"google.golang.org/genai"
)

// GenAIGenerator sends prompts to the Gemini API.
type GenAIGenerator struct {
	client      *genai.Client
	temperature *float32
}

// NewGenAIGenerator creates a Gemini-backed generator. A negative temperature
// leaves the model default in place.
func NewGenAIGenerator(ctx context.Context, apiKey string, temperature float64) (ports.Generator, error) {
	if apiKey == "" {
		return nil, errors.New("GenAI API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	g := &GenAIGenerator{client: client}
	if temperature >= 0 {
		t := float32(temperature)
		g.temperature = &t
	}
	return g, nil
}

// Generate implements ports.Generator.
func (g *GenAIGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	var config *genai.GenerateContentConfig
	if g.temperature != nil {
		config = &genai.GenerateContentConfig{Temperature: g.temperature}
	}

	result, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 {
		return "", errors.New("no candidates returned")
	}
	return result.Text(), nil
}
