package advice

import (
	"context"
	"log/slog"
)

// NoopGenerator is a development stand-in used when no API key is configured.
// It returns a fixed message instead of calling the provider.
type NoopGenerator struct{}

// NewNoopGenerator creates a new NoopGenerator.
func NewNoopGenerator() *NoopGenerator {
	return &NoopGenerator{}
}

// Generate logs the prompt and returns placeholder advice.
func (g *NoopGenerator) Generate(_ context.Context, prompt string) (string, error) {
	slog.Info("noop_advice_generate", "prompt_chars", len(prompt))
	return "Advice generation is not configured. Set FITSTUDIO_GEMINI_KEY to enable personalized advice.", nil
}
