package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fitstudio/internal/adapters/advice"
)

// GetAdviceInput carries the biometric and goal fields from the advice form.
type GetAdviceInput struct {
	Age    int
	Height int // cm
	Weight int // kg
	Gender string
	Goal   string
}

// GetAdviceDeps holds dependencies for GetAdvice.
type GetAdviceDeps struct {
	Generator advice.Generator
}

var ErrIncompleteAdviceInput = errors.New("age, height, weight, gender, and goal are all required")

// Validate checks the advice form fields for plausible values.
func (in GetAdviceInput) Validate() error {
	if in.Age <= 0 || in.Height <= 0 || in.Weight <= 0 || in.Gender == "" || in.Goal == "" {
		return ErrIncompleteAdviceInput
	}
	return nil
}

// Prompt synthesizes the natural-language prompt sent to the provider.
func (in GetAdviceInput) Prompt() string {
	return fmt.Sprintf(
		"I am a %d year old %s, %d cm tall and weighing %d kg. I train at a gym and my goal is: %s. "+
			"Give me daily nutrition suggestions as bullet points and a short workout plan. "+
			"Speak like a friendly personal trainer.",
		in.Age, in.Gender, in.Height, in.Weight, in.Goal)
}

// ExecuteGetAdvice produces personalized advice text. Provider failures are
// converted to a human-readable display string so the page still renders;
// only input validation surfaces as an error.
// PRE: input has been submitted by an authenticated member
// POST: Returns advice text or a displayable failure message, never an error
// for provider trouble
func ExecuteGetAdvice(ctx context.Context, input GetAdviceInput, deps GetAdviceDeps) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	text, err := deps.Generator.Generate(ctx, input.Prompt())
	if err != nil {
		slog.Warn("advice_event", "event", "generation_failed", "error", err)
		return fmt.Sprintf("We could not generate advice right now: %v. Please try again later.", err), nil
	}
	return text, nil
}
