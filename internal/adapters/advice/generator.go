package advice

import "context"

// Generator is the interface for producing free-text fitness advice from a
// natural-language prompt via an external provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
