package gateways

import "context"

// TextGenerator sends one free-text prompt and returns the generated text.
// There is no streaming and no conversation state.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
