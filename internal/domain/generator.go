package domain

import "context"

// TextGenerator is the port to the external text-generation capability.
// One call is one single-turn exchange; the returned text is untrusted and
// may contain markdown fencing or surrounding prose around the payload.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemInstruction, prompt string) (string, error)
}
