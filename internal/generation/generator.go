package generation

import (
	"context"
)

// Generator defines the interface for turning a prepared prompt into text.
// This interface serves as a boundary between the application core and
// external AI/LLM services.
type Generator interface {
	// Generate sends prompt to the service and returns the generated
	// Markdown text. Implementations make exactly one call per invocation,
	// never retry, and do not stream.
	//
	// Errors wrap one of ErrInvalidConfig, ErrInvalidCredential or
	// ErrGenerationFailed (see errors.go).
	Generate(ctx context.Context, prompt string) (string, error)

	// Provider names the backing service, e.g. "gemini".
	Provider() string

	// Model returns the model identifier sent with each request.
	Model() string
}
