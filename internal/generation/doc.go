// Package generation defines the boundary between the memo-sheet pipeline
// and external AI/LLM text-generation services. The Generator interface is
// implemented by the Gemini and OpenAI adapters under internal/platform; the
// application constructs one explicitly and injects it, so there is no
// package-level client.
//
// The package also owns the error taxonomy of the boundary: configuration
// errors (missing or placeholder credential), invalid-credential errors
// reported by the service, and generic service failures.
package generation
