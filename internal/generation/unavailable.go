package generation

import (
	"context"
	"fmt"
)

// UnavailableGenerator stands in when no generator could be constructed.
// Every call fails immediately with the construction error and performs
// no I/O.
type UnavailableGenerator struct {
	provider string
	cause    error
}

// NewUnavailableGenerator returns a Generator that always fails with cause.
// A nil cause is replaced by ErrInvalidConfig.
func NewUnavailableGenerator(provider string, cause error) *UnavailableGenerator {
	if cause == nil {
		cause = ErrInvalidConfig
	}
	return &UnavailableGenerator{provider: provider, cause: cause}
}

// Generate implements Generator.
func (g *UnavailableGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("%s generator unavailable: %w", g.provider, g.cause)
}

// Provider implements Generator.
func (g *UnavailableGenerator) Provider() string {
	return g.provider
}

// Model implements Generator.
func (g *UnavailableGenerator) Model() string {
	return ""
}

// Cause returns the error that disabled the generator.
func (g *UnavailableGenerator) Cause() error {
	return g.cause
}
