// Package llm selects and constructs the generation.Generator for the
// configured provider.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/platform/gemini"
	"github.com/phrazzld/memofiche-api/internal/platform/openai"
)

// NewGenerator builds the generator for cfg.Provider.
//
// A configuration problem (missing or placeholder API key) does not fail:
// the returned generator is a generation.UnavailableGenerator whose every
// call reports the problem, so the application can start and tell the user
// what to configure. Other construction failures are returned.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = gemini.ProviderName
	}
	cfg.Provider = provider

	log := logger.With(slog.String("component", "llm_generator"), slog.String("provider", provider))

	var (
		gen generation.Generator
		err error
	)
	switch provider {
	case gemini.ProviderName:
		gen, err = gemini.NewGeminiGenerator(ctx, log, cfg)
	case openai.ProviderName:
		gen, err = openai.NewChatGenerator(ctx, log, cfg)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", generation.ErrInvalidConfig, cfg.Provider)
	}

	if err != nil {
		if errors.Is(err, generation.ErrInvalidConfig) {
			log.WarnContext(ctx, "generation disabled until the provider is configured", "error", err)
			return generation.NewUnavailableGenerator(provider, err), nil
		}
		return nil, fmt.Errorf("failed to initialize %s generator: %w", provider, err)
	}

	return gen, nil
}
