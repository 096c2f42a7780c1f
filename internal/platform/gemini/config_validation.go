package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
)

// validateConfig checks the settings required to build a Gemini client.
//
// Returns an error wrapping generation.ErrInvalidConfig if the API key is
// missing or a placeholder, or if no model is configured.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if err := generation.ValidateCredential(ProviderName, cfg.GeminiAPIKey); err != nil {
		logger.WarnContext(ctx, "Gemini API key unusable, generation disabled",
			"error", err)
		return err
	}

	if cfg.Model() == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return nil
}
