package llm

import (
	"context"
	"testing"

	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/platform/gemini"
	"github.com/phrazzld/memofiche-api/internal/platform/openai"
	"github.com/phrazzld/memofiche-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		cfg          config.LLMConfig
		wantProvider string
		wantModel    string
		unavailable  bool
	}{
		{
			name:         "gemini with key",
			cfg:          config.LLMConfig{Provider: "gemini", GeminiAPIKey: "test-gemini-key"},
			wantProvider: gemini.ProviderName,
			wantModel:    config.DefaultGeminiModel,
		},
		{
			name:         "empty provider defaults to gemini",
			cfg:          config.LLMConfig{GeminiAPIKey: "test-gemini-key", ModelName: "gemini-2.0-flash"},
			wantProvider: gemini.ProviderName,
			wantModel:    "gemini-2.0-flash",
		},
		{
			name:         "openai with key",
			cfg:          config.LLMConfig{Provider: "OpenAI", OpenAIAPIKey: "sk-test"},
			wantProvider: openai.ProviderName,
			wantModel:    config.DefaultOpenAIModel,
		},
		{
			name:         "gemini without key",
			cfg:          config.LLMConfig{Provider: "gemini"},
			wantProvider: gemini.ProviderName,
			unavailable:  true,
		},
		{
			name:         "gemini with placeholder key",
			cfg:          config.LLMConfig{Provider: "gemini", GeminiAPIKey: "YOUR_GEMINI_API_KEY_HERE"},
			wantProvider: gemini.ProviderName,
			unavailable:  true,
		},
		{
			name:         "openai without key",
			cfg:          config.LLMConfig{Provider: "openai", GeminiAPIKey: "test-gemini-key"},
			wantProvider: openai.ProviderName,
			unavailable:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			logger, logs := testutils.NewTestLogger()

			gen, err := NewGenerator(context.Background(), logger, tt.cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.wantProvider, gen.Provider())

			unavailable, ok := gen.(*generation.UnavailableGenerator)
			assert.Equal(t, tt.unavailable, ok)
			if tt.unavailable {
				assert.ErrorIs(t, unavailable.Cause(), generation.ErrInvalidConfig)
				_, genErr := gen.Generate(context.Background(), "prompt")
				assert.ErrorIs(t, genErr, generation.ErrInvalidConfig)
				_, found := logs.Find("generation disabled until the provider is configured")
				assert.True(t, found)
				return
			}
			assert.Equal(t, tt.wantModel, gen.Model())
		})
	}
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	t.Parallel()
	logger, _ := testutils.NewTestLogger()

	gen, err := NewGenerator(context.Background(), logger, config.LLMConfig{Provider: "mistral"})

	assert.Nil(t, gen)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}
