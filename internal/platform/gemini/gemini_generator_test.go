package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeModels records requests and returns a canned response.
type fakeModels struct {
	resp  *genai.GenerateContentResponse
	err   error
	calls int

	model    string
	contents []*genai.Content
}

func (f *fakeModels) GenerateContent(
	_ context.Context,
	model string,
	contents []*genai.Content,
	_ *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.model = model
	f.contents = contents
	return f.resp, f.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func TestNewGeminiGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		logger      *slog.Logger
		config      config.LLMConfig
		expectError bool
		errorType   error
		errorMsg    string
	}{
		{
			name:        "nil_logger_returns_error",
			logger:      nil,
			config:      config.LLMConfig{GeminiAPIKey: "test-api-key"},
			expectError: true,
			errorMsg:    "logger cannot be nil",
		},
		{
			name:        "missing_key_returns_config_error",
			logger:      newTestLogger(),
			config:      config.LLMConfig{},
			expectError: true,
			errorType:   generation.ErrInvalidConfig,
			errorMsg:    "not configured",
		},
		{
			name:        "placeholder_key_returns_config_error",
			logger:      newTestLogger(),
			config:      config.LLMConfig{GeminiAPIKey: "YOUR_GEMINI_API_KEY_HERE"},
			expectError: true,
			errorType:   generation.ErrInvalidConfig,
			errorMsg:    "placeholder",
		},
		{
			name:   "valid_config_returns_generator",
			logger: newTestLogger(),
			config: config.LLMConfig{
				Provider:     "gemini",
				GeminiAPIKey: "test-api-key",
				ModelName:    "gemini-2.5-pro",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			generator, err := NewGeminiGenerator(context.Background(), tt.logger, tt.config)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, generator)
				assert.Contains(t, err.Error(), tt.errorMsg)
				if tt.errorType != nil {
					assert.ErrorIs(t, err, tt.errorType)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, generator)
			assert.Implements(t, (*generation.Generator)(nil), generator)
			assert.Equal(t, "gemini-2.5-pro", generator.Model())
			assert.Equal(t, ProviderName, generator.Provider())
		})
	}
}

func TestGenerate_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeModels{resp: textResponse("# Mémofiche\n\n- point")}
	g := newGeminiGenerator(newTestLogger(), fake, "gemini-2.5-flash")

	out, err := g.Generate(context.Background(), "Génère une mémofiche")

	require.NoError(t, err)
	assert.Equal(t, "# Mémofiche\n\n- point", out)
	assert.Equal(t, 1, fake.calls, "exactly one call per invocation")
	assert.Equal(t, "gemini-2.5-flash", fake.model)
	require.Len(t, fake.contents, 1)
	require.Len(t, fake.contents[0].Parts, 1)
	assert.Equal(t, "Génère une mémofiche", fake.contents[0].Parts[0].Text)
}

func TestGenerate_InvalidKey(t *testing.T) {
	t.Parallel()

	fake := &fakeModels{err: errors.New("Error 400, Message: API key not valid. Please pass a valid API key., Status: INVALID_ARGUMENT")}
	g := newGeminiGenerator(newTestLogger(), fake, "m")

	_, err := g.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrInvalidCredential)
	assert.False(t, errors.Is(err, generation.ErrGenerationFailed))
	assert.Equal(t, 1, fake.calls, "no retry")
}

func TestGenerate_ServiceFailure(t *testing.T) {
	t.Parallel()

	fake := &fakeModels{err: errors.New("Error 503, Message: The model is overloaded")}
	g := newGeminiGenerator(newTestLogger(), fake, "m")

	_, err := g.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Contains(t, err.Error(), "The model is overloaded")
	assert.Equal(t, 1, fake.calls, "no retry")
}

func TestGenerate_ContextCancelled(t *testing.T) {
	t.Parallel()

	fake := &fakeModels{err: context.Canceled}
	g := newGeminiGenerator(newTestLogger(), fake, "m")

	_, err := g.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_UnusableResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		kind error
	}{
		{name: "nil_response", resp: nil, kind: generation.ErrInvalidResponse},
		{name: "no_candidates", resp: &genai.GenerateContentResponse{}, kind: generation.ErrInvalidResponse},
		{
			name: "nil_content",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			kind: generation.ErrInvalidResponse,
		},
		{name: "blank_text", resp: textResponse("  \n"), kind: generation.ErrInvalidResponse},
		{
			name: "safety_finish_reason",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
				FinishReason: genai.FinishReasonSafety,
				Content:      &genai.Content{Parts: []*genai.Part{{Text: "partial"}}},
			}}},
			kind: generation.ErrContentBlocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := newGeminiGenerator(newTestLogger(), &fakeModels{resp: tt.resp}, "m")

			out, err := g.Generate(context.Background(), "prompt")

			assert.Empty(t, out)
			assert.ErrorIs(t, err, generation.ErrGenerationFailed)
			assert.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestGenerate_EmptyPrompt(t *testing.T) {
	t.Parallel()

	fake := &fakeModels{resp: textResponse("x")}
	g := newGeminiGenerator(newTestLogger(), fake, "m")

	_, err := g.Generate(context.Background(), "   ")

	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Zero(t, fake.calls)
}

func TestClassifyError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, classifyError(nil))
	assert.ErrorIs(t, classifyError(errors.New("x: API key not valid")), generation.ErrInvalidCredential)
	assert.ErrorIs(t, classifyError(errors.New("boom")), generation.ErrGenerationFailed)
}
