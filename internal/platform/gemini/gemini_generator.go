package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/redact"
	"google.golang.org/genai"
)

// ProviderName identifies this adapter in configuration and results.
const ProviderName = "gemini"

// contentGenerator is the subset of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models sends GenerateContent requests
	models contentGenerator

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new instance of GeminiGenerator.
//
// The API key is validated once, here. A missing or placeholder key returns
// an error wrapping generation.ErrInvalidConfig without creating a client.
func NewGeminiGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini generator initialized", "model", cfg.Model())

	return newGeminiGenerator(logger, client.Models, cfg.Model()), nil
}

func newGeminiGenerator(logger *slog.Logger, models contentGenerator, model string) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Provider implements generation.Generator.
func (g *GeminiGenerator) Provider() string {
	return ProviderName
}

// Model implements generation.Generator.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends prompt to Gemini and returns the generated text.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		classified := classifyError(err)
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"error", redact.Error(err),
			"invalid_credential", errors.Is(classified, generation.ErrInvalidCredential))
		return "", classified
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API returned an unusable response", "error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful", "response_length", len(text))
	return text, nil
}

// extractText returns the text of the first candidate, or an error wrapping
// ErrGenerationFailed and the reason the response is unusable.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	switch {
	case resp == nil:
		return "", invalidResponse(generation.ErrInvalidResponse, "nil response")
	case resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "":
		return "", invalidResponse(generation.ErrContentBlocked,
			fmt.Sprintf("prompt blocked: %s", resp.PromptFeedback.BlockReason))
	case len(resp.Candidates) == 0:
		return "", invalidResponse(generation.ErrInvalidResponse, "no content generated")
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", invalidResponse(generation.ErrContentBlocked, "content blocked by safety filters")
	case resp.Candidates[0].Content == nil:
		return "", invalidResponse(generation.ErrInvalidResponse, "empty content in response")
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", invalidResponse(generation.ErrInvalidResponse, "empty text in response")
	}

	return text, nil
}

func invalidResponse(kind error, detail string) error {
	return fmt.Errorf("%w: %w: %s", generation.ErrGenerationFailed, kind, detail)
}
