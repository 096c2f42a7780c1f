// Package openai provides a generation.Generator backed by the OpenAI chat
// completions API, or any endpoint compatible with it (see
// config.LLMConfig.OpenAIBaseURL).
package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/redact"
)

// ProviderName identifies this adapter in configuration and results.
const ProviderName = "openai"

// InvalidKeySignature is the text OpenAI puts in its error message when the
// API key is rejected.
const InvalidKeySignature = "Incorrect API key"

// chatCompleter is the subset of the chat completions service used here.
type chatCompleter interface {
	New(
		ctx context.Context,
		body openaisdk.ChatCompletionNewParams,
		opts ...option.RequestOption,
	) (*openaisdk.ChatCompletion, error)
}

// ChatGenerator implements generation.Generator with a single user message
// per request.
type ChatGenerator struct {
	logger      *slog.Logger
	completions chatCompleter
	model       string
}

var _ generation.Generator = (*ChatGenerator)(nil)

// NewChatGenerator validates cfg and builds a client. A missing or
// placeholder key returns an error wrapping generation.ErrInvalidConfig.
func NewChatGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*ChatGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := generation.ValidateCredential(ProviderName, cfg.OpenAIAPIKey); err != nil {
		logger.WarnContext(ctx, "OpenAI API key unusable, generation disabled", "error", err)
		return nil, err
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		// One call per generation.
		option.WithMaxRetries(0),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}

	client := openaisdk.NewClient(opts...)

	logger.InfoContext(ctx, "OpenAI generator initialized",
		"model", cfg.Model(),
		"custom_base_url", cfg.OpenAIBaseURL != "")

	return newChatGenerator(logger, &client.Chat.Completions, cfg.Model()), nil
}

func newChatGenerator(logger *slog.Logger, completions chatCompleter, model string) *ChatGenerator {
	return &ChatGenerator{logger: logger, completions: completions, model: model}
}

// Provider implements generation.Generator.
func (g *ChatGenerator) Provider() string {
	return ProviderName
}

// Model implements generation.Generator.
func (g *ChatGenerator) Model() string {
	return g.model
}

// Generate implements generation.Generator.
func (g *ChatGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt cannot be empty", generation.ErrGenerationFailed)
	}

	g.logger.InfoContext(ctx, "Making OpenAI API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(g.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.UserMessage(prompt),
		},
	})
	if err != nil {
		classified := classifyError(err)
		g.logger.ErrorContext(ctx, "OpenAI API call failed", "error", redact.Error(err))
		return "", classified
	}

	if resp == nil || len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %w: empty choices", generation.ErrGenerationFailed, generation.ErrInvalidResponse)
	}

	choice := resp.Choices[0]
	if choice.FinishReason == "content_filter" {
		return "", fmt.Errorf("%w: %w: finish reason content_filter",
			generation.ErrGenerationFailed, generation.ErrContentBlocked)
	}

	text := choice.Message.Content
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %w: empty message content", generation.ErrGenerationFailed, generation.ErrInvalidResponse)
	}

	g.logger.InfoContext(ctx, "OpenAI API call successful", "response_length", len(text))
	return text, nil
}

// classifyError maps an OpenAI client error to the generation error taxonomy.
func classifyError(err error) error {
	var apiErr *openaisdk.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", generation.ErrInvalidCredential, err)
	}

	if strings.Contains(err.Error(), InvalidKeySignature) {
		return fmt.Errorf("%w: %w", generation.ErrInvalidCredential, err)
	}

	return fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
}
