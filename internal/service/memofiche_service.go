package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/memofiche-api/internal/domain"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/prompt"
	"github.com/phrazzld/memofiche-api/internal/redact"
)

// ContextNormalizer combines free text and uploaded documents into the
// additional context of a generation request.
type ContextNormalizer interface {
	CombineContext(ctx context.Context, freeText string, files []domain.UploadedFile) (*string, error)
}

// MarkdownRenderer converts generated Markdown to HTML.
type MarkdownRenderer interface {
	HTML(markdown string) (string, error)
}

// MemoFicheService runs the generation pipeline:
// normalize input, build the prompt, call the generator, render the result.
//
// The service holds no mutable state and does not serialize calls. Callers
// that must keep a single request in flight per user (such as a form that
// disables its submit button) enforce that themselves.
type MemoFicheService interface {
	// Generate produces a memo sheet from form input. Errors wrap
	// domain.ErrEmptySubject, normalize.ErrFileRead, or one of the
	// generation errors; none are retried. An unconfigured generator
	// fails before the subject is checked or any upload is read.
	Generate(ctx context.Context, input domain.FormInput) (*domain.MemoFiche, error)

	// PreviewPrompt returns the prompt Generate would send, without
	// calling the generation service.
	PreviewPrompt(ctx context.Context, input domain.FormInput) (string, error)
}

// memoFicheServiceImpl implements MemoFicheService
type memoFicheServiceImpl struct {
	normalizer ContextNormalizer
	generator  generation.Generator
	renderer   MarkdownRenderer
	logger     *slog.Logger
}

// NewMemoFicheService creates a new MemoFicheService.
// It returns an error if any of the required dependencies are nil.
func NewMemoFicheService(
	normalizer ContextNormalizer,
	generator generation.Generator,
	renderer MarkdownRenderer,
	logger *slog.Logger,
) (MemoFicheService, error) {
	if normalizer == nil {
		return nil, &MemoFicheServiceError{Operation: "init", Message: "normalizer cannot be nil"}
	}
	if generator == nil {
		return nil, &MemoFicheServiceError{Operation: "init", Message: "generator cannot be nil"}
	}
	if renderer == nil {
		return nil, &MemoFicheServiceError{Operation: "init", Message: "renderer cannot be nil"}
	}
	if logger == nil {
		return nil, &MemoFicheServiceError{Operation: "init", Message: "logger cannot be nil"}
	}

	return &memoFicheServiceImpl{
		normalizer: normalizer,
		generator:  generator,
		renderer:   renderer,
		logger:     logger.With(slog.String("component", "memofiche_service")),
	}, nil
}

// buildPrompt validates input, normalizes it and renders the prompt.
func (s *memoFicheServiceImpl) buildPrompt(ctx context.Context, input domain.FormInput) (*domain.GenerationRequest, string, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return nil, "", domain.ErrEmptySubject
	}

	additional, err := s.normalizer.CombineContext(ctx, input.AdditionalText, input.Files)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read uploaded files",
			"file_count", len(input.Files),
			"error", redact.Error(err))
		return nil, "", err
	}

	req, err := domain.NewGenerationRequest(
		input.Subject,
		input.Title,
		input.YoutubeLink,
		input.PodcastLink,
		additional,
	)
	if err != nil {
		return nil, "", err
	}

	p := prompt.Build(*req)
	s.logger.DebugContext(ctx, "prompt built",
		"prompt_length", len(p),
		"has_title", req.Title != nil,
		"has_youtube_link", req.YoutubeLink != nil,
		"has_podcast_link", req.PodcastLink != nil,
		"has_context", req.AdditionalContext != nil)

	return req, p, nil
}

// PreviewPrompt implements MemoFicheService.
func (s *memoFicheServiceImpl) PreviewPrompt(ctx context.Context, input domain.FormInput) (string, error) {
	_, p, err := s.buildPrompt(ctx, input)
	if err != nil {
		return "", err
	}
	return p, nil
}

// Generate implements MemoFicheService.
func (s *memoFicheServiceImpl) Generate(ctx context.Context, input domain.FormInput) (*domain.MemoFiche, error) {
	// A disabled generator is reported before any upload is read.
	if unavailable, ok := s.generator.(*generation.UnavailableGenerator); ok {
		s.logger.WarnContext(ctx, "memo sheet generation is not configured",
			"provider", unavailable.Provider(),
			"error", redact.Error(unavailable.Cause()))
		_, err := unavailable.Generate(ctx, "")
		return nil, err
	}

	req, p, err := s.buildPrompt(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "generating memo sheet",
		"provider", s.generator.Provider(),
		"model", s.generator.Model(),
		"file_count", len(input.Files))

	markdown, err := s.generator.Generate(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "memo sheet generation failed",
			"provider", s.generator.Provider(),
			"error", redact.Error(err))
		return nil, err
	}

	if strings.TrimSpace(markdown) == "" {
		return nil, fmt.Errorf("%w: %w: generator returned empty text",
			generation.ErrGenerationFailed, generation.ErrInvalidResponse)
	}

	html, err := s.renderer.HTML(markdown)
	if err != nil {
		// The Markdown is the result; HTML is a convenience.
		s.logger.WarnContext(ctx, "failed to render memo sheet HTML", "error", err)
		html = ""
	}

	fiche, err := domain.NewMemoFiche(req.Subject, markdown, html, s.generator.Provider(), s.generator.Model())
	if err != nil {
		return nil, &MemoFicheServiceError{Operation: "generate", Message: "invalid memo sheet", Err: err}
	}

	s.logger.InfoContext(ctx, "memo sheet generated",
		"memofiche_id", fiche.ID.String(),
		"markdown_length", len(markdown))

	return fiche, nil
}

// MemoFicheServiceError wraps errors from the memo sheet service with context.
type MemoFicheServiceError struct {
	// Operation is the operation that failed (e.g., "init", "generate")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for MemoFicheServiceError.
func (e *MemoFicheServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("memofiche service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("memofiche service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *MemoFicheServiceError) Unwrap() error {
	return e.Err
}
