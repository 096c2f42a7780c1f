package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/memofiche-api/internal/api"
	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/normalize"
	"github.com/phrazzld/memofiche-api/internal/platform/llm"
	"github.com/phrazzld/memofiche-api/internal/render"
	"github.com/phrazzld/memofiche-api/internal/service"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator        generation.Generator
	memoFicheService service.MemoFicheService
	memoFicheHandler *api.MemoFicheHandler
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	gen, err := llm.NewGenerator(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	return newApplicationWithGenerator(cfg, logger, gen)
}

// newApplicationWithGenerator wires the pipeline around an existing generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	gen generation.Generator,
) (*application, error) {
	normalizer := normalize.New(normalize.Options{MaxFileBytes: cfg.Upload.MaxFileBytes()})

	svc, err := service.NewMemoFicheService(normalizer, gen, render.NewRenderer(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize memo sheet service: %w", err)
	}

	if u, ok := gen.(*generation.UnavailableGenerator); ok {
		logger.Warn("generation is disabled; requests will fail until an API key is configured",
			"provider", u.Provider(),
			"reason", u.Cause().Error())
	} else {
		logger.Info("LLM generator initialized successfully",
			"provider", gen.Provider(),
			"model", gen.Model())
	}

	return &application{
		config:           cfg,
		logger:           logger,
		generator:        gen,
		memoFicheService: svc,
		memoFicheHandler: api.NewMemoFicheHandler(svc, api.HandlerConfig{
			MaxUploadBytes: cfg.Upload.MaxUploadBytes(),
			MaxFiles:       cfg.Upload.MaxFiles,
		}),
	}, nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	app.logger.Info("Application cleanup completed")
}
