package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/phrazzld/memofiche-api/internal/api"
	"github.com/phrazzld/memofiche-api/internal/config"
	"github.com/phrazzld/memofiche-api/internal/generation"
	"github.com/phrazzld/memofiche-api/internal/platform/llm"
	"github.com/phrazzld/memofiche-api/internal/platform/logger"
	"github.com/phrazzld/memofiche-api/internal/redact"
	"github.com/spf13/cobra"
)

// deps are the collaborators the commands need, replaceable in tests.
type deps struct {
	loadConfig   func() (*config.Config, error)
	newGenerator func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Generator, error)
	newLogger    func(cfg config.ServerConfig) *slog.Logger
}

func defaultDeps() deps {
	return deps{
		loadConfig:   config.Load,
		newGenerator: llm.NewGenerator,
		newLogger: func(cfg config.ServerConfig) *slog.Logger {
			// Results go to stdout. Logs go to stderr and stay quiet
			// unless debugging.
			level := slog.LevelWarn
			if l, _ := logger.ParseLevel(cfg.LogLevel); l == slog.LevelDebug {
				level = l
			}
			return logger.New(os.Stderr, level)
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "memofiche",
		Short:         "Génère des mémofiches de révision pour l'officine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(generateCmd(d))
	return root
}

// usageError marks errors caused by bad flags rather than by the pipeline.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// userMessage returns the French message printed for err.
func userMessage(err error) string {
	var ue *usageError
	if errors.As(err, &ue) {
		return "Erreur : " + ue.msg
	}
	if api.MapErrorToStatusCode(err) == http.StatusInternalServerError {
		return "Erreur : " + redact.Error(err)
	}
	return "Erreur : " + api.GetSafeErrorMessage(err)
}
