package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chartadvisor/chart-advisor/internal/config"
	"github.com/chartadvisor/chart-advisor/internal/generation"
	"github.com/chartadvisor/chart-advisor/internal/platform/gemini"
	"github.com/chartadvisor/chart-advisor/internal/platform/metrics"
	"github.com/chartadvisor/chart-advisor/internal/redact"
)

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator generation.Generator
	metrics   *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized. Options are passed through to the Gemini client.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...gemini.Option,
) (*application, error) {
	// The credential must never appear in logs, whatever its shape.
	redact.RegisterSecret(cfg.LLM.GeminiAPIKey)

	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
		opts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}

	app := newApplicationWithGenerator(cfg, logger, generator, metrics.New())
	logger.Info("Application initialized successfully")
	return app, nil
}

func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
	m *metrics.Metrics,
) *application {
	return &application{
		config:    cfg,
		logger:    logger,
		generator: generator,
		metrics:   m,
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
