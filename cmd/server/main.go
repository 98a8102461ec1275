// Package main implements the entry point for the chart advisor server,
// which relays chart recommendation requests to Gemini and streams the
// answer back to the caller.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/chartadvisor/chart-advisor/internal/config"
	"github.com/chartadvisor/chart-advisor/internal/platform/logger"
)

// main is the entry point for the chart advisor server.
// It loads configuration, sets up logging, builds the Gemini generator and
// serves HTTP until SIGINT or SIGTERM.
func main() {
	fmt.Println("Chart Advisor Server Starting...")

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up logging.
// A missing upstream credential fails here, before anything listens.
func initializeApp() (*config.Config, *slog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"max_body_bytes", cfg.Server.MaxBodyBytes)

	return cfg, appLogger, nil
}
