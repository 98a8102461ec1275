// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/chartadvisor/chart-advisor/internal/config"
	"github.com/chartadvisor/chart-advisor/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	tests := []struct {
		name        string
		level       string
		logDebug    bool
		logInfo     bool
		expectLevel slog.Level
	}{
		{name: "debug", level: "debug", logDebug: true, logInfo: true, expectLevel: slog.LevelDebug},
		{name: "info", level: "info", logDebug: false, logInfo: true, expectLevel: slog.LevelInfo},
		{name: "uppercase warn", level: "WARN", logDebug: false, logInfo: false, expectLevel: slog.LevelWarn},
		{name: "invalid falls back to info", level: "verbose", logDebug: false, logInfo: true, expectLevel: slog.LevelInfo},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: tc.level}, buf)
			require.NoError(t, err)
			require.NotNil(t, l)
			assert.Same(t, l, slog.Default(), "Setup should install the logger as default")

			l.Debug("debug message")
			l.Info("info message")

			out := buf.String()
			assert.Equal(t, tc.logDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.logInfo, strings.Contains(out, "info message"))
			assert.True(t, l.Enabled(context.Background(), tc.expectLevel))
		})
	}
}

func TestSetupWritesJSON(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "info"}, buf)
	require.NoError(t, err)

	l.Info("server started", "port", 8080)

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 8080, entry["port"])
}

func TestContextLogger(t *testing.T) {
	fallback, _ := logger.GetTestLogger(t)
	stored, buf := logger.GetTestLogger(t)

	ctx := context.Background()
	assert.Same(t, fallback, logger.FromContextOrDefault(ctx, fallback))

	ctx = logger.WithLogger(ctx, stored)
	got := logger.FromContextOrDefault(ctx, fallback)
	assert.Same(t, stored, got)

	got.Info("from context")
	logger.AssertLogContains(t, buf, "from context")

	ctx = logger.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", logger.RequestIDFromContext(ctx))
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))
}
