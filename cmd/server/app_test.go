package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartadvisor/chart-advisor/internal/generation"
	"github.com/chartadvisor/chart-advisor/internal/mocks"
	"github.com/chartadvisor/chart-advisor/internal/platform/logger"
	"github.com/chartadvisor/chart-advisor/internal/platform/metrics"
)

func TestNewApplication_MissingCredential(t *testing.T) {
	log, _ := logger.GetTestLogger(t)
	cfg := testConfig()
	cfg.LLM.GeminiAPIKey = ""

	app, err := newApplication(context.Background(), cfg, log)

	assert.Nil(t, app)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestNewApplication_Valid(t *testing.T) {
	log, _ := logger.GetTestLogger(t)

	app, err := newApplication(context.Background(), testConfig(), log)

	require.NoError(t, err)
	assert.NotNil(t, app.generator)
	assert.NotNil(t, app.metrics)
}

func TestServe_GracefulShutdownOnContextCancel(t *testing.T) {
	log, logBuf := logger.GetTestLogger(t)
	app := newApplicationWithGenerator(testConfig(), log,
		mocks.NewMockGeneratorWithChunks("{}"), metrics.NewWithRegistry(prometheus.NewRegistry()))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- app.serve(ctx, ln, app.setupRouter())
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	logger.AssertLogContains(t, logBuf, "Server shutdown completed")
}
