package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// Every variable the loader reads is cleared first so the host environment
// cannot leak into assertions.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()

	for _, name := range []string{
		"CHARTADVISOR_SERVER_PORT",
		"CHARTADVISOR_SERVER_LOG_LEVEL",
		"CHARTADVISOR_SERVER_MAX_BODY_BYTES",
		"CHARTADVISOR_SERVER_SHUTDOWN_TIMEOUT_SECONDS",
		"CHARTADVISOR_LLM_GEMINI_API_KEY",
		"CHARTADVISOR_LLM_MODEL_NAME",
		"CHARTADVISOR_LLM_TEMPERATURE",
		"CHARTADVISOR_LLM_PROMPT_TEMPLATE_PATH",
		"API_KEY",
	} {
		t.Setenv(name, "")
	}

	for name, value := range envVars {
		t.Setenv(name, value)
	}
}

// chdirTemp runs the test from an empty directory so no config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
	return dir
}

// TestLoadDefaults verifies that Load fills in defaults when only the
// required credential is provided.
func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"CHARTADVISOR_LLM_GEMINI_API_KEY": "test-api-key",
	})

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Empty(t, cfg.LLM.PromptTemplatePath)
}

// TestLoadFromEnv verifies that Load reads values from environment variables.
func TestLoadFromEnv(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"CHARTADVISOR_SERVER_PORT":              "9090",
		"CHARTADVISOR_SERVER_LOG_LEVEL":         "debug",
		"CHARTADVISOR_SERVER_MAX_BODY_BYTES":    "4096",
		"CHARTADVISOR_LLM_GEMINI_API_KEY":       "test-api-key",
		"CHARTADVISOR_LLM_MODEL_NAME":           "gemini-2.0-flash",
		"CHARTADVISOR_LLM_TEMPERATURE":          "0.5",
		"CHARTADVISOR_LLM_PROMPT_TEMPLATE_PATH": "/tmp/prompt.tmpl",
	})

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, int64(4096), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.5, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, "/tmp/prompt.tmpl", cfg.LLM.PromptTemplatePath)
}

// TestLoadLegacyAPIKey verifies the bare API_KEY variable is accepted.
func TestLoadLegacyAPIKey(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"API_KEY": "legacy-key",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadPrefixedKeyWins verifies the prefixed variable takes precedence over the alias.
func TestLoadPrefixedKeyWins(t *testing.T) {
	chdirTemp(t)
	setupEnv(t, map[string]string{
		"CHARTADVISOR_LLM_GEMINI_API_KEY": "prefixed-key",
		"API_KEY":                         "legacy-key",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "prefixed-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadFromFile verifies values are read from config.yaml and that the
// environment overrides them.
func TestLoadFromFile(t *testing.T) {
	dir := chdirTemp(t)
	content := []byte("server:\n  port: 7070\n  log_level: warn\nllm:\n  gemini_api_key: file-key\n  model_name: file-model\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))

	setupEnv(t, map[string]string{
		"CHARTADVISOR_SERVER_LOG_LEVEL": "error",
	})

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "environment should override file")
	assert.Equal(t, "file-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "file-model", cfg.LLM.ModelName)
}

// TestLoadValidationErrors verifies that Load rejects invalid configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Missing API key",
			envVars: map[string]string{
				"CHARTADVISOR_SERVER_PORT": "9090",
			},
		},
		{
			name: "Invalid port number",
			envVars: map[string]string{
				"CHARTADVISOR_SERVER_PORT":        "999999",
				"CHARTADVISOR_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"CHARTADVISOR_SERVER_LOG_LEVEL":   "invalid-level",
				"CHARTADVISOR_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
		{
			name: "Temperature out of range",
			envVars: map[string]string{
				"CHARTADVISOR_LLM_TEMPERATURE":    "3.5",
				"CHARTADVISOR_LLM_GEMINI_API_KEY": "test-api-key",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chdirTemp(t)
			setupEnv(t, tc.envVars)

			cfg, err := Load()

			require.Error(t, err, "Load() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
