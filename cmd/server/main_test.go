package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_KEY",
		"CHARTADVISOR_LLM_GEMINI_API_KEY",
		"CHARTADVISOR_SERVER_PORT",
		"CHARTADVISOR_SERVER_LOG_LEVEL",
		"CHARTADVISOR_LLM_MODEL_NAME",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	t.Chdir(t.TempDir())
}

func TestInitializeApp_MissingCredentialFails(t *testing.T) {
	clearConfigEnv(t)

	cfg, log, err := initializeApp()

	assert.Nil(t, cfg)
	assert.Nil(t, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeApp_LoadsDotEnv(t *testing.T) {
	clearConfigEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte("CHARTADVISOR_LLM_GEMINI_API_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CHARTADVISOR_LLM_GEMINI_API_KEY") })

	cfg, log, err := initializeApp()

	require.NoError(t, err)
	assert.NotNil(t, log)
	assert.Equal(t, "from-dotenv", cfg.LLM.GeminiAPIKey)
}
