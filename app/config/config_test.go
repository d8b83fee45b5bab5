package config

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BOARDFRONT_ADDR",
		"BOARDFRONT_API_URL",
		"BOARDFRONT_DATA_DIR",
		"BOARDFRONT_SESSION_SECRET",
		"BOARDFRONT_REDIRECT_ON_401",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadRequiresAPIURL(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDFRONT_API_URL", "http://localhost:3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, "data", cfg.DataDir)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.False(t, cfg.RedirectOn401)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDFRONT_API_URL", "http://api.example.com")
	t.Setenv("BOARDFRONT_ADDR", ":9999")
	t.Setenv("BOARDFRONT_DATA_DIR", "/tmp/boardfront")
	t.Setenv("BOARDFRONT_SESSION_SECRET", "hunter2hunter2")
	t.Setenv("BOARDFRONT_REDIRECT_ON_401", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "/tmp/boardfront", cfg.DataDir)
	assert.Equal(t, "hunter2hunter2", cfg.SessionSecret)
	assert.True(t, cfg.RedirectOn401)
}

func TestLoadWarnsOnDefaultSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDFRONT_API_URL", "http://localhost:3000")

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Contains(t, logged.String(), "BOARDFRONT_SESSION_SECRET")
}

func TestLoadStaysQuietWithExplicitSecret(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDFRONT_API_URL", "http://localhost:3000")
	t.Setenv("BOARDFRONT_SESSION_SECRET", "hunter2hunter2")

	var logged bytes.Buffer
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	_, err := Load()
	require.NoError(t, err)
	assert.NotContains(t, logged.String(), "BOARDFRONT_SESSION_SECRET")
}

func TestLoadIgnoresBadBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDFRONT_API_URL", "http://localhost:3000")
	t.Setenv("BOARDFRONT_REDIRECT_ON_401", "sometimes")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.RedirectOn401)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOARDFRONT_API_URL", "  http://localhost:3000  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
}
