package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONSOLE_STATE_DIR", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.API.URL)
	assert.Equal(t, "v1", cfg.API.Version)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "info", cfg.Observability.LogLevel)
	assert.False(t, cfg.Observability.OTELEnabled)
	assert.Zero(t, cfg.RateLimit.RequestsPerSecond)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CONSOLE_API_URL", "https://api.example.com")
	t.Setenv("CONSOLE_API_VERSION", "v2")
	t.Setenv("CONSOLE_API_TIMEOUT", "5s")
	t.Setenv("CONSOLE_STATE_DIR", t.TempDir())
	t.Setenv("CONSOLE_RATELIMIT_RPS", "10")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.URL)
	assert.Equal(t, "https://api.example.com/api/v2", cfg.API.BaseURL())
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, float64(10), cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, "debug", cfg.Observability.LogLevel)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.API.URL = "http://localhost:8080"
	cfg.API.Version = "v1"
	assert.NoError(t, cfg.Validate())

	cfg.API.URL = ""
	assert.Error(t, cfg.Validate())

	cfg.API.URL = "http://localhost:8080"
	cfg.API.Version = ""
	assert.Error(t, cfg.Validate())
}
