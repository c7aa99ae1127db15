package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Mixmas", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.AI.Model)
	assert.Equal(t, "mixmas.db", cfg.Storage.Path)
	assert.Equal(t, 60, cfg.RateLimit.RequestsPerMin)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
}

func TestLoadExplicitConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixmas.yaml")
	contents := []byte("server:\n  port: 7070\nai:\n  model: gemini-2.0-flash\n")
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	// Unset keys keep their defaults.
	assert.Equal(t, "Mixmas", cfg.App.Name)

	// A path that is not a readable file is an error, not a silent default.
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("MIXMAS_SERVER_PORT", "9999")
	t.Setenv("MIXMAS_AI_API_KEY", "from-env")
	t.Setenv("MIXMAS_APP_ENVIRONMENT", "production")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.True(t, cfg.IsProduction())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Storage.Path = ""
	assert.Error(t, cfg.Validate())
}
