package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BARBEARIA_SERVER_URL", "")
	t.Setenv("BARBEARIA_DATA_DIR", "")
	t.Setenv("BARBEARIA_ENV", "")
	t.Setenv("BARBEARIA_DEBUG", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.Debug)
	assert.NotEmpty(t, cfg.DataDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BARBEARIA_SERVER_URL", "https://api.barbearia.example")
	t.Setenv("BARBEARIA_DATA_DIR", "/tmp/barbearia-test")
	t.Setenv("BARBEARIA_ENV", "production")
	t.Setenv("BARBEARIA_DEBUG", "1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.barbearia.example", cfg.ServerURL)
	assert.Equal(t, "/tmp/barbearia-test", cfg.DataDir)
	assert.Equal(t, "production", cfg.Environment)
	assert.True(t, cfg.Debug)
}

func TestPaths(t *testing.T) {
	cfg := &Config{DataDir: "/data"}

	assert.Equal(t, filepath.Join("/data", "session.db"), cfg.SessionPath())
	assert.Equal(t, filepath.Join("/data", "barbearia.lock"), cfg.LockPath())
	assert.Equal(t, filepath.Join("/data", "client.log"), cfg.LogPath())
}
