package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "session:\n  secret: \"s\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "signifi.app", cfg.Session.Issuer)
	assert.False(t, cfg.Auth.DebugBypass)

	exp, err := cfg.SessionExpiration()
	require.NoError(t, err)
	assert.Zero(t, exp, "sessions never expire by default")
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeConfig(t, "session:\n  secret: \"s\"\n")

	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "memory")
	t.Setenv("AUTH_DEBUG_BYPASS", "true")
	t.Setenv("SESSION_EXPIRATION", "24h")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.True(t, cfg.Auth.DebugBypass)

	exp, err := cfg.SessionExpiration()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, exp)
}

func TestLoadConfigValidation(t *testing.T) {
	// Missing secret
	_, err := LoadConfig(writeConfig(t, "server:\n  port: \"1\"\n"))
	assert.Error(t, err)

	// Unknown backend
	_, err = LoadConfig(writeConfig(t, "session:\n  secret: \"s\"\nstorage:\n  backend: \"tape\"\n"))
	assert.Error(t, err)

	// Redis backend requires a URL
	_, err = LoadConfig(writeConfig(t, "session:\n  secret: \"s\"\nstorage:\n  backend: \"redis\"\n"))
	assert.Error(t, err)
}
