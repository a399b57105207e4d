package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies the defaults applied when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("SIGNUP_SERVER_PORT", "")
	t.Setenv("SIGNUP_SERVER_LOG_LEVEL", "")

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, 10, cfg.Server.ReadTimeoutSeconds)
	assert.Equal(t, 10, cfg.Server.WriteTimeoutSeconds)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeoutSeconds)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

// TestLoadFromEnv verifies that environment variables are read.
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SIGNUP_SERVER_PORT", "9090")
	t.Setenv("SIGNUP_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SIGNUP_SERVER_SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("SIGNUP_METRICS_ENABLED", "false")
	t.Setenv("SIGNUP_METRICS_PATH", "/internal/metrics")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 3, cfg.Server.ShutdownTimeoutSeconds)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

// TestLoadFromFile verifies the YAML file is read and env still wins over it.
func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signup.yaml")
	content := []byte("server:\n  port: 7070\n  log_level: warn\nmetrics:\n  path: /stats\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv(ConfigFileEnv, path)
	t.Setenv("SIGNUP_SERVER_LOG_LEVEL", "error")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "error", cfg.Server.LogLevel, "env should override the file")
	assert.Equal(t, "/stats", cfg.Metrics.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv(ConfigFileEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name:    "Invalid port number",
			envVars: map[string]string{"SIGNUP_SERVER_PORT": "999999"},
		},
		{
			name:    "Invalid log level",
			envVars: map[string]string{"SIGNUP_SERVER_LOG_LEVEL": "invalid-level"},
		},
		{
			name:    "Non-positive timeout",
			envVars: map[string]string{"SIGNUP_SERVER_READ_TIMEOUT_SECONDS": "0"},
		},
		{
			name:    "Relative metrics path",
			envVars: map[string]string{"SIGNUP_METRICS_PATH": "metrics"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err, "Load() should return an error with invalid configuration")
			if err != nil {
				assert.Contains(t, err.Error(), "validation failed")
			}
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}
