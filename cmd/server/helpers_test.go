package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phrazzld/signup-api/internal/config"
	"github.com/phrazzld/signup-api/internal/platform/logger"
)

// newTestConfig returns a valid configuration with metrics enabled.
func newTestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   8080,
			LogLevel:               "debug",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			ShutdownTimeoutSeconds: 5,
		},
		Metrics: config.MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// newTestApplication builds an application that logs into the returned buffer.
func newTestApplication(t *testing.T, cfg *config.Config) (*application, *logger.TestLogBuffer) {
	t.Helper()

	logBuf, log := logger.NewTestLogger(t)
	app, err := newApplication(cfg, log)
	require.NoError(t, err)

	return app, logBuf
}
