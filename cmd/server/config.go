package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/signup-api/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	slog.Debug("Metrics configuration",
		"enabled", cfg.Metrics.Enabled,
		"path", cfg.Metrics.Path)

	return cfg, nil
}
