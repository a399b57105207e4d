package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/signup-api/internal/api"
	"github.com/phrazzld/signup-api/internal/config"
	"github.com/phrazzld/signup-api/internal/metrics"
	"github.com/phrazzld/signup-api/internal/platform/emailvalidator"
)

// application holds the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	// registry is nil when metrics are disabled
	registry *prometheus.Registry
	metrics  metrics.Recorder

	emailValidator api.EmailValidator
	signUpHandler  *api.SignUpHandler
}

// newApplication creates a new application instance with all dependencies initialized.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = metrics.NewCollector(app.registry)
		logger.Info("Metrics enabled", "path", cfg.Metrics.Path)
	} else {
		app.metrics = metrics.Nop{}
	}

	app.emailValidator = emailvalidator.New()

	var err error
	app.signUpHandler, err = api.NewSignUpHandler(app.emailValidator, app.metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create signup handler: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled or the server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
