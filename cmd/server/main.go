// Package main implements the entry point for the signup API server,
// which validates account signup requests and reports the outcome.
package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
)

// main is the entry point for the signup-api server.
func main() {
	if err := run(); err != nil {
		log.Fatalf("signup-api: %v", err)
	}
}

// run wires configuration, logging and the application, then serves until
// SIGINT or SIGTERM arrives.
func run() error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx)
}
