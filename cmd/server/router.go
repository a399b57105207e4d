package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/phrazzld/signup-api/internal/api/middleware"
	"github.com/phrazzld/signup-api/internal/metrics"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", app.signUpHandler.SignUp)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.registry != nil {
		r.Method(http.MethodGet, app.config.Metrics.Path, metrics.Handler(app.registry))
	}

	return r
}
