// Package api provides HTTP router setup.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/scamshield/railshield/internal/analyzer"
	"github.com/scamshield/railshield/internal/config"
	"github.com/scamshield/railshield/internal/database"
	"github.com/scamshield/railshield/internal/validation"
)

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg *config.Config, a *analyzer.Analyzer, engine *validation.Engine, store database.Store) http.Handler {
	r := chi.NewRouter()

	handler := NewHandler(a, engine, store)

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.RateLimits.RequestsPerMinute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)

		r.Post("/analyze", handler.Analyze)

		r.Route("/complaints", func(r chi.Router) {
			r.Get("/", handler.ListComplaints)
			r.Post("/", handler.CreateComplaint)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetComplaint)
				r.Put("/", handler.UpdateComplaint)
				r.Delete("/", handler.DeleteComplaint)
				r.Post("/vote", handler.Vote)
				r.Get("/insights", handler.Insights)
			})
		})
	})

	return r
}
