// Package http exposes the report server: middleware, report listing and
// download endpoints, health probes, and the Prometheus metrics endpoint.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"stanpulse/internal/config"
)

// NewRouter assembles the report server routes. The metrics handler is the
// Prometheus exporter's HTTP handler; nil disables the /metrics endpoint.
func NewRouter(cfg config.ServerConfig, paths *config.Paths, logger *slog.Logger, metrics http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(StructuredLogger(logger))
	r.Use(Recoverer(logger))
	r.Use(NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger).Handler)

	health := NewHealthHandler()
	r.Get("/healthz", health.HealthCheck)

	if metrics != nil {
		r.Handle("/metrics", metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Get("/version", health.VersionInfo)
		r.Mount("/reports", NewReportHandler(paths, logger).Routes())
	})

	return r
}
