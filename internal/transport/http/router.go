package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ricepulse/internal/config"
	"ricepulse/internal/middleware"
)

// NewRouter assembles the API: analysis and health under /api/v1, the
// Prometheus scrape endpoint at /metrics.
func NewRouter(cfg config.ServerConfig, logger *slog.Logger, analysis *AnalysisHandler, health *HealthHandler, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBody(cfg.MaxUploadBytes))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger).Handler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/", analysis.Routes())
		r.Get("/health", health.Health)
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
