package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salesiq/internal/config"
	apierrors "salesiq/internal/errors"
	"salesiq/internal/middleware"
	"salesiq/internal/records"
)

// NewRouter assembles the full HTTP surface: the analyst query API,
// health, and metrics, behind the shared middleware chain.
func NewRouter(cfg *config.Config, logger *slog.Logger, ds *records.Dataset, svc AnalystServiceInterface) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	if cfg.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(registry)
	r.Use(metrics.Handler)

	errorHandler := apierrors.NewErrorHandler(logger)
	analyst := NewAnalystHandler(svc, logger, errorHandler)

	r.Mount("/api/analyst", analyst.Routes())
	r.Method(http.MethodGet, "/healthz", NewHealthHandler(ds))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return r
}
