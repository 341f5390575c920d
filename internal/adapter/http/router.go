package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/ledgerlens/internal/adapter/http/handler"
	"github.com/iho/ledgerlens/internal/adapter/http/middleware"
	"github.com/iho/ledgerlens/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	ReportHandler *handler.ReportHandler
	SankeyHandler *handler.SankeyHandler
	SyncHandler   *handler.SyncHandler
	HealthHandler *handler.HealthHandler
	Metrics       *metrics.Metrics
	Logger        zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health and telemetry endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/reports", func(r chi.Router) {
			r.Get("/networth", cfg.ReportHandler.NetWorth)
			r.Get("/assets", cfg.ReportHandler.Assets)
			r.Get("/cashflow", cfg.ReportHandler.Cashflow)
		})

		r.Route("/sankey/sessions", func(r chi.Router) {
			r.Post("/", cfg.SankeyHandler.CreateSession)
			r.Get("/{id}/model", cfg.SankeyHandler.Model)
			r.Post("/{id}/click", cfg.SankeyHandler.Click)
			r.Post("/{id}/reset", cfg.SankeyHandler.Reset)
			r.Delete("/{id}", cfg.SankeyHandler.DeleteSession)
		})

		r.Post("/sync/accounts", cfg.SyncHandler.Accounts)
	})

	return r
}
