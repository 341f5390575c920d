package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/ledgerlens/internal/adapter/http"
	"github.com/iho/ledgerlens/internal/adapter/http/handler"
	"github.com/iho/ledgerlens/internal/adapter/http/session"
	postgresRepo "github.com/iho/ledgerlens/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/ledgerlens/internal/adapter/repository/redis"
	"github.com/iho/ledgerlens/internal/infrastructure/config"
	"github.com/iho/ledgerlens/internal/infrastructure/logger"
	"github.com/iho/ledgerlens/internal/infrastructure/metrics"
	"github.com/iho/ledgerlens/internal/infrastructure/postgres"
	"github.com/iho/ledgerlens/internal/infrastructure/redis"
	"github.com/iho/ledgerlens/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "ledgerlens",
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to the ledger database (read-only source of truth)
	ledgerPool, err := postgres.NewPool(ctx, cfg.LedgerDatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to ledger database")
	}
	defer ledgerPool.Close()
	appLogger.Info().Msg("connected to ledger database")

	// Connect to the analytics mirror and apply its schema
	analyticsPool, err := postgres.NewPool(ctx, cfg.AnalyticsDatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to analytics database")
	}
	defer analyticsPool.Close()
	appLogger.Info().Msg("connected to analytics database")

	if err := postgres.RunMigrations(cfg.AnalyticsDatabaseURL, cfg.MigrationsPath); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to run analytics migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Initialize repositories
	ledgerRepo := postgresRepo.NewLedgerRepository(ledgerPool)
	analyticsRepo := postgresRepo.NewAnalyticsRepository(analyticsPool)
	reportCache := redisRepo.NewCache(redisClient)

	// Initialize use cases
	netWorthUC := usecase.NewNetWorthUseCase(ledgerRepo, reportCache, cfg.ReportCacheTTL, appLogger)
	assetsUC := usecase.NewAssetBreakdownUseCase(ledgerRepo, reportCache, cfg.ReportCacheTTL, appLogger)
	cashflowUC := usecase.NewCashflowUseCase(ledgerRepo, cfg.AssetRootName, appLogger)
	syncUC := usecase.NewSyncAccountsUseCase(ledgerRepo, analyticsRepo, cfg.AssetRootName, appLogger)

	// Initialize metrics and session store
	appMetrics := metrics.New()
	sessions := session.NewStore(cfg.SessionTTL)

	// Initialize handlers
	reportHandler := handler.NewReportHandler(netWorthUC, assetsUC, cashflowUC, appMetrics)
	sankeyHandler := handler.NewSankeyHandler(cashflowUC, sessions, appMetrics)
	syncHandler := handler.NewSyncHandler(syncUC, appMetrics)
	healthHandler := handler.NewHealthHandler(ledgerPool, analyticsPool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler: reportHandler,
		SankeyHandler: sankeyHandler,
		SyncHandler:   syncHandler,
		HealthHandler: healthHandler,
		Metrics:       appMetrics,
		Logger:        appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
