package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/wardfinder/backend/internal/adapters/cache"
	"github.com/wardfinder/backend/internal/adapters/registry"
	"github.com/wardfinder/backend/internal/adapters/source"
	"github.com/wardfinder/backend/internal/api/handlers"
	"github.com/wardfinder/backend/internal/api/routes"
	"github.com/wardfinder/backend/internal/application/services"
	"github.com/wardfinder/backend/internal/infrastructure/clients/redis"
	"github.com/wardfinder/backend/internal/infrastructure/observability"
	"github.com/wardfinder/backend/pkg/config"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		observability.GetLogger().Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.App.ServiceName, cfg.App.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Str("endpoint", cfg.OTEL.Endpoint).Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Hospital registry and source loader
	hospitalRegistry, err := registry.New(cfg.Data.Dir, cfg.Data.HospitalsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build hospital registry")
	}
	loader := source.NewFileLoader(cfg.Data.ReadTimeout)

	wardService := services.NewWardSearchService(hospitalRegistry, loader, cfg.App.ServiceName)
	wardService.SetMetrics(metrics)

	// Missing files are reported, not fatal; they surface as 500s per request
	statuses, err := wardService.VerifySources(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to verify hospital data files")
	}
	for _, status := range statuses {
		event := logger.Info()
		if !status.Exists {
			event = logger.Warn()
		}
		event.
			Str("hospital_id", status.HospitalID).
			Str("path", status.Path).
			Bool("exists", status.Exists).
			Msg("hospital data file")
	}

	// Zero-result analytics backed by Redis
	var analyticsService *services.SearchAnalyticsService
	if cfg.Analytics.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, search analytics disabled")
		} else {
			defer redisClient.Close()
			analyticsService = services.NewSearchAnalyticsService(
				cache.NewRedisAnalyticsAdapter(redisClient),
				cfg.Analytics.Timeout,
			)
			wardService.SetAnalytics(analyticsService)
			logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("search analytics enabled")
		}
	}

	router := routes.NewRouter(
		handlers.NewWardSearchHandler(wardService),
		handlers.NewAnalyticsHandler(analyticsService),
		cfg.CORS.AllowedOrigins,
		metrics,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error during server shutdown")
	}

	logger.Info().Msg("server stopped")
}
