package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	_ "github.com/newsverify/api-backend/docs"
	"github.com/newsverify/api-backend/internal/cache"
	"github.com/newsverify/api-backend/internal/classifier"
	"github.com/newsverify/api-backend/internal/config"
	"github.com/newsverify/api-backend/internal/logging"
	"github.com/newsverify/api-backend/internal/metrics"
	"github.com/newsverify/api-backend/internal/router"
	"github.com/newsverify/api-backend/internal/services"
)

// @title          NewsVerify API
// @version        1.0
// @description    Classifies news text as real or fake and reports model readiness.
// @BasePath       /api

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level)
	slog.SetDefault(logger)
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := metrics.NewRegistry()

	// Build the predictor for the configured backend
	predictor, closePredictor, err := classifier.New(ctx, classifier.Options{
		Backend: cfg.Classifier.Backend,
		Seed:    cfg.Classifier.Seed,
		Remote: classifier.RemoteConfig{
			Endpoint: cfg.Inference.URL,
			APIKey:   cfg.Inference.APIKey,
			Timeout:  cfg.Classifier.Timeout,
		},
		Gemini: classifier.GeminiConfig{
			APIKey: cfg.Gemini.APIKey,
			Model:  cfg.Gemini.Model,
		},
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := closePredictor(); err != nil {
			logger.Warn("close predictor", "error", err)
		}
	}()
	if predictor.Name() == classifier.StubName {
		logger.Warn("using the stub classifier: predictions are seeded placeholders, not model output",
			"seed", cfg.Classifier.Seed)
	}

	// Wrap with the Redis cache when configured
	if cfg.Cache.Enabled() {
		store, err := cache.NewRedisStore(ctx, cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
		if err != nil {
			return err
		}
		defer store.Close()
		predictor = cache.NewCachingPredictor(predictor, store, cfg.Cache.TTL, reg, logger)
		logger.Info("prediction cache enabled", "redis", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
	}

	monitor := services.NewReadinessMonitor(predictor, reg, logger, cfg.Classifier.MonitorInterval, cfg.Classifier.ProbeTimeout)
	monitor.Start()
	defer monitor.Stop()

	engine := router.New(router.Deps{
		Health: services.NewHealthService(predictor, reg, logger, services.HealthConfig{
			Service:      cfg.Service.Name,
			Version:      cfg.Service.Version,
			ProbeTimeout: cfg.Classifier.ProbeTimeout,
		}),
		Analysis: services.NewAnalysisService(predictor, reg, logger, services.AnalysisConfig{
			Timeout:       cfg.Classifier.Timeout,
			MaxTextLength: cfg.Classifier.MaxTextLength,
		}),
		Metrics:      reg,
		Logger:       logger,
		CORSOrigins:  cfg.CORS.AllowedOrigins,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		EnableDocs:   true,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "backend", predictor.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server exited")
	return nil
}
