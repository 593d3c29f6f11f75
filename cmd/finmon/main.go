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
	"golang.org/x/sync/errgroup"

	"finmon/internal/backend"
	"finmon/internal/config"
	apphttp "finmon/internal/http"
	applog "finmon/internal/log"
	"finmon/internal/middleware/cors"
	"finmon/internal/narrative"
	"finmon/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	factory := backend.NewFactory(logger)

	stores, err := factory.CreateStores(cfg)
	if err != nil {
		logger.Error("Failed to initialize transaction store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if stores.Cleanup != nil {
		defer func() {
			if err := stores.Cleanup(); err != nil {
				logger.Error("Store cleanup failed", "error", err)
			}
		}()
	}

	textGen := factory.CreateTextGenerator(ctx, cfg)
	generator := narrative.NewGenerator(textGen, cfg.GenerateTimeout)

	publisher := factory.CreatePublisher(cfg)
	if publisher != nil {
		defer publisher.Close()
	}

	var eventPublisher services.EventPublisher
	if publisher != nil {
		eventPublisher = publisher
	}
	txService := services.NewTransactionService(stores.Writer, eventPublisher)
	analysis := services.NewAnalysisService(stores.Lister, generator)

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowedOrigins = cfg.CORSAllowedOrigins

	srv := apphttp.NewServer(":"+cfg.Port, txService, analysis, stores.Lister, corsConfig)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting finmon server",
			"port", cfg.Port,
			"backend", cfg.DataBackend,
			"llm_enabled", textGen != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
