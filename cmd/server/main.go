package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"yieldboard/internal/infrastructure/config"
	"yieldboard/internal/infrastructure/persistence"
	"yieldboard/internal/interface/httpapi"
	storeRepo "yieldboard/internal/interface/repository"
	"yieldboard/internal/seed"
	"yieldboard/internal/usecase"
	"yieldboard/pkg/logger"
	"yieldboard/pkg/metrics"
	"yieldboard/pkg/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger("yieldboard", cfg.AppVersion, cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Yieldboard API", "driver", cfg.StoreDriver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.NewMetrics(cfg.MetricsNamespace)
	clock := utils.SystemClock{}

	// Set up storage
	backend, err := persistence.Open(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store", "driver", cfg.StoreDriver, "error", err)
	}

	generator := seed.NewSeededGenerator(clock, cfg.Seed)
	store := storeRepo.NewDataStore(backend, generator, clock, log, m)
	if err := store.Init(ctx); err != nil {
		log.Fatal("Failed to initialize data store", "error", err)
	}

	// Set up services
	analytics := usecase.NewAnalyticsService(store, store, clock, log)
	forecasts := usecase.NewForecastingService(store, store, store, log)
	insights := usecase.NewInsightsService(store, store, log)

	handler := httpapi.NewHandler(store, analytics, forecasts, insights, log, m, clock, cfg.AppVersion)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewRouter(handler, log, m),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := backend.Close(shutdownCtx); err != nil {
		log.Error("Store close error", "error", err)
	}

	log.Info("Yieldboard API stopped")
}
