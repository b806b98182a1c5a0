// Server exposes the rice-price analysis pipeline as a JSON API for the
// dashboard frontend.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"ricepulse/internal/config"
	"ricepulse/internal/dataprocessing"
	"ricepulse/internal/infrastructure"
	"ricepulse/internal/services"
	transporthttp "ricepulse/internal/transport/http"
	"ricepulse/pkg/contracts"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := infrastructure.NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := infrastructure.NewMetrics(registry)

	loader := dataprocessing.NewLoader(logger, dataprocessing.LoaderConfig{
		IdentifierLabel:   cfg.Loader.IdentifierLabel,
		CanonicalLabel:    cfg.Loader.CanonicalLabel,
		SequenceLabel:     cfg.Loader.SequenceLabel,
		PrimaryDateLayout: cfg.Loader.PrimaryDateLayout,
	})
	service := services.NewAnalysisService(loader, logger, metrics)

	router := transporthttp.NewRouter(cfg.Server, logger,
		transporthttp.NewAnalysisHandler(service, logger),
		transporthttp.NewHealthHandler(contracts.Version),
		registry)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", cfg.Server.Port),
			slog.String("version", contracts.Version))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
