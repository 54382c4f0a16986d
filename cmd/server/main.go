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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"swedishid/internal/platform/config"
	"swedishid/internal/platform/httpserver"
	"swedishid/internal/platform/logger"
	httptransport "swedishid/internal/transport/http"
	"swedishid/internal/validation"
	"swedishid/internal/validation/handler"
	"swedishid/internal/validation/metrics"
)

// main wires dependencies and runs the HTTP server until SIGINT or SIGTERM.
// Business logic lives in pkg/swedishid and internal/validation.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	deps := httptransport.Deps{Logger: log}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.NewWithRegisterer(reg)
		deps.Gatherer = reg
	}

	svc, err := validation.New(log, m, validation.Config{
		BatchLimit:   cfg.Validation.BatchLimit,
		BatchWorkers: cfg.Validation.BatchWorkers,
	})
	if err != nil {
		return fmt.Errorf("init validation service: %w", err)
	}
	deps.Validation = handler.New(svc, log)

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(deps))

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting swedishid server",
			"addr", cfg.Addr,
			"metrics_enabled", cfg.MetricsEnabled,
			"batch_limit", cfg.Validation.BatchLimit,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
