package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentops/resume-intake/internal/bootstrap"
	"github.com/talentops/resume-intake/internal/config"
	"github.com/talentops/resume-intake/internal/core/domain"
)

const service = "resume-intake"

func main() {
	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}
	defer app.Close()

	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: app.Metrics.Handler(),
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Log.Error("metrics server stopped", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}()

	if cfg.RunOnce {
		runPass(ctx, app)
		return
	}

	app.Log.Info("intake worker started", "interval", cfg.CycleInterval.String())
	ticker := time.NewTicker(cfg.CycleInterval)
	defer ticker.Stop()

	runPass(ctx, app)
	for {
		select {
		case <-ctx.Done():
			app.Log.Info("intake worker stopping")
			return
		case <-ticker.C:
			runPass(ctx, app)
		}
	}
}

// runPass collects documents, runs one processing pass and publishes the
// summary. Failures are logged, never fatal: the next tick tries again.
func runPass(ctx context.Context, app *bootstrap.App) {
	start := time.Now()

	docs, err := app.Source.Collect(ctx)
	if err != nil {
		app.Log.Error("document collection failed", "error", err)
		app.Metrics.ObserveBatch(service, domain.BatchSummary{}, time.Since(start), err)
		return
	}

	summary, err := app.ProcessUC.Run(ctx, docs)
	app.Metrics.ObserveBatch(service, summary, time.Since(start), err)
	if err != nil {
		app.Log.Error("intake pass failed", "error", err)
		return
	}

	app.Log.Info("intake pass finished",
		"collected", summary.Collected,
		"processed", summary.Processed,
		"failed", summary.Failed,
		"discarded", summary.Discarded,
		"new", summary.New,
		"duplicate", summary.Duplicate,
		"dataset_size", summary.DatasetSize,
		"duration", time.Since(start).String(),
	)

	if app.Publisher != nil {
		if err := app.Publisher.PublishBatchProcessed(ctx, summary); err != nil {
			app.Log.Warn("batch event publish failed", "error", err)
		}
	}
}
