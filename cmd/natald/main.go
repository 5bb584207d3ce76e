package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/natal-go/internal/adapters/ephemeris/cache"
	"github.com/randomtoy/natal-go/internal/adapters/ephemeris/horizons"
	httpadapter "github.com/randomtoy/natal-go/internal/adapters/http"
	"github.com/randomtoy/natal-go/internal/adapters/interpret/tables"
	"github.com/randomtoy/natal-go/internal/adapters/recorder"
	"github.com/randomtoy/natal-go/internal/app"
	"github.com/randomtoy/natal-go/internal/config"
	"github.com/randomtoy/natal-go/internal/ports"
	"github.com/randomtoy/natal-go/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	var eph ports.Ephemeris = horizons.NewClient(
		&http.Client{Timeout: cfg.EphemerisTimeout},
		cfg.EphemerisBaseURL,
		logger,
	)
	if cfg.EphemerisCacheSize > 0 {
		cached, err := cache.NewEphemeris(eph, cfg.EphemerisCacheSize)
		if err != nil {
			logger.Error("failed to create ephemeris cache", "error", err)
			os.Exit(1)
		}
		eph = cached
	}

	rec, err := openRecorder(cfg.SQLitePath)
	if err != nil {
		logger.Error("failed to open chart recorder", "path", cfg.SQLitePath, "error", err)
		os.Exit(1)
	}
	defer rec.Close()

	svc := app.NewChartService(eph, tables.NewComposer(), rec, app.FanOutConfig{
		LookupTimeout: cfg.EphemerisTimeout,
		Concurrency:   cfg.EphemerisConcurrency,
	}, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(svc, logger)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SnapshotCron != "" {
		job := app.NewSnapshotJob(svc, cfg.SnapshotLocation, time.Now, logger)
		sched := scheduler.New(ctx, job, 2*cfg.EphemerisTimeout, logger)
		if err := sched.Register(cfg.SnapshotCron); err != nil {
			logger.Error("failed to register snapshot job", "error", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "sqlite", cfg.SQLitePath != "", "cache_size", cfg.EphemerisCacheSize)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func openRecorder(path string) (ports.ChartRecorder, error) {
	if path == "" {
		return recorder.NewNoopRecorder(), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return recorder.NewSQLiteRecorder(path)
}
