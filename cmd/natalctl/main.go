// Command natalctl computes a natal chart from the command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/randomtoy/natal-go/internal/adapters/ephemeris/horizons"
	"github.com/randomtoy/natal-go/internal/adapters/interpret/tables"
	"github.com/randomtoy/natal-go/internal/adapters/recorder"
	"github.com/randomtoy/natal-go/internal/app"
	"github.com/randomtoy/natal-go/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(newService, os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// newService wires the live ephemeris. Logs go to stderr so stdout stays JSON.
func newService() (*app.ChartService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	eph := horizons.NewClient(&http.Client{Timeout: cfg.EphemerisTimeout}, cfg.EphemerisBaseURL, logger)
	return app.NewChartService(eph, tables.NewComposer(), recorder.NewNoopRecorder(), app.FanOutConfig{
		LookupTimeout: cfg.EphemerisTimeout,
		Concurrency:   cfg.EphemerisConcurrency,
	}, logger), nil
}
