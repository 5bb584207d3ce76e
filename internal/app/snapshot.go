package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

// SnapshotJob records the current sky over a fixed location each time it runs.
type SnapshotJob struct {
	svc      *ChartService
	location domain.Location
	now      func() time.Time
	logger   *slog.Logger
}

func NewSnapshotJob(svc *ChartService, loc domain.Location, now func() time.Time, logger *slog.Logger) *SnapshotJob {
	if now == nil {
		now = time.Now
	}
	return &SnapshotJob{svc: svc, location: loc, now: now, logger: logger}
}

func (j *SnapshotJob) Run(ctx context.Context) (domain.BirthChart, error) {
	resp, err := j.svc.ComputeChart(ctx, ChartRequest{
		Instant:   j.now(),
		Latitude:  j.location.Latitude,
		Longitude: j.location.Longitude,
		Source:    ports.SourceSnapshot,
	})
	if err != nil {
		return domain.BirthChart{}, fmt.Errorf("snapshot chart: %w", err)
	}
	j.logger.InfoContext(ctx, "sky snapshot recorded",
		"chart_id", resp.Chart.ID,
		"bodies", len(resp.Chart.Bodies),
		"missing", len(resp.Chart.MissingBodies),
		"latency_ms", resp.LatencyMS,
	)
	return resp.Chart, nil
}
