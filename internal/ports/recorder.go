package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/natal-go/internal/domain"
)

// ChartSource tells where a recorded chart came from.
type ChartSource string

const (
	SourceRequest  ChartSource = "request"
	SourceSnapshot ChartSource = "snapshot"
)

// ChartSummary is a lightweight listing entry for a recorded chart.
type ChartSummary struct {
	ID         uuid.UUID
	Source     ChartSource
	Instant    time.Time
	Location   domain.Location
	RecordedAt time.Time
}

// ChartRecorder persists computed charts.
type ChartRecorder interface {
	Record(ctx context.Context, chart domain.BirthChart, source ChartSource) error
	Get(ctx context.Context, id uuid.UUID) (domain.BirthChart, error)
	Recent(ctx context.Context, limit int) ([]ChartSummary, error)
	Close() error
}
