package recorder

import (
	"context"

	"github.com/google/uuid"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

// NoopRecorder discards charts; used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (NoopRecorder) Record(context.Context, domain.BirthChart, ports.ChartSource) error { return nil }

func (NoopRecorder) Get(context.Context, uuid.UUID) (domain.BirthChart, error) {
	return domain.BirthChart{}, domain.ErrChartNotFound
}

func (NoopRecorder) Recent(context.Context, int) ([]ports.ChartSummary, error) { return nil, nil }

func (NoopRecorder) Close() error { return nil }
