package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/randomtoy/natal-go/internal/astro"
	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

// ChartRequest is the application-level input (no HTTP types).
type ChartRequest struct {
	Instant                time.Time
	Latitude               float64
	Longitude              float64
	IncludeInterpretations bool
	Source                 ports.ChartSource
}

// ChartResponse is the application-level output.
type ChartResponse struct {
	Chart     domain.BirthChart
	LatencyMS int64
}

// ChartService orchestrates ephemeris lookups, house division, aspect
// detection and interpretation into a BirthChart.
type ChartService struct {
	ephemeris   ports.Ephemeris
	interpreter ports.Interpreter
	recorder    ports.ChartRecorder
	fanOut      FanOutConfig
	logger      *slog.Logger
}

func NewChartService(eph ports.Ephemeris, interp ports.Interpreter, rec ports.ChartRecorder, fanOut FanOutConfig, logger *slog.Logger) *ChartService {
	return &ChartService{
		ephemeris:   eph,
		interpreter: interp,
		recorder:    rec,
		fanOut:      fanOut,
		logger:      logger,
	}
}

func (s *ChartService) ComputeChart(ctx context.Context, req ChartRequest) (ChartResponse, error) {
	if err := domain.ValidateLocation(req.Latitude, req.Longitude); err != nil {
		return ChartResponse{}, err
	}

	start := time.Now()
	instant := req.Instant.UTC()

	positions, missing, err := s.fetchPositions(ctx, instant)
	if err != nil {
		return ChartResponse{}, fmt.Errorf("fetch positions: %w", err)
	}
	if len(positions) == 0 {
		return ChartResponse{}, domain.ErrNoPositions
	}

	chart := assembleChart(instant, domain.Location{Latitude: req.Latitude, Longitude: req.Longitude}, positions)
	chart.MissingBodies = missing

	if req.IncludeInterpretations {
		interp, err := s.interpreter.Interpret(ctx, ports.InterpretInput{
			Bodies:    chart.Bodies,
			Ascendant: chart.Ascendant.Placement,
			Aspects:   chart.Aspects,
		})
		if err != nil {
			return ChartResponse{}, fmt.Errorf("interpret: %w", err)
		}
		chart.Interpretation = &interp
	}

	chart.ID = uuid.New()

	source := req.Source
	if source == "" {
		source = ports.SourceRequest
	}
	if err := s.recorder.Record(ctx, chart, source); err != nil {
		s.logger.WarnContext(ctx, "failed to record chart", "chart_id", chart.ID, "error", err)
	}

	return ChartResponse{
		Chart:     chart,
		LatencyMS: time.Since(start).Milliseconds(),
	}, nil
}

func (s *ChartService) GetChart(ctx context.Context, id uuid.UUID) (domain.BirthChart, error) {
	chart, err := s.recorder.Get(ctx, id)
	if err != nil {
		return domain.BirthChart{}, fmt.Errorf("get chart: %w", err)
	}
	return chart, nil
}

func (s *ChartService) RecentCharts(ctx context.Context, limit int) ([]ports.ChartSummary, error) {
	charts, err := s.recorder.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent charts: %w", err)
	}
	return charts, nil
}

// assembleChart is the synchronous part of chart computation: sidereal time,
// houses, sign and house placement, aspects.
func assembleChart(instant time.Time, loc domain.Location, positions []domain.CelestialBodyPosition) domain.BirthChart {
	lst := astro.LocalSiderealTime(instant, loc.Longitude)
	obliquity := astro.ObliquityOfEcliptic(instant)
	cusps := astro.PlacidusHouses(lst, loc.Latitude, obliquity)

	houses := make([]domain.HouseCusp, astro.HouseCount)
	for i, lon := range cusps {
		houses[i] = domain.HouseCusp{
			Index:     i + 1,
			Longitude: lon,
			Placement: domain.ClassifyLongitude(lon),
		}
	}

	bodies := make([]domain.BodyPlacement, len(positions))
	for i, p := range positions {
		bodies[i] = domain.BodyPlacement{
			CelestialBodyPosition: p,
			Placement:             domain.ClassifyLongitude(p.Longitude),
			House:                 astro.HouseForLongitude(p.Longitude, cusps),
		}
	}

	return domain.BirthChart{
		Instant:   instant,
		Location:  loc,
		Ascendant: houses[0],
		Midheaven: houses[9],
		Houses:    houses,
		Bodies:    bodies,
		Aspects:   domain.CalculateAspects(positions),
	}
}
