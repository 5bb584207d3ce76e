package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/randomtoy/natal-go/internal/astro"
	"github.com/randomtoy/natal-go/internal/domain"
)

// FanOutConfig bounds the per-request ephemeris lookups.
type FanOutConfig struct {
	// LookupTimeout caps the wait for a single body; zero leaves only the
	// caller's deadline.
	LookupTimeout time.Duration
	// Concurrency caps simultaneous lookups; zero or less means one per body.
	Concurrency int
}

type lookupResult struct {
	pos domain.CelestialBodyPosition
	err error
}

// fetchPositions looks every charted body up concurrently. Failed or timed out
// bodies are returned in missing instead of failing the call; only
// cancellation of ctx itself is an error, and then partial results are dropped.
func (s *ChartService) fetchPositions(ctx context.Context, t time.Time) ([]domain.CelestialBodyPosition, []domain.Body, error) {
	results := make([]lookupResult, len(domain.AllBodies))

	limit := s.fanOut.Concurrency
	if limit <= 0 || limit > len(domain.AllBodies) {
		limit = len(domain.AllBodies)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, body := range domain.AllBodies {
		g.Go(func() error {
			pos, err := s.lookup(gctx, body, t)
			results[i] = lookupResult{pos: pos, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	positions := make([]domain.CelestialBodyPosition, 0, len(results))
	var missing []domain.Body
	for i, r := range results {
		body := domain.AllBodies[i]
		if r.err != nil {
			s.logger.WarnContext(ctx, "ephemeris lookup failed, omitting body", "body", body.String(), "error", r.err)
			missing = append(missing, body)
			continue
		}
		positions = append(positions, r.pos)
	}
	return positions, missing, nil
}

// lookup waits at most LookupTimeout for one body. A provider that ignores
// its context is abandoned rather than waited on.
func (s *ChartService) lookup(ctx context.Context, body domain.Body, t time.Time) (domain.CelestialBodyPosition, error) {
	if s.fanOut.LookupTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.fanOut.LookupTimeout)
		defer cancel()
	}

	done := make(chan lookupResult, 1)
	go func() {
		pos, err := s.ephemeris.Position(ctx, body, t)
		done <- lookupResult{pos: pos, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return domain.CelestialBodyPosition{}, lookupError(body, r.err)
		}
		r.pos.Body = body
		r.pos.Longitude = astro.Normalize(r.pos.Longitude)
		return r.pos, nil
	case <-ctx.Done():
		return domain.CelestialBodyPosition{}, lookupError(body, ctx.Err())
	}
}

func lookupError(body domain.Body, err error) error {
	if errors.Is(err, domain.ErrEphemerisLookup) {
		return fmt.Errorf("%s: %w", body, err)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrEphemerisLookup, body, err)
}
