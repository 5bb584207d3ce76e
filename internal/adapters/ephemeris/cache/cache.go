// Package cache memoizes ephemeris lookups in process memory.
package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

type key struct {
	body    domain.Body
	instant int64
}

// Ephemeris wraps another ports.Ephemeris with an LRU of successful lookups.
// Errors are never cached.
type Ephemeris struct {
	next  ports.Ephemeris
	cache *lru.Cache[key, domain.CelestialBodyPosition]
}

func NewEphemeris(next ports.Ephemeris, size int) (*Ephemeris, error) {
	c, err := lru.New[key, domain.CelestialBodyPosition](size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	return &Ephemeris{next: next, cache: c}, nil
}

func (e *Ephemeris) Position(ctx context.Context, body domain.Body, t time.Time) (domain.CelestialBodyPosition, error) {
	k := key{body: body, instant: t.UnixNano()}
	if pos, ok := e.cache.Get(k); ok {
		return pos, nil
	}

	pos, err := e.next.Position(ctx, body, t)
	if err != nil {
		return domain.CelestialBodyPosition{}, err
	}
	e.cache.Add(k, pos)
	return pos, nil
}

// Len reports the number of cached positions.
func (e *Ephemeris) Len() int { return e.cache.Len() }
