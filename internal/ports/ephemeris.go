package ports

import (
	"context"
	"time"

	"github.com/randomtoy/natal-go/internal/domain"
)

// Ephemeris reports geocentric ecliptic positions. Lookups are per body so
// one failing body never takes the others down with it.
type Ephemeris interface {
	Position(ctx context.Context, body domain.Body, t time.Time) (domain.CelestialBodyPosition, error)
}
