package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Body identifies one of the ten charted solar-system bodies.
type Body int

const (
	Sun Body = iota
	Moon
	Mercury
	Venus
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto

	bodyCount
)

// AllBodies lists the charted bodies in canonical chart order.
var AllBodies = [bodyCount]Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var bodyNames = [bodyCount]string{"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto"}

var bodySymbols = [bodyCount]string{"☉", "☽", "☿", "♀", "♂", "♃", "♄", "♅", "♆", "♇"}

func (b Body) Valid() bool { return b >= 0 && b < bodyCount }

func (b Body) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// Symbol returns the astronomical glyph for b.
func (b Body) Symbol() string {
	if !b.Valid() {
		return ""
	}
	return bodySymbols[b]
}

func (b Body) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBody, int(b))
	}
	return []byte(bodyNames[b]), nil
}

func (b *Body) UnmarshalText(text []byte) error {
	parsed, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// ParseBody resolves a body by its English name.
func ParseBody(name string) (Body, error) {
	for i, n := range bodyNames {
		if n == name {
			return Body(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBody, name)
}

// Location is a geographic observer position in degrees, east and north positive.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CelestialBodyPosition is a geocentric ecliptic position reported by an
// ephemeris source for a single instant.
type CelestialBodyPosition struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	DistanceAU float64 `json:"distance_au"`
}

// ZodiacPlacement describes where a longitude falls in the zodiac.
type ZodiacPlacement struct {
	Sign         Sign     `json:"sign"`
	DegreeInSign float64  `json:"degree_in_sign"`
	Element      Element  `json:"element"`
	Modality     Modality `json:"modality"`
	Symbol       string   `json:"symbol"`
}

// HouseCusp is the boundary longitude opening house Index (1..12).
type HouseCusp struct {
	Index     int             `json:"index"`
	Longitude float64         `json:"longitude"`
	Placement ZodiacPlacement `json:"placement"`
}

// BodyPlacement is a body's position together with its sign and house.
type BodyPlacement struct {
	CelestialBodyPosition
	Placement ZodiacPlacement `json:"placement"`
	House     int             `json:"house"`
}

// BirthChart is the fully assembled chart for one instant and location.
type BirthChart struct {
	ID             uuid.UUID       `json:"id"`
	Instant        time.Time       `json:"instant"`
	Location       Location        `json:"location"`
	Ascendant      HouseCusp       `json:"ascendant"`
	Midheaven      HouseCusp       `json:"midheaven"`
	Houses         []HouseCusp     `json:"houses"`
	Bodies         []BodyPlacement `json:"bodies"`
	Aspects        []AspectRecord  `json:"aspects"`
	MissingBodies  []Body          `json:"missing_bodies,omitempty"`
	Interpretation *Interpretation `json:"interpretation,omitempty"`
}

// Body returns the placement of b, if it was charted.
func (c BirthChart) Body(b Body) (BodyPlacement, bool) {
	for _, p := range c.Bodies {
		if p.Body == b {
			return p, true
		}
	}
	return BodyPlacement{}, false
}

// Interpretation is the templated reading attached to a chart.
type Interpretation struct {
	Summary string                 `json:"summary"`
	Sun     string                 `json:"sun"`
	Moon    string                 `json:"moon"`
	Rising  string                 `json:"rising"`
	Bodies  []BodyInterpretation   `json:"bodies"`
	Houses  []HouseInterpretation  `json:"houses"`
	Aspects []AspectInterpretation `json:"aspects"`
}

type BodyInterpretation struct {
	Body Body   `json:"body"`
	Text string `json:"text"`
}

type HouseInterpretation struct {
	House int    `json:"house"`
	Text  string `json:"text"`
}

type AspectInterpretation struct {
	Aspect string `json:"aspect"`
	Text   string `json:"text"`
}
