package domain

import (
	"fmt"
	"math"
)

// AspectKind names an angular relationship between two bodies.
type AspectKind int

const (
	Conjunction AspectKind = iota
	Opposition
	Trine
	Square
	Sextile
	Quincunx
	Semisextile
	Semisquare
	Sesquiquadrate

	aspectKindCount
)

// Nature is the traditional quality of an aspect.
type Nature string

const (
	Harmonious  Nature = "harmonious"
	Challenging Nature = "challenging"
	Neutral     Nature = "neutral"
)

// AspectDefinition is an exact angle with its allowed orb.
type AspectDefinition struct {
	Kind   AspectKind
	Angle  float64
	Orb    float64
	Symbol string
	Nature Nature
}

// AspectDefinitions is scanned in order and the first match wins, so a
// separation inside two orbs takes the earlier entry even when the later one
// is closer. Reordering this table changes results.
var AspectDefinitions = [aspectKindCount]AspectDefinition{
	{Conjunction, 0, 8, "☌", Neutral},
	{Opposition, 180, 8, "☍", Challenging},
	{Trine, 120, 6, "△", Harmonious},
	{Square, 90, 6, "□", Challenging},
	{Sextile, 60, 4, "⚹", Harmonious},
	{Quincunx, 150, 3, "⚻", Challenging},
	{Semisextile, 30, 2, "⚺", Neutral},
	{Semisquare, 45, 2, "∠", Challenging},
	{Sesquiquadrate, 135, 2, "⚼", Challenging},
}

var aspectNames = [aspectKindCount]string{
	"Conjunction", "Opposition", "Trine", "Square", "Sextile",
	"Quincunx", "Semisextile", "Semisquare", "Sesquiquadrate",
}

func (k AspectKind) Valid() bool { return k >= 0 && k < aspectKindCount }

func (k AspectKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("AspectKind(%d)", int(k))
	}
	return aspectNames[k]
}

// Definition returns the table entry for k.
func (k AspectKind) Definition() AspectDefinition { return AspectDefinitions[k] }

func (k AspectKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid aspect kind %d", int(k))
	}
	return []byte(aspectNames[k]), nil
}

func (k *AspectKind) UnmarshalText(text []byte) error {
	return unmarshalName(text, aspectNames[:], (*int)(k))
}

// applyingThreshold is the residual below which an aspect is flagged applying.
const applyingThreshold = 1.0

// AspectRecord is the aspect found between two bodies.
//
// Applying is a proximity flag only: it is set when the separation is within
// one degree of exact and does not look at the bodies' relative motion, so a
// separating aspect near exactness is reported as applying too.
type AspectRecord struct {
	BodyA    Body       `json:"body_a"`
	BodyB    Body       `json:"body_b"`
	Kind     AspectKind `json:"kind"`
	Angle    float64    `json:"angle"`
	Orb      float64    `json:"orb"`
	Symbol   string     `json:"symbol"`
	Nature   Nature     `json:"nature"`
	Applying bool       `json:"applying"`
}

// Separation returns the shortest angular distance between two longitudes,
// in [0, 180].
func Separation(lon1, lon2 float64) float64 {
	d := math.Mod(math.Abs(lon1-lon2), 360)
	return math.Min(d, 360-d)
}

// FindAspect classifies the separation between a and b against
// AspectDefinitions. The result does not depend on argument order apart
// from which body is reported as BodyA.
func FindAspect(a, b CelestialBodyPosition) (AspectRecord, bool) {
	def, residual, ok := classifySeparation(Separation(a.Longitude, b.Longitude), AspectDefinitions[:])
	if !ok {
		return AspectRecord{}, false
	}
	return AspectRecord{
		BodyA:    a.Body,
		BodyB:    b.Body,
		Kind:     def.Kind,
		Angle:    def.Angle,
		Orb:      Round2(residual),
		Symbol:   def.Symbol,
		Nature:   def.Nature,
		Applying: residual < applyingThreshold,
	}, true
}

// classifySeparation returns the first definition whose orb holds sep.
func classifySeparation(sep float64, defs []AspectDefinition) (AspectDefinition, float64, bool) {
	for _, def := range defs {
		if residual := math.Abs(sep - def.Angle); residual <= def.Orb {
			return def, residual, true
		}
	}
	return AspectDefinition{}, 0, false
}

// CalculateAspects returns at most one aspect per unordered pair of bodies,
// pairs visited in input order.
func CalculateAspects(bodies []CelestialBodyPosition) []AspectRecord {
	var aspects []AspectRecord
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Body == bodies[j].Body {
				continue
			}
			if rec, ok := FindAspect(bodies[i], bodies[j]); ok {
				aspects = append(aspects, rec)
			}
		}
	}
	return aspects
}
