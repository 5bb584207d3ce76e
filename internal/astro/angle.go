// Package astro holds the time, coordinate and house-division math used to
// orient a chart. Every angle is in degrees unless a name says otherwise.
package astro

import "math"

// Normalize maps any angle into [0, 360).
func Normalize(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	// -1e-15 + 360 rounds to 360 in float64.
	if d >= 360 {
		d = 0
	}
	return d
}

// ForwardArc returns the counter-clockwise distance from a to b in [0, 360).
func ForwardArc(a, b float64) float64 {
	return Normalize(b - a)
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
