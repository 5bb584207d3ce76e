package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the epoch 2000-01-01T12:00:00 TT.
const J2000 = 2451545.0

const daysPerJulianCentury = 36525.0

// JulianDay returns the Julian Day for t, read in UTC, using the Gregorian
// calendar formula. January and February count as months 13 and 14 of the
// previous year.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	if m <= 2 {
		y--
		m += 12
	}

	a := math.Floor(y / 100)
	b := 2 - a + math.Floor(a/4)

	dayFraction := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600) / 24

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(t.Day()) +
		dayFraction +
		b - 1524.5
}

// JulianCenturies returns T, the Julian centuries elapsed since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return (JulianDay(t) - J2000) / daysPerJulianCentury
}

// GreenwichSiderealTime returns the mean sidereal time at Greenwich in [0, 360).
func GreenwichSiderealTime(t time.Time) float64 {
	d := JulianDay(t) - J2000
	c := d / daysPerJulianCentury
	gst := 280.46061837 +
		360.98564736629*d +
		0.000387933*c*c -
		c*c*c/38710000
	return Normalize(gst)
}

// LocalSiderealTime returns the sidereal time at the given east-positive
// geographic longitude in [0, 360).
func LocalSiderealTime(t time.Time, longitude float64) float64 {
	return Normalize(GreenwichSiderealTime(t) + longitude)
}

// ObliquityOfEcliptic returns the mean obliquity of the ecliptic for t.
func ObliquityOfEcliptic(t time.Time) float64 {
	c := JulianCenturies(t)
	return 23.439291 - 0.013004*c - 0.00000016*c*c + 0.000000504*c*c*c
}
