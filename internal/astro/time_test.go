package astro_test

import (
	"math"
	"testing"
	"time"

	"github.com/randomtoy/natal-go/internal/astro"
)

func circularDiff(a, b float64) float64 {
	d := math.Abs(astro.Normalize(a) - astro.Normalize(b))
	return math.Min(d, 360-d)
}

func TestJulianDay_J2000(t *testing.T) {
	instant := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	if got := astro.JulianDay(instant); math.Abs(got-astro.J2000) > 1e-9 {
		t.Errorf("expected %.6f, got %.6f", astro.J2000, got)
	}
}

func TestJulianDay_KnownDates(t *testing.T) {
	tests := []struct {
		name    string
		instant time.Time
		want    float64
	}{
		{"january rolls into previous year", time.Date(1987, time.January, 27, 0, 0, 0, 0, time.UTC), 2446822.5},
		{"mid year", time.Date(1987, time.June, 19, 12, 0, 0, 0, time.UTC), 2446966.0},
		{"leap day", time.Date(2000, time.February, 29, 0, 0, 0, 0, time.UTC), 2451603.5},
		{"fractional day", time.Date(1999, time.January, 1, 18, 0, 0, 0, time.UTC), 2451180.25},
		{"offset zone read as UTC", time.Date(2000, time.January, 1, 14, 0, 0, 0, time.FixedZone("EET", 2*3600)), 2451545.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := astro.JulianDay(tc.instant); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected %.6f, got %.6f", tc.want, got)
			}
		})
	}
}

func TestGreenwichSiderealTime_J2000(t *testing.T) {
	instant := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	got := astro.GreenwichSiderealTime(instant)
	if math.Abs(got-280.46) > 1e-2 || math.Abs(got-280.46061837) > 1e-4 {
		t.Errorf("expected ~280.46061837, got %.8f", got)
	}
}

func TestGreenwichSiderealTime_Range(t *testing.T) {
	start := time.Date(1900, time.March, 3, 4, 5, 6, 0, time.UTC)
	for i := 0; i < 500; i++ {
		instant := start.Add(time.Duration(i) * 97 * 24 * time.Hour / 7)
		got := astro.GreenwichSiderealTime(instant)
		if got < 0 || got >= 360 {
			t.Fatalf("%s: GST %.6f out of [0,360)", instant, got)
		}
	}
}

func TestLocalSiderealTime_ShiftsByLongitude(t *testing.T) {
	instants := []time.Time{
		time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC),
		time.Date(1990, time.June, 15, 18, 30, 0, 0, time.UTC),
		time.Date(2031, time.November, 2, 3, 4, 5, 0, time.UTC),
	}
	for _, instant := range instants {
		base := astro.LocalSiderealTime(instant, 0)
		for lon := -180.0; lon <= 180; lon += 7.5 {
			got := astro.LocalSiderealTime(instant, lon)
			if got < 0 || got >= 360 {
				t.Fatalf("LST %.6f out of range", got)
			}
			if d := circularDiff(got, base+lon); d > 1e-9 {
				t.Errorf("%s lon=%.1f: LST %.9f differs from base+lon by %.3g", instant, lon, got, d)
			}
		}
	}
}

func TestObliquityOfEcliptic(t *testing.T) {
	j2000 := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	if got := astro.ObliquityOfEcliptic(j2000); math.Abs(got-23.439291) > 1e-9 {
		t.Errorf("expected 23.439291 at J2000, got %.9f", got)
	}

	later := astro.ObliquityOfEcliptic(time.Date(2100, time.January, 1, 12, 0, 0, 0, time.UTC))
	if later >= 23.439291 || later < 23.4 {
		t.Errorf("expected slowly decreasing obliquity, got %.6f", later)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-30, 330},
		{725, 5},
		{-720, 0},
		{359.5, 359.5},
	}
	for _, tc := range tests {
		if got := astro.Normalize(tc.in); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Normalize(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
