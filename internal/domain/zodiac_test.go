package domain_test

import (
	"math"
	"testing"

	"github.com/randomtoy/natal-go/internal/domain"
)

func TestClassifyLongitude_Boundaries(t *testing.T) {
	tests := []struct {
		lon        float64
		wantSign   domain.Sign
		wantDegree float64
	}{
		{0.0, domain.Aries, 0.0},
		{29.999, domain.Aries, 29.999},
		{30.0, domain.Taurus, 0.0},
		{359.999, domain.Pisces, 29.999},
		{360.0, domain.Aries, 0.0},
		{-0.5, domain.Pisces, 29.5},
		{245.25, domain.Sagittarius, 5.25},
	}
	for _, tc := range tests {
		p := domain.ClassifyLongitude(tc.lon)
		if p.Sign != tc.wantSign {
			t.Errorf("lon=%v: expected %s, got %s", tc.lon, tc.wantSign, p.Sign)
		}
		if math.Abs(p.DegreeInSign-tc.wantDegree) > 1e-9 {
			t.Errorf("lon=%v: expected degree %v, got %v", tc.lon, tc.wantDegree, p.DegreeInSign)
		}
	}
}

func TestClassifyLongitude_PeriodicInFullTurns(t *testing.T) {
	for _, lon := range []float64{0, 12.5, 29.25, 45, 90.125, 179.75, 200, 333.3, 359.5} {
		base := domain.ClassifyLongitude(lon)
		for _, k := range []int{-3, -1, 1, 2, 5} {
			got := domain.ClassifyLongitude(lon + 360*float64(k))
			if got.Sign != base.Sign || got.Element != base.Element || got.Modality != base.Modality || got.Symbol != base.Symbol {
				t.Errorf("lon=%v k=%d: %+v differs from %+v", lon, k, got, base)
			}
			if math.Abs(got.DegreeInSign-base.DegreeInSign) > 1e-9 {
				t.Errorf("lon=%v k=%d: degree %v differs from %v", lon, k, got.DegreeInSign, base.DegreeInSign)
			}
		}
	}
}

func TestClassifyLongitude_SignIndex(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 0.7 {
		p := domain.ClassifyLongitude(lon)
		if want := domain.Sign(int(math.Floor(lon/30)) % 12); p.Sign != want {
			t.Fatalf("lon=%v: expected %s, got %s", lon, want, p.Sign)
		}
		if p.DegreeInSign < 0 || p.DegreeInSign >= 30 {
			t.Fatalf("lon=%v: degree %v out of [0,30)", lon, p.DegreeInSign)
		}
	}
}

func TestSign_ElementAndModality(t *testing.T) {
	tests := []struct {
		sign     domain.Sign
		element  domain.Element
		modality domain.Modality
		symbol   string
	}{
		{domain.Aries, domain.Fire, domain.Cardinal, "♈"},
		{domain.Taurus, domain.Earth, domain.Fixed, "♉"},
		{domain.Gemini, domain.Air, domain.Mutable, "♊"},
		{domain.Cancer, domain.Water, domain.Cardinal, "♋"},
		{domain.Leo, domain.Fire, domain.Fixed, "♌"},
		{domain.Scorpio, domain.Water, domain.Fixed, "♏"},
		{domain.Capricorn, domain.Earth, domain.Cardinal, "♑"},
		{domain.Pisces, domain.Water, domain.Mutable, "♓"},
	}
	for _, tc := range tests {
		p := domain.ClassifyLongitude(float64(tc.sign)*30 + 10)
		if p.Element != tc.element || p.Modality != tc.modality || p.Symbol != tc.symbol {
			t.Errorf("%s: got element=%s modality=%s symbol=%s", tc.sign, p.Element, p.Modality, p.Symbol)
		}
	}
}

func TestSign_TextRoundTrip(t *testing.T) {
	for s := domain.Aries; s <= domain.Pisces; s++ {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%d: %v", s, err)
		}
		var back domain.Sign
		if err := back.UnmarshalText(text); err != nil || back != s {
			t.Errorf("%s: round trip gave %v, %v", s, back, err)
		}
	}
}
