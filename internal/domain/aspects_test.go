package domain_test

import (
	"testing"

	"github.com/randomtoy/natal-go/internal/domain"
)

func pos(b domain.Body, lon float64) domain.CelestialBodyPosition {
	return domain.CelestialBodyPosition{Body: b, Longitude: lon, DistanceAU: 1}
}

func TestFindAspect_IdenticalLongitude(t *testing.T) {
	for _, lon := range []float64{0, 17.3, 180, 359.99} {
		rec, ok := domain.FindAspect(pos(domain.Sun, lon), pos(domain.Mercury, lon))
		if !ok {
			t.Fatalf("lon=%v: expected conjunction", lon)
		}
		if rec.Kind != domain.Conjunction || rec.Orb != 0 {
			t.Errorf("lon=%v: expected Conjunction orb 0.00, got %s orb %v", lon, rec.Kind, rec.Orb)
		}
		if !rec.Applying {
			t.Errorf("lon=%v: exact conjunction should be flagged applying", lon)
		}
	}
}

func TestFindAspect_Kinds(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		wantKind domain.AspectKind
		wantOrb  float64
		nature   domain.Nature
	}{
		{"conjunction across zero", 355, 3, domain.Conjunction, 8, domain.Neutral},
		{"opposition", 10, 188.5, domain.Opposition, 1.5, domain.Challenging},
		{"trine", 0, 245, domain.Trine, 5, domain.Harmonious},
		{"square", 100, 14, domain.Square, 4, domain.Challenging},
		{"sextile", 30, 93.333, domain.Sextile, 3.33, domain.Harmonious},
		{"quincunx", 0, 152.5, domain.Quincunx, 2.5, domain.Challenging},
		{"semisextile", 0, 31.994, domain.Semisextile, 1.99, domain.Neutral},
		{"semisquare", 200, 156, domain.Semisquare, 1, domain.Challenging},
		{"sesquiquadrate", 0, 136.75, domain.Sesquiquadrate, 1.75, domain.Challenging},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := domain.FindAspect(pos(domain.Venus, tc.a), pos(domain.Mars, tc.b))
			if !ok {
				t.Fatal("expected an aspect")
			}
			if rec.Kind != tc.wantKind {
				t.Errorf("expected %s, got %s", tc.wantKind, rec.Kind)
			}
			if rec.Orb != tc.wantOrb {
				t.Errorf("expected orb %v, got %v", tc.wantOrb, rec.Orb)
			}
			if rec.Nature != tc.nature {
				t.Errorf("expected nature %s, got %s", tc.nature, rec.Nature)
			}
			if rec.Orb > rec.Kind.Definition().Orb {
				t.Errorf("orb %v exceeds maximum %v", rec.Orb, rec.Kind.Definition().Orb)
			}
		})
	}
}

func TestFindAspect_PairOrderIndependent(t *testing.T) {
	lons := []float64{0, 7.9, 44.2, 61, 89.5, 121, 135.5, 149, 178, 212.4, 300, 359.9}
	for _, la := range lons {
		for _, lb := range lons {
			ab, okAB := domain.FindAspect(pos(domain.Jupiter, la), pos(domain.Saturn, lb))
			ba, okBA := domain.FindAspect(pos(domain.Saturn, lb), pos(domain.Jupiter, la))
			if okAB != okBA {
				t.Fatalf("%v/%v: found=%v reversed found=%v", la, lb, okAB, okBA)
			}
			if ab.Kind != ba.Kind || ab.Angle != ba.Angle || ab.Orb != ba.Orb || ab.Applying != ba.Applying {
				t.Errorf("%v/%v: %+v differs from reversed %+v", la, lb, ab, ba)
			}
		}
	}
}

func TestFindAspect_NoAspect(t *testing.T) {
	for _, sep := range []float64{10, 20, 50, 70, 100, 110, 140, 160, 170} {
		if rec, ok := domain.FindAspect(pos(domain.Sun, 0), pos(domain.Moon, sep)); ok {
			t.Errorf("sep=%v: unexpected %s", sep, rec.Kind)
		}
	}
}

func TestFindAspect_ApplyingHeuristic(t *testing.T) {
	tests := []struct {
		sep  float64
		want bool
	}{
		{120, true},
		{120.99, true},
		{119.2, true},
		{121, false},
		{124, false},
	}
	for _, tc := range tests {
		rec, ok := domain.FindAspect(pos(domain.Sun, 10), pos(domain.Mars, 10+tc.sep))
		if !ok || rec.Kind != domain.Trine {
			t.Fatalf("sep=%v: expected trine", tc.sep)
		}
		if rec.Applying != tc.want {
			t.Errorf("sep=%v: expected applying=%v", tc.sep, tc.want)
		}
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct{ a, b, want float64 }{
		{0, 0, 0},
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 271, 179},
		{720, 30, 30},
	}
	for _, tc := range tests {
		if got := domain.Separation(tc.a, tc.b); got != tc.want {
			t.Errorf("Separation(%v,%v): expected %v, got %v", tc.a, tc.b, tc.want, got)
		}
	}
}

func TestCalculateAspects(t *testing.T) {
	bodies := []domain.CelestialBodyPosition{
		pos(domain.Sun, 10),
		pos(domain.Moon, 12),
		pos(domain.Mercury, 100),
		pos(domain.Venus, 190),
		pos(domain.Mars, 250),
	}
	aspects := domain.CalculateAspects(bodies)

	type pair struct{ a, b domain.Body }
	want := map[pair]domain.AspectKind{
		{domain.Sun, domain.Moon}:      domain.Conjunction,
		{domain.Sun, domain.Mercury}:   domain.Square,
		{domain.Sun, domain.Venus}:     domain.Opposition,
		{domain.Sun, domain.Mars}:      domain.Trine,
		{domain.Moon, domain.Mercury}:  domain.Square,
		{domain.Moon, domain.Venus}:    domain.Opposition,
		{domain.Moon, domain.Mars}:     domain.Trine,
		{domain.Mercury, domain.Venus}: domain.Square,
		{domain.Mercury, domain.Mars}:  domain.Quincunx,
		{domain.Venus, domain.Mars}:    domain.Sextile,
	}

	seen := make(map[pair]bool)
	for _, a := range aspects {
		p := pair{a.BodyA, a.BodyB}
		if seen[p] || seen[pair{a.BodyB, a.BodyA}] {
			t.Errorf("duplicate aspect for %s/%s", a.BodyA, a.BodyB)
		}
		seen[p] = true
		if a.BodyA == a.BodyB {
			t.Errorf("self aspect for %s", a.BodyA)
		}
		if k, ok := want[p]; !ok || k != a.Kind {
			t.Errorf("%s/%s: unexpected %s", a.BodyA, a.BodyB, a.Kind)
		}
	}
	if len(aspects) != len(want) {
		t.Errorf("expected %d aspects, got %d", len(want), len(aspects))
	}
}

func TestAspectDefinitions_Order(t *testing.T) {
	want := []domain.AspectKind{
		domain.Conjunction, domain.Opposition, domain.Trine, domain.Square, domain.Sextile,
		domain.Quincunx, domain.Semisextile, domain.Semisquare, domain.Sesquiquadrate,
	}
	for i, def := range domain.AspectDefinitions {
		if def.Kind != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], def.Kind)
		}
	}
}
