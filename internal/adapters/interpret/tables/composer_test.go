package tables

import (
	"context"
	"strings"
	"testing"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

func placement(b domain.Body, lon float64, house int) domain.BodyPlacement {
	return domain.BodyPlacement{
		CelestialBodyPosition: domain.CelestialBodyPosition{Body: b, Longitude: lon},
		Placement:             domain.ClassifyLongitude(lon),
		House:                 house,
	}
}

func TestTables_Complete(t *testing.T) {
	checks := []struct {
		name  string
		table []string
		want  int
		from  int
	}{
		{"sun", sunTexts[:], 12, 0},
		{"moon", moonTexts[:], 12, 0},
		{"sign qualities", signQualities[:], 12, 0},
		{"body themes", bodyThemes[:], len(domain.AllBodies), 0},
		{"aspects", aspectTexts[:], len(domain.AspectDefinitions), 0},
		{"houses", houseTexts[:], 13, 1},
	}
	for _, c := range checks {
		if len(c.table) != c.want {
			t.Errorf("%s: expected %d entries, got %d", c.name, c.want, len(c.table))
		}
		for i := c.from; i < len(c.table); i++ {
			if c.table[i] == "" {
				t.Errorf("%s: entry %d is empty", c.name, i)
			}
		}
	}
}

func TestCompose(t *testing.T) {
	in := ports.InterpretInput{
		Bodies: []domain.BodyPlacement{
			placement(domain.Sun, 280.4, 10),
			placement(domain.Moon, 223.3, 8),
			placement(domain.Mars, 327.9, 11),
		},
		Ascendant: domain.ClassifyLongitude(5),
		Aspects: []domain.AspectRecord{
			{BodyA: domain.Sun, BodyB: domain.Mars, Kind: domain.Semisquare, Symbol: "∠"},
		},
	}

	out, err := NewComposer().Interpret(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out.Sun, "Capricorn Sun: ") {
		t.Errorf("unexpected sun text: %s", out.Sun)
	}
	if !strings.HasPrefix(out.Moon, "Scorpio Moon: ") {
		t.Errorf("unexpected moon text: %s", out.Moon)
	}
	if !strings.Contains(out.Rising, "Aries") {
		t.Errorf("rising text should name the ascendant sign: %s", out.Rising)
	}
	for _, s := range []string{"Sun in Capricorn", "Moon in Scorpio", "Ascendant in Aries"} {
		if !strings.Contains(out.Summary, s) {
			t.Errorf("summary missing %q: %s", s, out.Summary)
		}
	}

	if len(out.Bodies) != 3 || len(out.Houses) != 3 {
		t.Fatalf("expected one body and house text per body, got %d/%d", len(out.Bodies), len(out.Houses))
	}
	if out.Bodies[2].Text != "Mars in Aquarius: How you act and assert yourself is original and detached." {
		t.Errorf("unexpected mars text: %s", out.Bodies[2].Text)
	}
	if out.Houses[0].House != 10 || !strings.HasPrefix(out.Houses[0].Text, "Sun in House 10: House of Career") {
		t.Errorf("unexpected house text: %+v", out.Houses[0])
	}

	if len(out.Aspects) != 1 {
		t.Fatalf("expected 1 aspect text, got %d", len(out.Aspects))
	}
	if out.Aspects[0].Aspect != "Sun ∠ Mars" || !strings.HasPrefix(out.Aspects[0].Text, "Semisquare: Mild friction") {
		t.Errorf("unexpected aspect text: %+v", out.Aspects[0])
	}
}

func TestCompose_MissingLuminaries(t *testing.T) {
	out := Compose(ports.InterpretInput{
		Bodies:    []domain.BodyPlacement{placement(domain.Venus, 100, 4)},
		Ascendant: domain.ClassifyLongitude(200),
	})

	if out.Sun != sunFallback || out.Moon != moonFallback {
		t.Errorf("expected fallbacks, got %q / %q", out.Sun, out.Moon)
	}
	if !strings.Contains(out.Summary, "Sun in unknown gives you a core identity of unique expression") {
		t.Errorf("unexpected summary: %s", out.Summary)
	}
	if len(out.Aspects) != 0 {
		t.Errorf("expected no aspect texts, got %d", len(out.Aspects))
	}
}

func TestCompose_Deterministic(t *testing.T) {
	in := ports.InterpretInput{
		Bodies:    []domain.BodyPlacement{placement(domain.Sun, 10, 1), placement(domain.Pluto, 250, 9)},
		Ascendant: domain.ClassifyLongitude(0),
	}
	a, b := Compose(in), Compose(in)
	if a.Summary != b.Summary || a.Bodies[1] != b.Bodies[1] {
		t.Error("compose should be deterministic")
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	if got := lookup(houseTexts[:], 0, houseFallback); got != houseFallback {
		t.Errorf("house 0 should fall back, got %q", got)
	}
	if got := lookup(houseTexts[:], 13, houseFallback); got != houseFallback {
		t.Errorf("house 13 should fall back, got %q", got)
	}
}
