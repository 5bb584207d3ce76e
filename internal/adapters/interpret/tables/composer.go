// Package tables composes chart interpretations from static text tables.
package tables

import (
	"context"
	"fmt"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

// Composer implements ports.Interpreter without any I/O.
type Composer struct{}

func NewComposer() *Composer { return &Composer{} }

func (Composer) Interpret(_ context.Context, in ports.InterpretInput) (domain.Interpretation, error) {
	return Compose(in), nil
}

// Compose builds the interpretation for a set of placements.
func Compose(in ports.InterpretInput) domain.Interpretation {
	sun, hasSun := findBody(in.Bodies, domain.Sun)
	moon, hasMoon := findBody(in.Bodies, domain.Moon)
	rising := in.Ascendant.Sign

	out := domain.Interpretation{
		Sun:     luminaryText(sun, hasSun, sunTexts[:], sunFallback),
		Moon:    luminaryText(moon, hasMoon, moonTexts[:], moonFallback),
		Rising:  fmt.Sprintf("Your Rising sign is %s, representing how you present yourself to the world and your initial reactions to new situations.", rising),
		Bodies:  make([]domain.BodyInterpretation, 0, len(in.Bodies)),
		Houses:  make([]domain.HouseInterpretation, 0, len(in.Bodies)),
		Aspects: make([]domain.AspectInterpretation, 0, len(in.Aspects)),
	}

	for _, b := range in.Bodies {
		out.Bodies = append(out.Bodies, domain.BodyInterpretation{Body: b.Body, Text: bodyText(b)})
		out.Houses = append(out.Houses, domain.HouseInterpretation{
			House: b.House,
			Text:  fmt.Sprintf("%s in House %d: %s", b.Body, b.House, lookup(houseTexts[:], b.House, houseFallback)),
		})
	}

	for _, a := range in.Aspects {
		out.Aspects = append(out.Aspects, domain.AspectInterpretation{
			Aspect: fmt.Sprintf("%s %s %s", a.BodyA, a.Symbol, a.BodyB),
			Text:   fmt.Sprintf("%s: %s", a.Kind, lookup(aspectTexts[:], int(a.Kind), aspectFallback)),
		})
	}

	out.Summary = summary(signName(sun, hasSun), signName(moon, hasMoon), rising.String())
	return out
}

func luminaryText(p domain.BodyPlacement, ok bool, table []string, fallback string) string {
	if !ok {
		return fallback
	}
	text := lookup(table, int(p.Placement.Sign), "")
	if text == "" {
		return fallback
	}
	return fmt.Sprintf("%s %s: %s", p.Placement.Sign, p.Body, text)
}

func bodyText(p domain.BodyPlacement) string {
	sign := p.Placement.Sign
	switch p.Body {
	case domain.Sun:
		if t := lookup(sunTexts[:], int(sign), ""); t != "" {
			return fmt.Sprintf("%s in %s: %s", p.Body, sign, t)
		}
	case domain.Moon:
		if t := lookup(moonTexts[:], int(sign), ""); t != "" {
			return fmt.Sprintf("%s in %s: %s", p.Body, sign, t)
		}
	}

	theme := lookup(bodyThemes[:], int(p.Body), "")
	quality := lookup(signQualities[:], int(sign), "")
	if theme == "" || quality == "" {
		return fmt.Sprintf("%s in %s", p.Body, sign)
	}
	return fmt.Sprintf("%s in %s: %s is %s.", p.Body, sign, capitalize(theme), quality)
}

func summary(sun, moon, rising string) string {
	identity := sun
	if sun == "unknown" {
		identity = "unique expression"
	}
	return fmt.Sprintf("Your Sun in %s gives you a core identity of %s, while your Moon in %s shapes your emotional responses. With your Ascendant in %s, you present yourself to the world with %s energy.",
		sun, identity, moon, rising, rising)
}

func findBody(bodies []domain.BodyPlacement, b domain.Body) (domain.BodyPlacement, bool) {
	for _, p := range bodies {
		if p.Body == b {
			return p, true
		}
	}
	return domain.BodyPlacement{}, false
}

func signName(p domain.BodyPlacement, ok bool) string {
	if !ok {
		return "unknown"
	}
	return p.Placement.Sign.String()
}

func lookup(table []string, i int, fallback string) string {
	if i < 0 || i >= len(table) || table[i] == "" {
		return fallback
	}
	return table[i]
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
