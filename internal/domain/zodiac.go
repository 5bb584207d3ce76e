package domain

import (
	"fmt"
	"math"

	"github.com/randomtoy/natal-go/internal/astro"
)

// Sign is one of the twelve 30° zodiac signs, Aries = 0.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces

	signCount
)

const degreesPerSign = 30.0

var signNames = [signCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSymbols = [signCount]string{"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓"}

func (s Sign) Valid() bool { return s >= 0 && s < signCount }

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s]
}

func (s Sign) Symbol() string {
	if !s.Valid() {
		return ""
	}
	return signSymbols[s]
}

// Element cycles Fire, Earth, Air, Water starting at Aries.
func (s Sign) Element() Element { return Element(int(s) % 4) }

// Modality cycles Cardinal, Fixed, Mutable starting at Aries.
func (s Sign) Modality() Modality { return Modality(int(s) % 3) }

func (s Sign) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid sign %d", int(s))
	}
	return []byte(signNames[s]), nil
}

func (s *Sign) UnmarshalText(text []byte) error {
	for i, n := range signNames {
		if n == string(text) {
			*s = Sign(i)
			return nil
		}
	}
	return fmt.Errorf("unknown sign %q", text)
}

type Element int

const (
	Fire Element = iota
	Earth
	Air
	Water
)

var elementNames = [...]string{"Fire", "Earth", "Air", "Water"}

func (e Element) String() string { return elementNames[e] }

func (e Element) MarshalText() ([]byte, error) { return []byte(e.String()), nil }

func (e *Element) UnmarshalText(text []byte) error {
	return unmarshalName(text, elementNames[:], (*int)(e))
}

type Modality int

const (
	Cardinal Modality = iota
	Fixed
	Mutable
)

var modalityNames = [...]string{"Cardinal", "Fixed", "Mutable"}

func (m Modality) String() string { return modalityNames[m] }

func (m Modality) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Modality) UnmarshalText(text []byte) error {
	return unmarshalName(text, modalityNames[:], (*int)(m))
}

func unmarshalName(text []byte, names []string, dst *int) error {
	for i, n := range names {
		if n == string(text) {
			*dst = i
			return nil
		}
	}
	return fmt.Errorf("unknown name %q", text)
}

// ClassifyLongitude maps an ecliptic longitude onto the zodiac. The degree
// within the sign keeps full precision; round it only for display.
func ClassifyLongitude(longitude float64) ZodiacPlacement {
	lon := astro.Normalize(longitude)
	sign := Sign(int(math.Floor(lon/degreesPerSign)) % int(signCount))

	return ZodiacPlacement{
		Sign:         sign,
		DegreeInSign: math.Mod(lon, degreesPerSign),
		Element:      sign.Element(),
		Modality:     sign.Modality(),
		Symbol:       sign.Symbol(),
	}
}
