package http

import (
	"time"

	"github.com/randomtoy/natal-go/internal/domain"
	"github.com/randomtoy/natal-go/internal/ports"
)

// ChartResponse is the JSON shape returned by POST /v1/charts and
// GET /v1/charts/:id.
type ChartResponse struct {
	Datetime        string              `json:"datetime"`
	Location        LocationResp        `json:"location"`
	Ascendant       HouseResp           `json:"ascendant"`
	Midheaven       HouseResp           `json:"midheaven"`
	Houses          []HouseResp         `json:"houses"`
	Planets         []PlanetResp        `json:"planets"`
	Aspects         []AspectResp        `json:"aspects"`
	Interpretations *InterpretationResp `json:"interpretations"`
	Meta            MetaResp            `json:"meta"`
}

type LocationResp struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type HouseResp struct {
	House     int     `json:"house"`
	Sign      string  `json:"sign"`
	Symbol    string  `json:"symbol"`
	Element   string  `json:"element"`
	Modality  string  `json:"modality"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"longitude"`
}

type PlanetResp struct {
	Name      string  `json:"name"`
	Symbol    string  `json:"symbol"`
	Sign      string  `json:"sign"`
	Degree    float64 `json:"degree"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Distance  float64 `json:"distance"`
	House     int     `json:"house"`
}

type AspectResp struct {
	Planet1    string  `json:"planet1"`
	Planet2    string  `json:"planet2"`
	Type       string  `json:"type"`
	Angle      float64 `json:"angle"`
	Orb        float64 `json:"orb"`
	Symbol     string  `json:"symbol"`
	Nature     string  `json:"nature"`
	IsApplying bool    `json:"isApplying"`
}

type InterpretationResp struct {
	Summary string           `json:"summary"`
	Sun     string           `json:"sun"`
	Moon    string           `json:"moon"`
	Rising  string           `json:"rising"`
	Planets []NamedTextResp  `json:"planets"`
	Houses  []HouseTextResp  `json:"houses"`
	Aspects []AspectTextResp `json:"aspects"`
}

type NamedTextResp struct {
	Name           string `json:"name"`
	Interpretation string `json:"interpretation"`
}

type HouseTextResp struct {
	House          int    `json:"house"`
	Interpretation string `json:"interpretation"`
}

type AspectTextResp struct {
	Aspect         string `json:"aspect"`
	Interpretation string `json:"interpretation"`
}

type MetaResp struct {
	ChartID       string   `json:"chartId"`
	RequestID     string   `json:"requestId,omitempty"`
	LatencyMS     int64    `json:"latencyMs"`
	MissingBodies []string `json:"missingBodies"`
}

// ChartListResponse is returned by GET /v1/charts.
type ChartListResponse struct {
	Charts []ChartSummaryResp `json:"charts"`
}

type ChartSummaryResp struct {
	ID         string       `json:"id"`
	Source     string       `json:"source"`
	Datetime   string       `json:"datetime"`
	Location   LocationResp `json:"location"`
	RecordedAt string       `json:"recordedAt"`
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// NewChartResponse converts a computed chart into its wire form. Degrees,
// orbs and longitudes are rounded to two decimals for presentation only.
func NewChartResponse(chart domain.BirthChart, requestID string, latencyMS int64) ChartResponse {
	houses := make([]HouseResp, len(chart.Houses))
	for i, h := range chart.Houses {
		houses[i] = toHouseResp(h)
	}

	planets := make([]PlanetResp, len(chart.Bodies))
	for i, b := range chart.Bodies {
		planets[i] = PlanetResp{
			Name:      b.Body.String(),
			Symbol:    b.Body.Symbol(),
			Sign:      b.Placement.Sign.String(),
			Degree:    domain.Round2(b.Placement.DegreeInSign),
			Longitude: domain.Round2(b.Longitude),
			Latitude:  domain.Round2(b.Latitude),
			Distance:  b.DistanceAU,
			House:     b.House,
		}
	}

	aspects := make([]AspectResp, len(chart.Aspects))
	for i, a := range chart.Aspects {
		aspects[i] = AspectResp{
			Planet1:    a.BodyA.String(),
			Planet2:    a.BodyB.String(),
			Type:       a.Kind.String(),
			Angle:      a.Angle,
			Orb:        a.Orb,
			Symbol:     a.Symbol,
			Nature:     string(a.Nature),
			IsApplying: a.Applying,
		}
	}

	missing := make([]string, len(chart.MissingBodies))
	for i, b := range chart.MissingBodies {
		missing[i] = b.String()
	}

	return ChartResponse{
		Datetime:        chart.Instant.UTC().Format(time.RFC3339Nano),
		Location:        LocationResp(chart.Location),
		Ascendant:       toHouseResp(chart.Ascendant),
		Midheaven:       toHouseResp(chart.Midheaven),
		Houses:          houses,
		Planets:         planets,
		Aspects:         aspects,
		Interpretations: toInterpretationResp(chart.Interpretation),
		Meta: MetaResp{
			ChartID:       chart.ID.String(),
			RequestID:     requestID,
			LatencyMS:     latencyMS,
			MissingBodies: missing,
		},
	}
}

func toHouseResp(h domain.HouseCusp) HouseResp {
	return HouseResp{
		House:     h.Index,
		Sign:      h.Placement.Sign.String(),
		Symbol:    h.Placement.Symbol,
		Element:   h.Placement.Element.String(),
		Modality:  h.Placement.Modality.String(),
		Degree:    domain.Round2(h.Placement.DegreeInSign),
		Longitude: domain.Round2(h.Longitude),
	}
}

func toInterpretationResp(in *domain.Interpretation) *InterpretationResp {
	if in == nil {
		return nil
	}
	out := &InterpretationResp{
		Summary: in.Summary,
		Sun:     in.Sun,
		Moon:    in.Moon,
		Rising:  in.Rising,
		Planets: make([]NamedTextResp, len(in.Bodies)),
		Houses:  make([]HouseTextResp, len(in.Houses)),
		Aspects: make([]AspectTextResp, len(in.Aspects)),
	}
	for i, b := range in.Bodies {
		out.Planets[i] = NamedTextResp{Name: b.Body.String(), Interpretation: b.Text}
	}
	for i, h := range in.Houses {
		out.Houses[i] = HouseTextResp{House: h.House, Interpretation: h.Text}
	}
	for i, a := range in.Aspects {
		out.Aspects[i] = AspectTextResp{Aspect: a.Aspect, Interpretation: a.Text}
	}
	return out
}

func toSummaryResp(s ports.ChartSummary) ChartSummaryResp {
	return ChartSummaryResp{
		ID:         s.ID.String(),
		Source:     string(s.Source),
		Datetime:   s.Instant.UTC().Format(time.RFC3339Nano),
		Location:   LocationResp(s.Location),
		RecordedAt: s.RecordedAt.UTC().Format(time.RFC3339Nano),
	}
}
