package horizons

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/randomtoy/natal-go/internal/domain"
)

const (
	markerStart = "$$SOE"
	markerEnd   = "$$EOE"

	colDistance = "delta"
	colLon      = "ObsEcLon"
	colLat      = "ObsEcLat"
)

var errNoEphemeris = errors.New("no ephemeris rows in result")

// parseObserverTable reads the first row of a CSV observer table. Column
// positions come from the header line printed above $$SOE.
func parseObserverTable(result string) (domain.CelestialBodyPosition, error) {
	lines := strings.Split(result, "\n")

	start := -1
	for i, l := range lines {
		if strings.TrimSpace(l) == markerStart {
			start = i
			break
		}
	}
	if start < 0 || start+1 >= len(lines) {
		return domain.CelestialBodyPosition{}, errNoEphemeris
	}

	row := strings.TrimSpace(lines[start+1])
	if row == "" || row == markerEnd {
		return domain.CelestialBodyPosition{}, errNoEphemeris
	}

	header := ""
	for i := start - 1; i >= 0; i-- {
		if strings.Contains(lines[i], colLon) {
			header = lines[i]
			break
		}
	}
	if header == "" {
		return domain.CelestialBodyPosition{}, fmt.Errorf("missing %s header", colLon)
	}

	cols := splitCSV(header)
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		idx[c] = i
	}

	fields := splitCSV(row)
	value := func(name string) (float64, error) {
		i, ok := idx[name]
		if !ok {
			return 0, fmt.Errorf("missing column %s", name)
		}
		if i >= len(fields) {
			return 0, fmt.Errorf("row has no %s value", name)
		}
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", name, err)
		}
		return v, nil
	}

	var pos domain.CelestialBodyPosition
	var err error
	if pos.Longitude, err = value(colLon); err != nil {
		return domain.CelestialBodyPosition{}, err
	}
	if pos.Latitude, err = value(colLat); err != nil {
		return domain.CelestialBodyPosition{}, err
	}
	if pos.DistanceAU, err = value(colDistance); err != nil {
		return domain.CelestialBodyPosition{}, err
	}
	return pos, nil
}

func splitCSV(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
