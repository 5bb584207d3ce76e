package astro

import "math"

// HouseCount is the number of houses in a chart.
const HouseCount = 12

// Cusps holds house cusp longitudes; Cusps[0] is the cusp of house 1.
type Cusps [HouseCount]float64

// Cusp returns the cusp of house n (1..12).
func (c Cusps) Cusp(n int) float64 {
	return c[(n-1+HouseCount)%HouseCount]
}

// Ascendant returns the ecliptic longitude rising on the eastern horizon.
func Ascendant(lst, latitude, obliquity float64) float64 {
	lstRad := toRadians(lst)
	latRad := toRadians(latitude)
	oblRad := toRadians(obliquity)

	x := math.Cos(lstRad)
	y := -(math.Sin(latRad)*math.Cos(lstRad)*math.Tan(oblRad) + math.Sin(lstRad)*math.Cos(latRad))

	return Normalize(toDegrees(math.Atan2(x, y)))
}

// Midheaven returns the ecliptic longitude culminating on the local meridian.
func Midheaven(lst, obliquity float64) float64 {
	lstRad := toRadians(lst)
	oblRad := toRadians(obliquity)
	return Normalize(toDegrees(math.Atan2(math.Sin(lstRad)*math.Cos(oblRad), math.Cos(lstRad))))
}

// PlacidusHouses returns the twelve house cusps.
//
// This is an approximation of Placidus division, not the method itself: the
// four angles are exact (1 = Ascendant, 10 = Midheaven, 7 and 4 opposite
// them) and every intermediate cusp trisects the arc between two angles.
// True Placidus cusps come from solving the semi-arc time equation per cusp.
func PlacidusHouses(lst, latitude, obliquity float64) Cusps {
	var c Cusps

	asc := Ascendant(lst, latitude, obliquity)
	mc := Midheaven(lst, obliquity)

	c[0] = asc
	c[9] = mc
	c[6] = Normalize(asc + 180)
	c[3] = Normalize(mc + 180)

	trisect(&c, 0, ForwardArc(c[0], c[3]))
	trisect(&c, 3, ForwardArc(c[3], c[6]))
	trisect(&c, 6, ForwardArc(c[6], c[9]))
	trisect(&c, 9, wrapArc(c[9], c[0]))

	return c
}

// wrapArc is the arc from the Midheaven forward to the Ascendant. It is taken
// as asc+360-mc so that an Ascendant at or below the Midheaven still yields a
// positive arc; it is only folded back when it overshoots a full turn.
func wrapArc(mc, asc float64) float64 {
	arc := asc + 360 - mc
	if arc > 360 {
		arc -= 360
	}
	return arc
}

// trisect fills the two cusps following from with the thirds of arc.
func trisect(c *Cusps, from int, arc float64) {
	c[from+1] = Normalize(c[from] + arc/3)
	c[from+2] = Normalize(c[from] + arc*2/3)
}

// HouseForLongitude returns the house (1..12) whose forward arc
// [cusp k, cusp k+1) contains longitude. Cusps are tested by house identity,
// never re-ordered by value, since a chart's cusps wrap past 0° somewhere.
func HouseForLongitude(longitude float64, cusps Cusps) int {
	lon := Normalize(longitude)

	for k := 0; k < HouseCount; k++ {
		start := cusps[k]
		span := ForwardArc(start, cusps[(k+1)%HouseCount])
		if ForwardArc(start, lon) < span {
			return k + 1
		}
	}

	// Rounding can leave a sliver between adjacent spans; fall back to the
	// nearest cusp behind the longitude.
	best, bestOffset := 1, math.Inf(1)
	for k := 0; k < HouseCount; k++ {
		if off := ForwardArc(cusps[k], lon); off < bestOffset {
			best, bestOffset = k+1, off
		}
	}
	return best
}
