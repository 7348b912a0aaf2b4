package coord

import "math"

// Fixed parameters of the KMA 5 km regional forecast grid.
const (
	// GridLength is the edge length of one grid cell in kilometers.
	GridLength = 5.0
	// EarthRadius is the Earth radius used by KMA, expressed in grid units.
	EarthRadius = 6371.00877 / GridLength

	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi

	standardParallel1Deg = 30.0
	standardParallel2Deg = 60.0

	// ReferenceLon and ReferenceLat locate the grid origin in degrees.
	ReferenceLon = 126.0
	ReferenceLat = 38.0

	// ReferenceX and ReferenceY are the grid indices of the reference point.
	ReferenceX = 43
	ReferenceY = 136
)

var (
	standardParallel1 = standardParallel1Deg * degToRad
	standardParallel2 = standardParallel2Deg * degToRad
	referenceLonRad   = ReferenceLon * degToRad
	referenceLatRad   = ReferenceLat * degToRad
)

// LCCConstants holds the derived Lambert Conformal Conic constants.
type LCCConstants struct {
	N       float64 // cone constant
	F       float64 // scale factor
	RhoZero float64 // radius of the reference parallel, in grid units
}

// lcc is derived once; forward and inverse projections share it.
var lcc = deriveConstants()

// Constants returns the projection constants of the KMA grid.
func Constants() LCCConstants {
	return lcc
}

func deriveConstants() LCCConstants {
	t1 := math.Tan(math.Pi*0.25 + 0.5*standardParallel1)
	t2 := math.Tan(math.Pi*0.25 + 0.5*standardParallel2)

	n := math.Log(math.Cos(standardParallel1)/math.Cos(standardParallel2)) / math.Log(t2/t1)
	f := math.Pow(t1, n) * math.Cos(standardParallel1) / n
	rhoZero := EarthRadius * f / math.Pow(math.Tan(math.Pi*0.25+0.5*referenceLatRad), n)

	return LCCConstants{N: n, F: f, RhoZero: rhoZero}
}

// rho returns the projected radius of the parallel at latRad.
func (c LCCConstants) rho(latRad float64) float64 {
	return EarthRadius * c.F / math.Pow(math.Tan(math.Pi*0.25+0.5*latRad), c.N)
}
