package coord

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfRange reports geographic input that is not a valid Earth coordinate.
	ErrOutOfRange = errors.New("geographic coordinate out of range")
	// ErrGridOutOfBounds reports a projected cell outside the regional grid.
	ErrGridOutOfBounds = errors.New("grid coordinate out of bounds")
	// ErrDegenerateInverse reports a point too close to the cone apex to invert.
	ErrDegenerateInverse = errors.New("degenerate inverse projection")
)

// degenerateRadius is the smallest projected radius, in grid units, that
// the inverse projection accepts.
const degenerateRadius = 1e-9

// Projection defines the interface for converting between planar grid
// units and WGS84.
type Projection interface {
	// ToWGS84 converts planar coordinates to WGS84 longitude/latitude (degrees).
	ToWGS84(x, y float64) (lon, lat float64)

	// FromWGS84 converts WGS84 longitude/latitude (degrees) to planar coordinates.
	FromWGS84(lon, lat float64) (x, y float64)
}

// KMAGrid implements the Projection interface for the KMA 5 km Lambert
// Conformal Conic grid. Planar coordinates are fractional grid indices.
//
// Reference: https://en.wikipedia.org/wiki/Lambert_conformal_conic_projection#Transformation
type KMAGrid struct{}

// FromWGS84 projects lon/lat onto the grid plane without rounding or
// range checks. Invalid input yields NaN or Inf.
func (KMAGrid) FromWGS84(lon, lat float64) (x, y float64) {
	c := Constants()
	rho := c.rho(lat * degToRad)
	theta := normalizeTheta(lon*degToRad-referenceLonRad) * c.N

	x = rho*math.Sin(theta) + ReferenceX
	y = c.RhoZero - rho*math.Cos(theta) + ReferenceY
	return
}

// ToWGS84 inverts FromWGS84. The cone apex maps to the north pole.
func (KMAGrid) ToWGS84(x, y float64) (lon, lat float64) {
	c := Constants()
	if c.N == 0 {
		panic("coord: cone constant is zero; standard parallels are inconsistent")
	}

	xn := x - ReferenceX
	yn := c.RhoZero - (y - ReferenceY)
	ra := math.Sqrt(xn*xn + yn*yn)

	latRad := 2.0*math.Atan(math.Pow(EarthRadius*c.F/ra, 1.0/c.N)) - math.Pi*0.5

	var theta float64
	switch {
	case yn == 0:
		theta = math.Pi * 0.5
		if xn < 0 {
			theta = -theta
		}
	default:
		theta = math.Atan2(xn, yn)
	}
	lonRad := theta/c.N + referenceLonRad

	return lonRad * radToDeg, latRad * radToDeg
}

// Project converts lon/lat (degrees) to fractional grid coordinates.
// Latitude must lie in [-90, 90]; any finite longitude is accepted.
func Project(lon, lat float64) (x, y float64, err error) {
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return 0, 0, fmt.Errorf("%w: lon=%v lat=%v", ErrOutOfRange, lon, lat)
	}
	if lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrOutOfRange, lat)
	}
	x, y = KMAGrid{}.FromWGS84(lon, lat)
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		// South pole: the cone radius diverges.
		return 0, 0, fmt.Errorf("%w: lon=%v lat=%v does not project to a finite point", ErrOutOfRange, lon, lat)
	}
	return x, y, nil
}

// Unproject converts fractional grid coordinates to lon/lat (degrees).
func Unproject(x, y float64) (lon, lat float64, err error) {
	xn := x - ReferenceX
	yn := Constants().RhoZero - (y - ReferenceY)
	if math.Hypot(xn, yn) < degenerateRadius {
		return 0, 0, fmt.Errorf("%w: (%v, %v) is at the cone apex", ErrDegenerateInverse, x, y)
	}
	lon, lat = KMAGrid{}.ToWGS84(x, y)
	return lon, lat, nil
}

// normalizeTheta wraps an angle into (-π, π]. Values already in range are
// returned unchanged.
func normalizeTheta(theta float64) float64 {
	if theta > -math.Pi && theta <= math.Pi {
		return theta
	}
	theta = math.Mod(theta, 2*math.Pi)
	if theta > math.Pi {
		theta -= 2 * math.Pi
	} else if theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}
