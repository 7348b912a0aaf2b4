package coord

import (
	"fmt"
	"math"
)

// Largest valid indices of the 149x254 regional grid.
const (
	MaxX = 149
	MaxY = 253
)

// Grid is a cell of the KMA regional grid.
// It carries no projection metadata; indices are only meaningful
// relative to the fixed KMA grid parameters.
type Grid struct {
	X uint8 // 0 ~ 149
	Y uint8 // 0 ~ 253
}

// ReferenceGrid is the cell containing the reference point (126°E, 38°N).
var ReferenceGrid = Grid{X: ReferenceX, Y: ReferenceY}

// NewGrid validates integer indices, e.g. parsed from an external feed.
func NewGrid(x, y int) (Grid, error) {
	if x < 0 || x > MaxX || y < 0 || y > MaxY {
		return Grid{}, fmt.Errorf("%w: (%d, %d) outside [0, %d] x [0, %d]", ErrGridOutOfBounds, x, y, MaxX, MaxY)
	}
	return Grid{X: uint8(x), Y: uint8(y)}, nil
}

// FromGCS converts WGS84 longitude/latitude (degrees) to the grid cell
// containing it. Points that fall outside the regional grid fail with
// ErrGridOutOfBounds instead of wrapping.
func FromGCS(lon, lat float64) (Grid, error) {
	fx, fy, err := Project(lon, lat)
	if err != nil {
		return Grid{}, err
	}
	x, y := math.Round(fx), math.Round(fy)
	if x < 0 || x > MaxX || y < 0 || y > MaxY {
		return Grid{}, fmt.Errorf("%w: lon=%v lat=%v projects to (%.0f, %.0f)", ErrGridOutOfBounds, lon, lat, x, y)
	}
	return Grid{X: uint8(x), Y: uint8(y)}, nil
}

// ToGCS converts the cell back to WGS84 longitude/latitude (degrees).
// The result is the projected position of the cell center.
func (g Grid) ToGCS() (lon, lat float64, err error) {
	return Unproject(float64(g.X), float64(g.Y))
}

// Valid reports whether g lies within the regional grid.
func (g Grid) Valid() bool {
	return g.X <= MaxX && g.Y <= MaxY
}

func (g Grid) String() string {
	return fmt.Sprintf("(%d, %d)", g.X, g.Y)
}

// Bounds is a WGS84 bounding box.
type Bounds struct {
	MinLon, MaxLon float64
	MinLat, MaxLat float64
}

// CenterLat returns the center latitude.
func (b Bounds) CenterLat() float64 {
	return (b.MinLat + b.MaxLat) / 2
}

// CenterLon returns the center longitude.
func (b Bounds) CenterLon() float64 {
	return (b.MinLon + b.MaxLon) / 2
}

// GridBoundsWGS84 returns the WGS84 bounding box of all cell centers.
// The grid edges are curved in WGS84, so the whole perimeter is walked
// rather than only the corners.
func GridBoundsWGS84() Bounds {
	b := Bounds{
		MinLon: 180,
		MaxLon: -180,
		MinLat: 90,
		MaxLat: -90,
	}
	extend := func(x, y int) {
		lon, lat, err := Unproject(float64(x), float64(y))
		if err != nil {
			return
		}
		b.MinLon = math.Min(b.MinLon, lon)
		b.MaxLon = math.Max(b.MaxLon, lon)
		b.MinLat = math.Min(b.MinLat, lat)
		b.MaxLat = math.Max(b.MaxLat, lat)
	}
	for x := 0; x <= MaxX; x++ {
		extend(x, 0)
		extend(x, MaxY)
	}
	for y := 0; y <= MaxY; y++ {
		extend(0, y)
		extend(MaxX, y)
	}
	return b
}
