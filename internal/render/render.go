// Package render draws the KMA regional grid as a raster image.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/pspoerri/kmagrid/internal/coord"
)

// Palette used for the graticule checkerboard and markers.
var (
	ColorEven      = color.RGBA{R: 0xdc, G: 0xe6, B: 0xf0, A: 0xff}
	ColorOdd       = color.RGBA{R: 0xb4, G: 0xc8, B: 0xdc, A: 0xff}
	ColorHighlight = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	ColorReference = color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}
)

// Options controls rendering.
type Options struct {
	Scale     int          // pixels per grid cell, default 4
	Step      float64      // graticule spacing in degrees, default 1
	Highlight []coord.Grid // cells drawn in ColorHighlight
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 4
	}
	if o.Step <= 0 {
		o.Step = 1
	}
	return o
}

// Size returns the image dimensions for the given scale.
func Size(scale int) (width, height int) {
	return (coord.MaxX + 1) * scale, (coord.MaxY + 1) * scale
}

// Render draws the grid north up: grid row MaxY is the top pixel row.
// Every pixel is inverse-projected, so the graticule follows the
// curvature of the Lambert cone.
func Render(opts Options) *image.RGBA {
	opts = opts.withDefaults()
	w, h := Size(opts.Scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	proj := coord.KMAGrid{}
	s := float64(opts.Scale)

	for py := 0; py < h; py++ {
		gy := float64(coord.MaxY) - ((float64(py)+0.5)/s - 0.5)
		for px := 0; px < w; px++ {
			gx := (float64(px)+0.5)/s - 0.5
			lon, lat := proj.ToWGS84(gx, gy)
			img.SetRGBA(px, py, graticuleColor(lon, lat, opts.Step))
		}
	}

	for _, g := range opts.Highlight {
		fillCell(img, g, opts.Scale, ColorHighlight)
	}
	fillCell(img, coord.ReferenceGrid, opts.Scale, ColorReference)
	return img
}

func graticuleColor(lon, lat, step float64) color.RGBA {
	parity := int64(math.Floor(lon/step)) + int64(math.Floor(lat/step))
	if parity%2 == 0 {
		return ColorEven
	}
	return ColorOdd
}

// PixelOf returns the top-left pixel of cell g.
func PixelOf(g coord.Grid, scale int) (px, py int) {
	return int(g.X) * scale, (coord.MaxY - int(g.Y)) * scale
}

func fillCell(img *image.RGBA, g coord.Grid, scale int, c color.RGBA) {
	if !g.Valid() {
		return
	}
	x0, y0 := PixelOf(g, scale)
	for y := y0; y < y0+scale; y++ {
		for x := x0; x < x0+scale; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
