package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/pspoerri/kmagrid/internal/coord"
	"github.com/pspoerri/kmagrid/internal/encode"
)

func TestRender_Size(t *testing.T) {
	for _, scale := range []int{1, 2, 3} {
		img := Render(Options{Scale: scale})
		b := img.Bounds()
		if b.Dx() != 150*scale || b.Dy() != 254*scale {
			t.Errorf("scale %d: size %dx%d, want %dx%d", scale, b.Dx(), b.Dy(), 150*scale, 254*scale)
		}
	}
}

func TestRender_Defaults(t *testing.T) {
	img := Render(Options{})
	w, h := Size(4)
	if b := img.Bounds(); b.Dx() != w || b.Dy() != h {
		t.Errorf("default size %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
}

func TestRender_Markers(t *testing.T) {
	seoul := coord.Grid{X: 60, Y: 127}
	img := Render(Options{Scale: 2, Highlight: []coord.Grid{seoul, {X: 200, Y: 10}}})

	px, py := PixelOf(seoul, 2)
	if got := img.RGBAAt(px+1, py+1); got != ColorHighlight {
		t.Errorf("highlight pixel = %v, want %v", got, ColorHighlight)
	}
	px, py = PixelOf(coord.ReferenceGrid, 2)
	if got := img.RGBAAt(px, py); got != ColorReference {
		t.Errorf("reference pixel = %v, want %v", got, ColorReference)
	}
}

func TestRender_NorthUp(t *testing.T) {
	// Bottom-left cell is (0, 0), top-left is (0, MaxY).
	px, py := PixelOf(coord.Grid{X: 0, Y: 0}, 3)
	if px != 0 || py != coord.MaxY*3 {
		t.Errorf("PixelOf(0,0) = (%d, %d), want (0, %d)", px, py, coord.MaxY*3)
	}
	px, py = PixelOf(coord.Grid{X: 0, Y: coord.MaxY}, 3)
	if px != 0 || py != 0 {
		t.Errorf("PixelOf(0,%d) = (%d, %d), want (0, 0)", coord.MaxY, px, py)
	}
}

func TestGraticuleColor(t *testing.T) {
	tests := []struct {
		lon, lat, step float64
		want           color.RGBA
	}{
		{126.5, 37.5, 1, ColorOdd},  // 126 + 37
		{127.5, 37.5, 1, ColorEven}, // 127 + 37
		{127.5, 38.5, 1, ColorOdd},
		{126.5, 37.5, 0.5, ColorEven}, // 253 + 75
	}
	for _, tt := range tests {
		if got := graticuleColor(tt.lon, tt.lat, tt.step); got != tt.want {
			t.Errorf("graticuleColor(%v, %v, %v) = %v, want %v", tt.lon, tt.lat, tt.step, got, tt.want)
		}
	}
}

func TestRender_GraticuleMatchesProjection(t *testing.T) {
	img := Render(Options{Scale: 1})

	// With scale 1 each pixel center is a cell center.
	for _, g := range []coord.Grid{{X: 10, Y: 20}, {X: 100, Y: 200}, {X: 140, Y: 5}} {
		lon, lat, err := g.ToGCS()
		if err != nil {
			t.Fatal(err)
		}
		px, py := PixelOf(g, 1)
		if got, want := img.RGBAAt(px, py), graticuleColor(lon, lat, 1); got != want {
			t.Errorf("cell %v: pixel %v, want %v", g, got, want)
		}
	}
}

func TestRender_EncodesAsPNG(t *testing.T) {
	img := Render(Options{Scale: 1})
	enc, err := encode.NewEncoder("png", 0)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := encode.DecodeImage(buf.Bytes(), "png")
	if err != nil {
		t.Fatalf("DecodeImage: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 150 || b.Dy() != 254 {
		t.Errorf("decoded size = %dx%d", b.Dx(), b.Dy())
	}
}
