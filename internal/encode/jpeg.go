package encode

import (
	"image"
	"image/jpeg"
	"io"
)

// JPEGEncoder encodes images as JPEG.
type JPEGEncoder struct {
	Quality int // 1-100, default 85
}

func (e *JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	quality := e.Quality
	if quality <= 0 {
		quality = 85
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

func (e *JPEGEncoder) Format() string        { return "jpeg" }
func (e *JPEGEncoder) FileExtension() string { return ".jpg" }
