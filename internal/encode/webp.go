package encode

import (
	"image"
	"io"

	"github.com/gen2brain/webp"
)

// WebPEncoder encodes images as WebP using a pure-Go (WASM-based) encoder.
// A system libwebp is used via purego when available.
type WebPEncoder struct {
	Quality  int
	Lossless bool
}

func newWebPEncoder(quality int) *WebPEncoder {
	if quality <= 0 {
		quality = 85
	}
	// Quality 100 selects lossless encoding.
	return &WebPEncoder{Quality: quality, Lossless: quality >= 100}
}

func (e *WebPEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, webp.Options{
		Lossless: e.Lossless,
		Quality:  e.Quality,
	})
}

func (e *WebPEncoder) Format() string        { return "webp" }
func (e *WebPEncoder) FileExtension() string { return ".webp" }
