package encode

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Encoder writes an image in a raster file format.
type Encoder interface {
	// Encode writes img to w.
	Encode(w io.Writer, img image.Image) error

	// Format returns the format name (e.g. "jpeg", "png", "webp").
	Format() string

	// FileExtension returns the appropriate file extension.
	FileExtension() string
}

// NewEncoder creates an encoder for the given format and quality.
// Quality only applies to lossy formats.
func NewEncoder(format string, quality int) (Encoder, error) {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return &JPEGEncoder{Quality: quality}, nil
	case "png":
		return &PNGEncoder{}, nil
	case "webp":
		return newWebPEncoder(quality), nil
	default:
		return nil, fmt.Errorf("unsupported image format: %q (supported: png, jpeg, webp)", format)
	}
}

// ForPath picks the encoder matching the extension of path, falling back
// to fallback when the path has no extension.
func ForPath(path, fallback string, quality int) (Encoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = fallback
	}
	return NewEncoder(ext, quality)
}
