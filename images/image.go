// Package images provides source raster loading, Lanczos resizing, and the
// color sampling operations behind the branding asset pipeline.
package images

import "image"

// Format represents supported source image formats.
type Format string

const (
	// FormatPNG is the PNG image format.
	FormatPNG Format = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG Format = "jpeg"
	// FormatWebP is the WebP image format.
	FormatWebP Format = "webp"
	// FormatUnknown is reported when the magic bytes match no supported format.
	FormatUnknown Format = "unknown"
)

// Source represents a decoded source raster with its metadata. The pixel
// data is never mutated; resize and sampling operations read it and produce
// independent results.
type Source struct {
	// Path is the file the raster was loaded from, empty for in-memory sources.
	Path string
	// Format is the detected encoding of the original bytes.
	Format Format
	// Width is the raster width in pixels.
	Width int
	// Height is the raster height in pixels.
	Height int

	img image.Image
}

// Image returns the decoded raster.
func (s *Source) Image() image.Image {
	return s.img
}
