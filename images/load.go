package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// Sniff detects the image format from the leading magic bytes.
//
// Arguments:
// - b: The raw image bytes.
//
// Returns:
// - Format: The detected format, or FormatUnknown.
func Sniff(b []byte) Format {
	switch {
	case len(b) >= 8 && bytes.Equal(b[:8], []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG
	case len(b) >= 2 && b[0] == 0xff && b[1] == 0xd8:
		return FormatJPEG
	case len(b) >= 12 && bytes.Equal(b[:4], []byte("RIFF")) && bytes.Equal(b[8:12], []byte("WEBP")):
		return FormatWebP
	default:
		return FormatUnknown
	}
}

// Decode decodes raw image bytes into a Source, detecting the format from
// the magic bytes.
//
// Arguments:
// - b: The raw image bytes.
//
// Returns:
// - *Source: The decoded raster with metadata.
// - error: An error if the bytes are empty or not a decodable raster.
func Decode(b []byte) (*Source, error) {
	if len(b) == 0 {
		return nil, errors.New("empty image data")
	}

	format := Sniff(b)

	var (
		img image.Image
		err error
	)
	switch format {
	case FormatPNG:
		img, err = png.Decode(bytes.NewReader(b))
	case FormatJPEG:
		img, err = jpeg.Decode(bytes.NewReader(b))
	case FormatWebP:
		img, err = webp.Decode(bytes.NewReader(b))
	default:
		return nil, errors.New("unsupported image format")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s image", format)
	}

	bounds := img.Bounds()
	return &Source{
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		img:    img,
	}, nil
}

// Load reads and decodes a source raster from a file.
//
// Arguments:
// - path: Path to the image file.
//
// Returns:
// - *Source: The decoded raster with metadata.
// - error: An error if the file is missing or not a decodable raster.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read source image %s", path)
	}

	src, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode source image %s", path)
	}
	src.Path = path
	return src, nil
}
