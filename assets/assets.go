// Package assets generates the fixed set of resized logo rasters and
// multi-resolution icon bundles from a single source image.
package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/fintrack/brandgen/images"
)

// LogoSize is one entry of the fixed output size table.
type LogoSize struct {
	// Label becomes the filename suffix: logo-{label}.png.
	Label string
	// Width is the output width in pixels.
	Width int
	// Height is the output height in pixels.
	Height int
}

// LogoSizes is the fixed size table for logo outputs.
var LogoSizes = []LogoSize{
	{Label: "32", Width: 32, Height: 32},
	{Label: "64", Width: 64, Height: 64},
	{Label: "128", Width: 128, Height: 128},
	{Label: "256", Width: 256, Height: 256},
}

// IcoSizes is the fixed set of square frame sizes in an icon bundle.
var IcoSizes = []int{16, 32, 64}

// Generator writes resized logo assets under a fixed output directory.
type Generator struct {
	// Dir is the output directory for logo PNGs.
	Dir string
}

// NewGenerator returns a Generator writing into dir.
func NewGenerator(dir string) *Generator {
	return &Generator{Dir: dir}
}

// GenerateLogos resizes the source once per LogoSizes entry and writes each
// copy to logo-{label}.png in the generator's directory. The directory is
// created if missing. Outputs are independent: a failure writing one size
// does not remove already written files.
//
// Arguments:
// - src: The decoded source raster.
//
// Returns:
// - []string: Paths of the files written, in size-table order.
// - error: The first resize or write error.
func (g *Generator) GenerateLogos(src *images.Source) ([]string, error) {
	if err := EnsureDir(g.Dir); err != nil {
		return nil, err
	}

	var written []string
	for _, size := range LogoSizes {
		resized, err := images.Resize(src.Image(), size.Width, size.Height)
		if err != nil {
			return written, errors.Wrapf(err, "failed to resize logo to %dx%d", size.Width, size.Height)
		}

		path := filepath.Join(g.Dir, "logo-"+size.Label+".png")
		if err := WritePNG(path, resized); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// GenerateIco derives an icon bundle from the source and writes it to path.
// Every frame is resized independently from the original raster with the
// same Lanczos3 filter as the logo outputs.
//
// Arguments:
// - src: The decoded source raster.
// - path: Destination file for the ICO bundle.
//
// Returns:
// - error: The first resize, encode, or write error.
func (g *Generator) GenerateIco(src *images.Source, path string) error {
	frames := make([]image.Image, 0, len(IcoSizes))
	for _, size := range IcoSizes {
		frame, err := images.Resize(src.Image(), size, size)
		if err != nil {
			return errors.Wrapf(err, "failed to resize icon frame to %dx%d", size, size)
		}
		frames = append(frames, frame)
	}

	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, frames); err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return nil
}

// EnsureDir creates dir if it does not exist. Existing directories are not
// an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	return nil
}

// WritePNG encodes img as PNG at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	return nil
}
