package favicon

import (
	"image"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	ico "github.com/sergeymakinen/go-ico"

	"github.com/fintrack/brandgen/assets"
	"github.com/fintrack/brandgen/images"
)

// rasterSize is the edge length of the rendered bitmap favicon.
const rasterSize = 64

// Result reports which favicon artifacts a run produced.
type Result struct {
	// SVGPath is the vector favicon, always written.
	SVGPath string
	// PNGPath is the raster favicon, empty when the raster branch was skipped.
	PNGPath string
	// ICOPath is the icon bundle, empty when the raster branch was skipped.
	ICOPath string
	// RasterSkipped is true when no raster output was produced.
	RasterSkipped bool
	// RasterErr carries the failure that caused the skip, nil when the
	// capability was simply absent.
	RasterErr error
}

// Produced lists the paths of all artifacts written, in output order.
func (r Result) Produced() []string {
	paths := []string{r.SVGPath}
	if r.PNGPath != "" {
		paths = append(paths, r.PNGPath)
	}
	if r.ICOPath != "" {
		paths = append(paths, r.ICOPath)
	}
	return paths
}

// Generate writes the favicon artifacts into dir. The SVG is always
// written; failure to write it aborts the run. When r is non-nil the raster
// branch also renders favicon-64x64.png and derives a multi-size
// favicon.ico from the rendered bitmap. Any raster failure degrades the run
// to SVG-only output instead of failing it.
//
// Arguments:
// - dir: Output directory, created if missing.
// - r: The raster drawing capability, nil when unavailable.
//
// Returns:
// - Result: The artifacts produced and whether raster output was skipped.
// - error: An error only for directory or SVG failures.
func Generate(dir string, r Rasterizer) (Result, error) {
	if err := assets.EnsureDir(dir); err != nil {
		return Result{}, err
	}

	svgPath := filepath.Join(dir, "favicon.svg")
	if err := os.WriteFile(svgPath, []byte(faviconSVG), 0o644); err != nil {
		return Result{}, errors.Wrapf(err, "failed to write %s", svgPath)
	}

	result := Result{SVGPath: svgPath}

	if r == nil {
		result.RasterSkipped = true
		return result, nil
	}

	img, err := r.Render(rasterSize)
	if err != nil {
		result.RasterSkipped = true
		result.RasterErr = err
		return result, nil
	}

	pngPath := filepath.Join(dir, "favicon-64x64.png")
	if err := assets.WritePNG(pngPath, img); err != nil {
		result.RasterSkipped = true
		result.RasterErr = err
		return result, nil
	}
	result.PNGPath = pngPath

	icoPath := filepath.Join(dir, "favicon.ico")
	if err := writeIco(icoPath, img); err != nil {
		// The PNG already landed; only the bundle is missing.
		result.RasterErr = err
		return result, nil
	}
	result.ICOPath = icoPath

	return result, nil
}

// writeIco derives the multi-size bundle from the rendered bitmap, resizing
// each frame from it with the same filter as the logo pipeline.
func writeIco(path string, img image.Image) error {
	frames := make([]image.Image, 0, len(assets.IcoSizes))
	for _, size := range assets.IcoSizes {
		frame, err := images.Resize(img, size, size)
		if err != nil {
			return errors.Wrapf(err, "failed to resize favicon frame to %dx%d", size, size)
		}
		frames = append(frames, frame)
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
