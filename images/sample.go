package images

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/fintrack/brandgen/colors"
)

// sampleInset is how far point samples sit from the image edges. Images
// smaller than twice the inset clamp it so samples stay in bounds.
const sampleInset = 100

// Sample is one representative color read from a source raster.
type Sample struct {
	// Label names the sampling position for console reporting.
	Label string
	// X is the sampled pixel column.
	X int
	// Y is the sampled pixel row.
	Y int
	// Color is the sampled color, alpha discarded.
	Color colors.RGB
}

// AverageColor computes the whole-image average color by downsampling the
// raster to a single pixel with Lanczos3 resampling. The filter choice is
// fixed so repeated runs report the same value.
func AverageColor(img image.Image) colors.RGB {
	one := resize.Resize(1, 1, img, resize.Lanczos3)
	return colors.FromColor(one.At(one.Bounds().Min.X, one.Bounds().Min.Y))
}

// SamplePoints reads three fixed-offset point samples: near the top-left,
// at the center, and near the bottom-right. The nominal inset is 100px from
// each edge; for images smaller than twice that, the inset shrinks to keep
// every sample inside the raster (degenerating to the center pixel for a
// 1x1 image).
//
// Arguments:
// - img: The raster to sample. Never mutated.
//
// Returns:
// - []Sample: The three samples in top-left, center, bottom-right order.
func SamplePoints(img image.Image) []Sample {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	insetX := clampInset(sampleInset, w)
	insetY := clampInset(sampleInset, h)

	points := []struct {
		label string
		x, y  int
	}{
		{label: "top-left", x: insetX, y: insetY},
		{label: "center", x: w / 2, y: h / 2},
		{label: "bottom-right", x: w - 1 - insetX, y: h - 1 - insetY},
	}

	samples := make([]Sample, 0, len(points))
	for _, p := range points {
		c := img.At(bounds.Min.X+p.x, bounds.Min.Y+p.y)
		samples = append(samples, Sample{
			Label: p.label,
			X:     p.x,
			Y:     p.y,
			Color: colors.FromColor(c),
		})
	}
	return samples
}

func clampInset(inset, dim int) int {
	if limit := (dim - 1) / 2; inset > limit {
		return limit
	}
	return inset
}
