package favicon

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
)

// Rasterizer renders the fixed favicon geometry as a bitmap. Implementations
// are optional: callers must treat a missing Rasterizer as "SVG only".
type Rasterizer interface {
	// Render draws the favicon at size x size pixels.
	Render(size int) (image.Image, error)
}

// NewRasterizer returns the raster drawing capability and whether one is
// available. The second return is the explicit capability check: when it is
// false the favicon generator degrades to SVG-only output.
func NewRasterizer() (Rasterizer, bool) {
	return ggRasterizer{}, true
}

// ggRasterizer draws the favicon with the gg 2D graphics context.
type ggRasterizer struct{}

// Render draws the coin-and-yuan mark at the requested size. All geometry
// is authored on a 64px grid and scaled uniformly.
func (ggRasterizer) Render(size int) (image.Image, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid favicon size %d", size)
	}

	s := float64(size) / 64

	dc := gg.NewContext(size, size)

	// Background circle.
	dc.SetHexColor(colorBackground)
	dc.DrawCircle(32*s, 32*s, 30*s)
	dc.Fill()

	// Coin outer ring.
	dc.SetHexColor(colorRing)
	dc.SetLineWidth(2 * s)
	dc.DrawCircle(32*s, 32*s, 26*s)
	dc.Stroke()

	// Inner circle.
	dc.SetHexColor(colorInner)
	dc.DrawCircle(32*s, 32*s, 20*s)
	dc.Fill()

	// Yuan glyph: vertical stroke, two horizontal strokes, splayed legs.
	dc.SetHexColor(colorGlyph)
	dc.DrawRectangle(30*s, 18*s, 4*s, 28*s)
	dc.DrawRectangle(20*s, 22*s, 24*s, 3*s)
	dc.DrawRectangle(22*s, 28*s, 20*s, 3*s)
	dc.Fill()

	dc.MoveTo(30*s, 40*s)
	dc.LineTo(28*s, 46*s)
	dc.LineTo(36*s, 46*s)
	dc.LineTo(34*s, 40*s)
	dc.ClosePath()
	dc.Fill()

	// Decorative dots on the compass points.
	for _, p := range [][2]float64{{16, 32}, {48, 32}, {32, 16}, {32, 48}} {
		dc.DrawCircle(p[0]*s, p[1]*s, 2*s)
	}
	dc.Fill()

	return dc.Image(), nil
}
