package colors

import (
	"fmt"
	"math"
)

// HSL represents a color as integer hue degrees and integer saturation and
// lightness percentages, the form consumed by CSS custom properties.
type HSL struct {
	// H is the hue in degrees, in [0,360).
	H int
	// S is the saturation as a percentage in [0,100].
	S int
	// L is the lightness as a percentage in [0,100].
	L int
}

// String formats the triple as "H S% L%", the value syntax of an hsl() CSS
// variable.
func (h HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", h.H, h.S, h.L)
}

// HSL converts the color to HSL. Achromatic colors (R=G=B) report hue 0 and
// saturation 0 by convention.
//
// Returns:
// - HSL: Hue rounded to the nearest degree, saturation and lightness rounded
//   to the nearest percent.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	var hue float64
	switch {
	case delta == 0:
		hue = 0
	case maxC == r:
		// Normalize the float mod so hues below red wrap into [0,6).
		hue = math.Mod((g-b)/delta, 6)
		if hue < 0 {
			hue += 6
		}
		hue *= 60
	case maxC == g:
		hue = 60 * ((b-r)/delta + 2)
	default:
		hue = 60 * ((r-g)/delta + 4)
	}

	l := (maxC + minC) / 2

	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}

	return HSL{
		H: int(math.Round(hue)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HexToHSL converts a "#rrggbb" hex color string to its "H S% L%" CSS value.
//
// Arguments:
// - s: The hex color string to convert.
//
// Returns:
// - string: The formatted HSL triple.
// - error: An error if the input is not a valid 6-digit hex color.
func HexToHSL(s string) (string, error) {
	c, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return c.HSL().String(), nil
}
