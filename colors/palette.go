package colors

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Lighten returns a copy of the color with its HSL lightness raised by
// amount (a fraction in [0,1]), clamped to valid lightness.
func Lighten(c RGB, amount float64) RGB {
	return shiftLightness(c, amount)
}

// Darken returns a copy of the color with its HSL lightness lowered by
// amount (a fraction in [0,1]), clamped to valid lightness.
func Darken(c RGB, amount float64) RGB {
	return shiftLightness(c, -amount)
}

func shiftLightness(c RGB, delta float64) RGB {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsl()

	l += delta
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// CSSVariables renders the recommended design-system custom property block
// for a primary color and its lighter and darker variants.
//
// Arguments:
// - primary: The main brand color.
// - light: The lighter variant.
// - dark: The darker variant.
//
// Returns:
// - string: One "--primary*" declaration per line.
func CSSVariables(primary, light, dark RGB) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--primary: %s;\n", primary.HSL())
	fmt.Fprintf(&b, "--primary-light: %s;\n", light.HSL())
	fmt.Fprintf(&b, "--primary-dark: %s;\n", dark.HSL())
	return b.String()
}
