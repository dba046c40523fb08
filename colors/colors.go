// Package colors provides the color parsing and conversion primitives used to
// derive design-system variables from sampled logo colors.
package colors

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/pkg/errors"
)

// RGB represents an 8-bit-per-channel RGB color.
type RGB struct {
	// R is the red channel in [0,255].
	R uint8
	// G is the green channel in [0,255].
	G uint8
	// B is the blue channel in [0,255].
	B uint8
}

// ParseHex parses a hex color string of the form "#rrggbb" (the leading '#'
// is optional). Shorthand 3-digit forms and alpha-carrying 8-digit forms are
// rejected: the input must be exactly 6 hexadecimal digits after stripping
// the '#'.
//
// Arguments:
// - s: The hex color string to parse.
//
// Returns:
// - RGB: The parsed color.
// - error: An error if the input is not exactly 6 hex digits.
func ParseHex(s string) (RGB, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return RGB{}, errors.Errorf("invalid hex color %q: want 6 hex digits, got %d", s, len(h))
	}

	r, err := strconv.ParseUint(h[0:2], 16, 8)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	g, err := strconv.ParseUint(h[2:4], 16, 8)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "invalid hex color %q", s)
	}
	b, err := strconv.ParseUint(h[4:6], 16, 8)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "invalid hex color %q", s)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// FromColor converts a color.Color to RGB, truncating to the first three
// channels. Alpha is discarded, not premultiplied back out.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Hex formats the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String formats the color in the "rgb(r, g, b)" form used for console
// reporting.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
