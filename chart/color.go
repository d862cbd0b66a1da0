package chart

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a "#rrggbb" or "#rgb" string into an opaque color.
func ParseHex(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseHex is ParseHex for compile-time constants. It panics on a
// malformed string.
func MustParseHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
