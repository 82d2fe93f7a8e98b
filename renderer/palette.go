// Package renderer turns particle trails into glow primitives and draws them.
package renderer

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL converts hue (degrees), saturation and lightness (both [0,1]) to an
// opaque RGBA color.
func HSL(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// withAlpha returns c with its alpha channel replaced.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
