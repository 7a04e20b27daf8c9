// Package colors provides a small linear-RGBA color type used by the
// shadow map's false-color preview exporter. It carries no opinion about
// the photon-transport pipeline itself; the pipeline's pixel accumulators
// are raw per-wavelength intensities (see package raster), never colors.
package colors

import (
	"image/color"
	"math"
)

// Color4 is a linear RGBA color with float64 components in [0,1].
type Color4 struct {
	R, G, B, A float64
}

func New(r, g, b, a float64) Color4 {
	return Color4{R: r, G: g, B: b, A: a}
}

func White() Color4 {
	return Color4{R: 1, G: 1, B: 1, A: 1}
}

func Black() Color4 {
	return Color4{R: 0, G: 0, B: 0, A: 1}
}

// Scale returns c * s (scalar, alpha untouched).
func (c Color4) Scale(s float64) Color4 {
	return Color4{c.R * s, c.G * s, c.B * s, c.A}
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func (c Color4) Mix(o Color4, t float64) Color4 {
	return Color4{
		R: c.R*(1-t) + o.R*t,
		G: c.G*(1-t) + o.G*t,
		B: c.B*(1-t) + o.B*t,
		A: c.A*(1-t) + o.A*t,
	}
}

// Clamp01 clamps each component into [0,1].
func (c Color4) Clamp01() Color4 {
	return Color4{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

// ToNRGBA converts to a non-premultiplied 8-bit-per-channel color.
func (c Color4) ToNRGBA() color.NRGBA {
	return color.NRGBA{to8bit(c.R), to8bit(c.G), to8bit(c.B), to8bit(c.A)}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8bit(x float64) uint8 {
	return uint8(math.Round(255.0 * clamp01(x)))
}
