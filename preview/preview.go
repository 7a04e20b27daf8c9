// Package preview renders a false-color PNG from a built shadow map,
// summing each pixel's per-wavelength intensities and mapping the total
// through a viridis-style gradient. It is a visualization aid over a
// derived scalar, never a transform of ShadowMap.Data; nothing in the
// transport pipeline consumes it.
package preview

import (
	"image"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	"github.com/eclipseshadow/shadowtrace/colors"
	"github.com/eclipseshadow/shadowtrace/shadowmap"
)

// stops are a coarse viridis-style gradient: dark purple-blue at low
// intensity, through teal and green, to pale yellow at the top.
var stops = []colors.Color4{
	colors.New(0.267, 0.005, 0.329, 1),
	colors.New(0.283, 0.141, 0.458, 1),
	colors.New(0.254, 0.265, 0.530, 1),
	colors.New(0.207, 0.372, 0.553, 1),
	colors.New(0.164, 0.471, 0.558, 1),
	colors.New(0.128, 0.567, 0.551, 1),
	colors.New(0.135, 0.659, 0.518, 1),
	colors.New(0.267, 0.749, 0.441, 1),
	colors.New(0.478, 0.821, 0.318, 1),
	colors.New(0.741, 0.873, 0.150, 1),
	colors.New(0.993, 0.906, 0.144, 1),
}

// gradient maps t in [0,1] to a color by linear interpolation between
// the nearest two stops.
func gradient(t float64) colors.Color4 {
	t = clamp01(t)
	span := float64(len(stops) - 1)
	pos := t * span
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[i].Mix(stops[i+1], pos-float64(i))
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

// Render sums each pixel's wavelength bins, false-colors the result
// through the viridis-style gradient, and downsamples it to outWidth ×
// outHeight with a Catmull-Rom resampler before encoding it as a PNG.
func Render(w io.Writer, m *shadowmap.ShadowMap, outWidth, outHeight int) error {
	full := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))

	maxTotal := uint64(0)
	totals := make([]uint64, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			var sum uint64
			for lambda := 0; lambda < m.NumWavelengths; lambda++ {
				sum += uint64(m.At(x, y, m.MinWavelengthNM+lambda))
			}
			totals[y*m.Width+x] = sum
			if sum > maxTotal {
				maxTotal = sum
			}
		}
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := logScale(totals[y*m.Width+x], maxTotal)
			c := gradient(t).ToNRGBA()
			full.SetNRGBA(x, y, c)
		}
	}

	if outWidth <= 0 || outHeight <= 0 || (outWidth == m.Width && outHeight == m.Height) {
		return png.Encode(w, full)
	}

	scaled := image.NewNRGBA(image.Rect(0, 0, outWidth, outHeight))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), full, full.Bounds(), draw.Over, nil)
	return png.Encode(w, scaled)
}

// logScale maps a linear total through log1p, which compresses the
// typically heavy-tailed deposition totals (a bright near-surface rim
// alongside a long faint penumbra tail) into a more legible range than a
// straight linear map would.
func logScale(total, max uint64) float64 {
	if max == 0 {
		return 0
	}
	return math.Log1p(float64(total)) / math.Log1p(float64(max))
}
