// Package grid implements the shadow-plane grid: a non-uniform
// rectangular partition of the shadow plane with O(log W) column lookup,
// consulted by the rasterizer in package raster.
package grid

import (
	"math"
	"sort"
)

// KS scales the geometric shadow cone length into the full penumbral
// tail the texture covers.
const KS = 8.0

// KH scales the planet radius into the texture's altitude extent.
const KH = 4.0

// Grid holds the precomputed column edges and row geometry of the
// non-uniform shadow-plane partition.
type Grid struct {
	Width        int
	ColumnStarts []float64 // x₀(i), i in [0, Width]
	ColumnWidths []float64 // x₀(i+1) - x₀(i), i in [0, Width)
	RectHeight   float64
	ShadowLength float64
	ShadowHeight float64
}

// ShadowLength computes shadowLength = KS · distToSun · radius / (sunRadius - radius).
func ShadowLength(distToSun, radius, sunRadius float64) float64 {
	return KS * distToSun * radius / (sunRadius - radius)
}

// New builds the grid for the given planet radius and a precomputed
// shadow length, with width columns and rows.
//
// Column edges follow the power law x₀(i) ∝ (i+1)^α: starting the power
// law at i=0 degenerates the first column to zero width (0^α = 0), so
// edges are indexed from i+1 instead, keeping every column non-degenerate.
func New(width int, radius, shadowLength float64) *Grid {
	alpha := math.Log(shadowLength) / math.Log(float64(width))

	starts := make([]float64, width+1)
	for i := 0; i <= width; i++ {
		starts[i] = shadowLength * math.Pow(float64(i+1)/float64(width+1), alpha)
	}
	// Anchor the partition exactly at 0 and shadowLength, since the i+1
	// shift otherwise leaves x₀(0) slightly above zero.
	starts[0] = 0
	starts[width] = shadowLength

	widths := make([]float64, width)
	for i := 0; i < width; i++ {
		widths[i] = starts[i+1] - starts[i]
	}

	rectHeight := (radius * KH) / float64(width)

	return &Grid{
		Width:        width,
		ColumnStarts: starts,
		ColumnWidths: widths,
		RectHeight:   rectHeight,
		ShadowLength: shadowLength,
		ShadowHeight: rectHeight * float64(width),
	}
}

// Column returns the column index containing x via binary search over the
// column starts, or g.Width as a sentinel if x is outside [0, ShadowLength).
func (g *Grid) Column(x float64) int {
	if x < 0 || x >= g.ShadowLength {
		return g.Width
	}
	// sort.Search finds the first index i for which starts[i] > x; the
	// containing column is the one before it.
	i := sort.Search(len(g.ColumnStarts), func(i int) bool {
		return g.ColumnStarts[i] > x
	})
	return i - 1
}

// Row returns the row index containing y, or g.Width as a sentinel if y
// is outside [0, ShadowHeight).
func (g *Grid) Row(y float64) int {
	if y < 0 || y >= g.ShadowHeight {
		return g.Width
	}
	return int(y / g.RectHeight)
}

// Rect returns the rectangle geometry (x, y, width, height) of cell (cx, cy).
func (g *Grid) Rect(cx, cy int) (x, y, w, h float64) {
	return g.ColumnStarts[cx], float64(cy) * g.RectHeight, g.ColumnWidths[cx], g.RectHeight
}
