// Package raster implements the texture tracer / rasterizer: it walks
// each post-atmosphere photon ray across the shadow-plane grid and
// deposits intensity into per-wavelength pixel bins, mirroring rays
// that cross below the x-axis.
package raster

import (
	"sync/atomic"

	"github.com/eclipseshadow/shadowtrace/grid"
	"github.com/eclipseshadow/shadowtrace/photon"
	"github.com/eclipseshadow/shadowtrace/vectors"
)

// edge names which side of a cell a ray leaves through.
type edge int

const (
	edgeTop edge = iota
	edgeBottom
	edgeRight
)

// Accumulator is the pixel buffer: Width*Width cells, each holding
// NumWavelengths unsigned bins. Bins are uint64: u32 bins overflow above
// ~4.3e9 deposited units, a thin margin when a batch concentrates into
// the umbra, and the wider bins cost only a constant memory factor.
type Accumulator struct {
	Width           int
	NumWavelengths  int
	MinWavelengthNM int
	Bins            []uint64 // [y*Width*NumWavelengths + x*NumWavelengths + (λ-min)]
}

// NewAccumulator allocates a zero-initialized accumulator.
func NewAccumulator(width, numWavelengths, minWavelengthNM int) *Accumulator {
	return &Accumulator{
		Width:           width,
		NumWavelengths:  numWavelengths,
		MinWavelengthNM: minWavelengthNM,
		Bins:            make([]uint64, width*width*numWavelengths),
	}
}

func (a *Accumulator) index(cx, cy, wavelengthNM int) int {
	return cy*a.Width*a.NumWavelengths + cx*a.NumWavelengths + (wavelengthNM - a.MinWavelengthNM)
}

// Add atomically adds delta to the (cx, cy, λ) bin. Multiple rays may
// touch the same bin concurrently; the addition is commutative and
// associative so ordering between callers is immaterial.
func (a *Accumulator) Add(cx, cy, wavelengthNM int, delta uint64) {
	atomic.AddUint64(&a.Bins[a.index(cx, cy, wavelengthNM)], delta)
}

// At returns the current value of the (cx, cy, λ) bin.
func (a *Accumulator) At(cx, cy, wavelengthNM int) uint64 {
	return atomic.LoadUint64(&a.Bins[a.index(cx, cy, wavelengthNM)])
}

// Deposit walks p across g, depositing ⌊intensity·100⌋ into each cell it
// crosses. It returns false if p's starting cell is out of range or if
// the no-left-exit invariant is violated; in either case nothing is
// deposited and the ray is dropped.
func Deposit(g *grid.Grid, acc *Accumulator, p photon.Photon) bool {
	origin := p.Position
	dir := p.Direction

	if dir.X <= 0 {
		// Atmosphere-exit rays travel with dir.X > 0 in the conventional
		// orientation; a ray that doesn't is non-conforming input and is
		// dropped rather than silently rasterized.
		return false
	}

	cx := g.Column(origin.X)
	cy := g.Row(origin.Y)
	if cx >= g.Width || cy >= g.Width {
		return false
	}

	deposit := uint64(p.Intensity * 100)

	for cx >= 0 && cx < g.Width && cy >= 0 && cy < g.Width {
		acc.Add(cx, cy, p.Wavelength, deposit)

		rx, ry, rw, rh := g.Rect(cx, cy)
		// Evaluate the ray's y at the cell's right edge, x = rx + rw.
		// origin.y + dir.y/dir.x * (rightX - origin.x) is the line
		// equation solved for y at that x.
		rightX := rx + rw
		intersectY := origin.Y + (dir.Y/dir.X)*(rightX-origin.X)

		switch classifyExit(intersectY, ry, rh) {
		case edgeTop:
			cy++
		case edgeBottom:
			cy--
			if cy < 0 {
				cy = 0
				origin.Y = -origin.Y
				dir.Y = -dir.Y
			}
		case edgeRight:
			cx++
			// Re-anchor the walk origin at the column boundary it just
			// crossed, so the next cell's exit-edge evaluation measures
			// from the ray's actual position rather than its original
			// emission point.
			origin = vectors.Vec2{X: rightX, Y: intersectY}
		}
	}

	return true
}

func classifyExit(intersectY, rectY, rectH float64) edge {
	if intersectY > rectY+rectH {
		return edgeTop
	}
	if intersectY < rectY {
		return edgeBottom
	}
	return edgeRight
}
