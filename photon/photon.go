// Package photon samples photon rays from a finite solar disc into
// atmospheric grazing trajectories. Emission is a pure function of a
// seeded random source owned by the Emitter; there is no process-wide
// RNG state anywhere in the pipeline.
package photon

import "github.com/eclipseshadow/shadowtrace/vectors"

// Photon is one traced light sample. Position and direction are both
// expressed in the plane containing the star center, the planet center
// and the ray.
type Photon struct {
	Position   vectors.Vec2
	Direction  vectors.Vec2
	Wavelength int // nm, in [MinWavelengthNM, MaxWavelengthNM)
	Intensity  float64
}
