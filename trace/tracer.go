// Package trace implements the atmosphere tracer: stepwise curved-ray
// integration of a photon through the refractive-index gradient, with
// Rayleigh extinction applied per step. The tracer is expressed as a
// single-photon Trace kernel, so the CPU worker-pool backend (Run, below)
// and any future accelerator backend can share the same per-photon physics.
package trace

import (
	"math"

	"github.com/eclipseshadow/shadowtrace/atmosphere"
	"github.com/eclipseshadow/shadowtrace/photon"
)

// StepLength is the fixed arclength step in meters.
const StepLength = 1000.0

// FiniteDiffStep is the altitude step in meters used to finite-difference
// the refractivity gradient.
const FiniteDiffStep = 10.0

// Outcome classifies how a photon's trace through the atmosphere ended.
type Outcome int

const (
	// Exited means the photon entered the atmosphere and later left it
	// cleanly; it is input to the rasterizer.
	Exited Outcome = iota
	// PlanetImpact means the photon struck the planet, before or during
	// tracing.
	PlanetImpact
	// NeverEntered means the photon grazed past without ever reaching
	// alt < H.
	NeverEntered
	// StepCapHit means the photon exceeded the step-count cap without
	// resolving to any of the above; it is discarded and counted.
	StepCapHit
)

// Config bundles the per-planet constants the tracer needs alongside a LUT.
type Config struct {
	Planet atmosphere.Planet
	LUT    *atmosphere.LUT
}

// MaxSteps returns the step-count cap, 2·(radius+H)/Δℓ: twice the longest
// chord any ray can cut through the tracing region, so no photon loops
// forever.
func (c Config) MaxSteps() int {
	return int(2 * (c.Planet.Radius + c.Planet.AtmosphericHeight) / StepLength)
}

// Trace marches p through the atmosphere in place, step by step, until it
// reaches a terminal state. It returns the outcome; on Exited, p reflects
// the post-atmosphere position, direction and attenuated intensity that
// the rasterizer consumes.
//
// Bending uses the discrete Eikonal step d(n·dir)/ds = ∇n: the atmosphere
// is spherically stratified, so ∇n = (∂n/∂h)·r̂ with r̂ the radial unit
// vector, and the direction update is dir ← normalize(n·dir + ∇n·Δℓ).
// The explicit renormalization keeps the update stable for |∂n/∂h| ≪ 1:
// the perturbation term is ~1e-5 of the direction vector per step and the
// unit-length invariant never drifts.
func Trace(cfg Config, p *photon.Photon) Outcome {
	entered := false
	maxSteps := cfg.MaxSteps()
	exitRadius := cfg.Planet.Radius + cfg.Planet.AtmosphericHeight

	for step := 0; step < maxSteps; step++ {
		r := p.Position.Norm()

		if r <= cfg.Planet.Radius {
			return PlanetImpact
		}
		if r >= exitRadius {
			if entered {
				return Exited
			}
			// The emitter places photons exactly on the entry sphere
			// moving inward; a photon still outside it and already moving
			// away can never reach the atmosphere.
			if p.Direction.Dot(p.Position) > 0 {
				return NeverEntered
			}
			p.Position = p.Position.Add(p.Direction.Scale(StepLength))
			continue
		}

		entered = true
		alt := r - cfg.Planet.Radius

		n1 := cfg.LUT.RefractiveIndexAtAltitude(alt, p.Wavelength)
		n2 := cfg.LUT.RefractiveIndexAtAltitude(alt+FiniteDiffStep, p.Wavelength)
		dn := (n2 - n1) / FiniteDiffStep

		// ∇n = (∂n/∂h)·r̂. dn < 0 below the top of the atmosphere, so the
		// gradient points toward the planet and the ray bends downward.
		radial := p.Position.Scale(1.0 / r)
		bent := p.Direction.Scale(n1).Add(radial.Scale(dn * StepLength))
		p.Direction = bent.Normalize()

		p.Position = p.Position.Add(p.Direction.Scale(StepLength))

		density := cfg.LUT.DensityAtAltitude(alt)
		beta := volumeScatteringCoefficient(cfg.Planet, density, p.Wavelength, cfg.LUT)
		p.Intensity *= math.Exp(-beta * StepLength)
	}

	return StepCapHit
}

// volumeScatteringCoefficient computes β(h, λ) = N(h)·σ(λ), using the
// LUT's sea-level refractive index (recovered at alt=0) as n₀(λ).
func volumeScatteringCoefficient(planet atmosphere.Planet, density float64, wavelengthNM int, lut *atmosphere.LUT) float64 {
	n0 := lut.RefractiveIndexAtAltitude(0, wavelengthNM)
	rho0 := lut.DensityAtAltitude(0)

	n := planet.SeaLevelMolecularNumberDensity
	if rho0 > 0 {
		n *= density / rho0
	} else {
		n = 0
	}

	const kingFactor = 1.05
	wavelengthCM := float64(wavelengthNM) * 1e-7

	sigma := rayleighCrossSection(n0, planet.SeaLevelMolecularNumberDensity, wavelengthCM, kingFactor)
	return n * sigma
}

// rayleighCrossSection computes the Rayleigh total scattering cross
// section σ(λ) = 24π³·(n₀²−1)²·F_k / (λ⁴·N(0)²·(n₀²+2)²), λ in cm.
func rayleighCrossSection(n0, n0Density, wavelengthCM, kingFactor float64) float64 {
	if n0Density == 0 {
		return 0
	}
	numerator := 24 * math.Pi * math.Pi * math.Pi * (n0*n0 - 1) * (n0*n0 - 1) * kingFactor
	denominator := math.Pow(wavelengthCM, 4) * n0Density * n0Density * (n0*n0 + 2) * (n0*n0 + 2)
	return numerator / denominator
}
