// Package shadowmap wires together the atmosphere, photon, trace, grid
// and raster packages into the one public entry point the core exposes:
// Build. It owns the external configuration surface and the binary
// serialization of the result.
package shadowmap

import "github.com/eclipseshadow/shadowtrace/atmosphere"

// PlanetConfig describes the occluding body.
type PlanetConfig struct {
	RadiusM                           float64
	AtmosphericHeightM                float64
	SeaLevelMolecularNumberDensityCM3 float64
}

// AtmosphereConfig describes the dispersion and gas-law constants.
type AtmosphereConfig struct {
	GravityMPS2     float64
	MolarMassKGPMol float64
	SellmeierA      float64
	SellmeierTerms  []atmosphere.SellmeierTerm
}

// DefaultAtmosphereConfig returns the Earth-air gravity, molar-mass and
// Sellmeier defaults.
func DefaultAtmosphereConfig() AtmosphereConfig {
	return AtmosphereConfig{
		GravityMPS2:     9.81,
		MolarMassKGPMol: 0.0289644,
		SellmeierA:      atmosphere.DefaultSellmeierA,
		SellmeierTerms:  atmosphere.DefaultSellmeierTerms(),
	}
}

// SunConfig describes the star. DistanceM may be computed from a
// wall-clock time via package sun instead of hardcoded.
type SunConfig struct {
	RadiusM   float64
	DistanceM float64
}

// DefaultSunConfig returns Sol's radius and mean Earth-Sun distance.
func DefaultSunConfig() SunConfig {
	return SunConfig{
		RadiusM:   6.9551e8,
		DistanceM: 1.496e11,
	}
}

// SamplingConfig describes the photon batch and output texture.
type SamplingConfig struct {
	NumPhotons      int
	TexWidth        int
	TexHeight       int
	MinWavelengthNM int
	MaxWavelengthNM int
	Seed            int64
	NumWorkers      int
}

// DefaultSamplingConfig returns the standard batch and texture sizing.
// NumWorkers is left at 0, meaning "let Build pick one per CPU".
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		NumPhotons:      10_000_000,
		TexWidth:        1024,
		TexHeight:       1024,
		MinWavelengthNM: 380,
		MaxWavelengthNM: 740,
		Seed:            1,
	}
}
