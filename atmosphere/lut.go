package atmosphere

import "math"

// StepMeters is the altitude resolution of both LUTs.
const StepMeters = 1.0

// LUT pairs the precalculated tables the tracer samples: a 1-D density
// table and a 2-D refractive-index table indexed by [altitudeStep][wavelengthOffset].
// Both are immutable once returned by Precalculate.
type LUT struct {
	Config Config

	// Density holds ρ[i] for i in [0, len(Density)).
	Density []float64

	// RefractiveIndex holds n[i][j] for i in [0, len(RefractiveIndex)) and
	// j in [0, NumWavelengths).
	RefractiveIndex [][]float64

	NumWavelengths int
}

// Precalculate builds the density and refractive-index LUTs for cfg. It is
// a pure function of cfg: the same cfg always yields bit-identical tables,
// which is what makes LUTCache-ing meaningful.
func Precalculate(cfg Config) (*LUT, error) {
	if cfg.Planet.AtmosphericHeight <= 0 {
		return nil, &ConfigError{Err: ErrInvalidHeight}
	}
	if cfg.MaxWavelengthNM <= cfg.MinWavelengthNM {
		return nil, &ConfigError{Err: ErrInvalidWavelengths}
	}

	heightSteps := int(cfg.Planet.AtmosphericHeight / StepMeters)
	numWavelengths := cfg.numWavelengths()

	density := make([]float64, heightSteps)
	refractive := make([][]float64, heightSteps)

	seaLevelDensity := DensityAt(0, cfg.Gravity, cfg.MolarMass)
	if !isFinite(seaLevelDensity) {
		return nil, &ConfigError{Err: ErrNonFiniteResult}
	}

	n0ByWavelength := make([]float64, numWavelengths)
	for j := 0; j < numWavelengths; j++ {
		wavelength := float64(cfg.MinWavelengthNM + j)
		n0 := RefractiveIndexAtSeaLevel(wavelength, cfg.SellmeierA, cfg.SellmeierTerms)
		if !isFinite(n0) {
			return nil, &ConfigError{Err: ErrNonFiniteResult}
		}
		n0ByWavelength[j] = n0
	}

	for i := 0; i < heightSteps; i++ {
		altitude := float64(i) * StepMeters
		rho := DensityAt(altitude, cfg.Gravity, cfg.MolarMass)
		if !isFinite(rho) {
			return nil, &ConfigError{Err: ErrNonFiniteResult}
		}
		density[i] = rho

		row := make([]float64, numWavelengths)
		for j, n0 := range n0ByWavelength {
			row[j] = RefractiveIndexAt(n0, rho, seaLevelDensity)
		}
		refractive[i] = row
	}

	return &LUT{
		Config:          cfg,
		Density:         density,
		RefractiveIndex: refractive,
		NumWavelengths:  numWavelengths,
	}, nil
}

// DensityAtAltitude returns ρ(h), clamping h into the table's range.
func (l *LUT) DensityAtAltitude(h float64) float64 {
	i := l.index(h)
	return l.Density[i]
}

// RefractiveIndexAtAltitude returns n(h, λ), clamping h into the table's
// range. wavelengthNM must be in [MinWavelengthNM, MaxWavelengthNM).
func (l *LUT) RefractiveIndexAtAltitude(h float64, wavelengthNM int) float64 {
	i := l.index(h)
	j := wavelengthNM - l.Config.MinWavelengthNM
	return l.RefractiveIndex[i][j]
}

func (l *LUT) index(h float64) int {
	i := int(h / StepMeters)
	if i < 0 {
		return 0
	}
	if i >= len(l.Density) {
		return len(l.Density) - 1
	}
	return i
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
