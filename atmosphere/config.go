package atmosphere

// Planet holds the subset of PlanetConfig that the LUT precalculator and
// the barometric model need. Kept separate from shadowmap.PlanetConfig so
// this package has no import-time dependency on the orchestration layer.
type Planet struct {
	Radius                         float64 // meters
	AtmosphericHeight              float64 // meters
	SeaLevelMolecularNumberDensity float64 // cm^-3
}

// Config is the full, pure-function input to LUT precalculation.
type Config struct {
	Planet Planet

	Gravity   float64 // m/s^2, default 9.81
	MolarMass float64 // kg/mol, default 0.0289644

	SellmeierA     float64
	SellmeierTerms []SellmeierTerm

	MinWavelengthNM int
	MaxWavelengthNM int
}

// DefaultConfig fills in the Earth-air gravity, molar-mass and Sellmeier
// defaults, leaving the planet-specific fields zeroed.
func DefaultConfig() Config {
	return Config{
		Gravity:         9.81,
		MolarMass:       0.0289644,
		SellmeierA:      DefaultSellmeierA,
		SellmeierTerms:  DefaultSellmeierTerms(),
		MinWavelengthNM: 380,
		MaxWavelengthNM: 740,
	}
}

func (c Config) numWavelengths() int {
	return c.MaxWavelengthNM - c.MinWavelengthNM
}
