// Package atmosphere implements the layered barometric atmosphere model
// and the refractive-index / density LUT precalculator. It has no
// dependency on the photon-transport packages that consume it; a LUT
// built here is an immutable, pure function of the Config it was built
// from.
package atmosphere

import "math"

// Layer holds the U.S.-standard-atmosphere constants for one altitude
// band: base temperature (K), temperature lapse rate (K/m), static
// pressure at the base of the layer (Pa), and the base altitude (m).
type Layer struct {
	BaseTemperature  float64
	LapseRate        float64
	BasePressure     float64
	BaseAltitude     float64
	UpperBoundMeters float64
}

// standardLayers are the four documented U.S.-standard-atmosphere layers
// up to 32 km. Above that altitude the topmost layer's law is extrapolated,
// which is acceptable since AtmosphericHeight is expected to stay within
// the mesosphere-adjacent range used for eclipse grazing geometry.
var standardLayers = []Layer{
	{BaseTemperature: 288.15, LapseRate: -0.0065, BasePressure: 101325.0, BaseAltitude: 0, UpperBoundMeters: 11000},
	{BaseTemperature: 216.65, LapseRate: 0.0, BasePressure: 22632.10, BaseAltitude: 11000, UpperBoundMeters: 20000},
	{BaseTemperature: 216.65, LapseRate: 0.001, BasePressure: 5474.89, BaseAltitude: 20000, UpperBoundMeters: 32000},
	{BaseTemperature: 228.65, LapseRate: 0.0028, BasePressure: 868.02, BaseAltitude: 32000, UpperBoundMeters: -1},
}

// IdealGasConstant is R in J / (mol * K).
const IdealGasConstant = 8.31447

// layerAt returns the standard layer containing altitude h (meters).
func layerAt(h float64) Layer {
	for _, l := range standardLayers[:len(standardLayers)-1] {
		if h < l.UpperBoundMeters {
			return l
		}
	}
	return standardLayers[len(standardLayers)-1]
}

// TemperatureAt returns T(h) in Kelvin.
func TemperatureAt(h float64) float64 {
	l := layerAt(h)
	return l.BaseTemperature + l.LapseRate*(h-l.BaseAltitude)
}

// PressureAt returns P(h) in Pascal for the given planet constants.
func PressureAt(h, gravity, molarMass float64) float64 {
	l := layerAt(h)
	if l.LapseRate != 0 {
		divisor := l.BaseTemperature + l.LapseRate*(h-l.BaseAltitude)
		exponent := (gravity * molarMass) / (IdealGasConstant * l.LapseRate)
		return l.BasePressure * math.Pow(l.BaseTemperature/divisor, exponent)
	}
	t := TemperatureAt(h)
	return l.BasePressure * math.Exp(-gravity*molarMass*(h-l.BaseAltitude)/(IdealGasConstant*t))
}

// DensityAt returns ρ(h) in kg/m^3 for the given planet constants.
func DensityAt(h, gravity, molarMass float64) float64 {
	p := PressureAt(h, gravity, molarMass)
	t := TemperatureAt(h)
	return (p * molarMass) / (IdealGasConstant * t)
}
