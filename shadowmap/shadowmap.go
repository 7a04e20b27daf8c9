package shadowmap

// ShadowMap is the output of Build: a dense W×H×Nλ pixel buffer plus
// the grid geometry needed to interpret it.
type ShadowMap struct {
	Width           int
	Height          int
	NumWavelengths  int
	MinWavelengthNM int

	// Data is row-major, y slowest, x middle, λ fastest, the same layout
	// WriteTo serializes.
	Data []uint32

	ShadowLengthM float64
	ShadowHeightM float64
}

// At returns the accumulated intensity for (x, y, λ).
func (s *ShadowMap) At(x, y, wavelengthNM int) uint32 {
	return s.Data[s.index(x, y, wavelengthNM)]
}

func (s *ShadowMap) index(x, y, wavelengthNM int) int {
	return y*s.Width*s.NumWavelengths + x*s.NumWavelengths + (wavelengthNM - s.MinWavelengthNM)
}

// Counters tallies per-photon soft failures, reported alongside the
// result rather than treated as fatal.
type Counters struct {
	Missed     int64
	Impacted   int64
	StepCapHit int64
}

// BuildResult bundles the ShadowMap with the run's drop counters and the
// total deposited intensity, so a caller can judge drop rates and energy
// conservation without re-scanning the buffer.
type BuildResult struct {
	Map            ShadowMap
	Counters       Counters
	TotalDeposited uint64
}
