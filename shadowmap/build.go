package shadowmap

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"runtime"

	"github.com/eclipseshadow/shadowtrace/atmosphere"
	"github.com/eclipseshadow/shadowtrace/grid"
	"github.com/eclipseshadow/shadowtrace/photon"
	"github.com/eclipseshadow/shadowtrace/raster"
	"github.com/eclipseshadow/shadowtrace/trace"
)

// lutCache memoizes Precalculate across repeated Build calls in the same
// process (a parameter sweep, a re-render at a different time of day)
// rather than per-call allocation.
var lutCache, _ = atmosphere.NewLUTCache(8)

// Build is the one public entry point of the core pipeline. It derives
// the density and refractive-index LUTs, emits the photon batch, traces
// it through the atmosphere, and rasterizes the surviving rays into the
// shadow-plane accumulation grid, sharding the per-photon work across a
// worker pool.
func Build(ctx context.Context, planet PlanetConfig, atmos AtmosphereConfig, sun SunConfig, sampling SamplingConfig) (*BuildResult, error) {
	if err := validate(planet, sun, sampling); err != nil {
		return nil, err
	}

	numWorkers := sampling.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	lutCfg := atmosphere.Config{
		Planet: atmosphere.Planet{
			Radius:                         planet.RadiusM,
			AtmosphericHeight:              planet.AtmosphericHeightM,
			SeaLevelMolecularNumberDensity: planet.SeaLevelMolecularNumberDensityCM3,
		},
		Gravity:         atmos.GravityMPS2,
		MolarMass:       atmos.MolarMassKGPMol,
		SellmeierA:      atmos.SellmeierA,
		SellmeierTerms:  atmos.SellmeierTerms,
		MinWavelengthNM: sampling.MinWavelengthNM,
		MaxWavelengthNM: sampling.MaxWavelengthNM,
	}

	lut, _, err := lutCache.Get(lutCfg)
	if err != nil {
		var atmosCfgErr *atmosphere.ConfigError
		if errors.As(err, &atmosCfgErr) {
			return nil, &ConfigError{Err: atmosCfgErr.Unwrap()}
		}
		return nil, &ResourceError{Err: err}
	}

	emitterCfg := photon.Config{
		SunRadius:         sun.RadiusM,
		DistanceToSun:     sun.DistanceM,
		PlanetRadius:      planet.RadiusM,
		AtmosphericHeight: planet.AtmosphericHeightM,
		MinWavelengthNM:   sampling.MinWavelengthNM,
		MaxWavelengthNM:   sampling.MaxWavelengthNM,
		Seed:              sampling.Seed,
	}
	emitter := photon.NewEmitter(emitterCfg)

	batch := make([]photon.Photon, sampling.NumPhotons)
	for i := range batch {
		batch[i] = emitter.Next()
	}

	traceCfg := trace.Config{Planet: lutCfg.Planet, LUT: lut}
	exited, traceCounters, err := trace.Run(ctx, traceCfg, batch, numWorkers)
	if err != nil {
		return nil, err
	}

	shadowLength := grid.ShadowLength(sun.DistanceM, planet.RadiusM, sun.RadiusM)
	g := grid.New(sampling.TexWidth, planet.RadiusM, shadowLength)

	numWavelengths := sampling.MaxWavelengthNM - sampling.MinWavelengthNM
	acc := raster.NewAccumulator(sampling.TexWidth, numWavelengths, sampling.MinWavelengthNM)

	if err := raster.Run(ctx, g, acc, exited, numWorkers); err != nil {
		return nil, err
	}

	data, total, saturated := toU32(acc.Bins)
	if saturated {
		slog.Warn("shadowmap: pixel bin saturated at u32 max", "texWidth", sampling.TexWidth)
	}

	return &BuildResult{
		Map: ShadowMap{
			Width:           sampling.TexWidth,
			Height:          sampling.TexHeight,
			NumWavelengths:  numWavelengths,
			MinWavelengthNM: sampling.MinWavelengthNM,
			Data:            data,
			ShadowLengthM:   g.ShadowLength,
			ShadowHeightM:   g.ShadowHeight,
		},
		Counters: Counters{
			Missed:     traceCounters.Missed,
			Impacted:   traceCounters.Impacted,
			StepCapHit: traceCounters.StepCapHit,
		},
		TotalDeposited: total,
	}, nil
}

func validate(planet PlanetConfig, sun SunConfig, sampling SamplingConfig) error {
	if planet.RadiusM <= 0 {
		return &ConfigError{Err: ErrInvalidPlanetRadius}
	}
	if sun.RadiusM <= planet.RadiusM {
		return &ConfigError{Err: ErrInvalidSunRadius}
	}
	if sampling.TexWidth <= 0 {
		return &ConfigError{Err: ErrInvalidTexWidth}
	}
	// The shadow-plane grid is square (TexWidth columns and rows), so a
	// different TexHeight could not describe the buffer Build produces.
	if sampling.TexHeight != sampling.TexWidth {
		return &ConfigError{Err: errors.New("texHeight must equal texWidth")}
	}
	if sampling.NumPhotons < 0 {
		return &ConfigError{Err: ErrInvalidNumPhotons}
	}
	if sampling.MaxWavelengthNM <= sampling.MinWavelengthNM {
		return &ConfigError{Err: atmosphere.ErrInvalidWavelengths}
	}
	return nil
}

// toU32 narrows the u64 accumulator into the u32 serialization format,
// saturating at the maximum instead of wrapping. Saturation is logged
// once per run by the caller.
func toU32(bins []uint64) (data []uint32, total uint64, saturated bool) {
	data = make([]uint32, len(bins))
	for i, v := range bins {
		total += v
		if v > math.MaxUint32 {
			data[i] = math.MaxUint32
			saturated = true
			continue
		}
		data[i] = uint32(v)
	}
	return data, total, saturated
}
