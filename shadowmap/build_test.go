package shadowmap

import (
	"context"
	"testing"
)

func TestBuildRejectsInvalidConfig(t *testing.T) {
	ctx := context.Background()
	sun := DefaultSunConfig()
	sampling := DefaultSamplingConfig()
	atmos := DefaultAtmosphereConfig()

	cases := []struct {
		name   string
		planet PlanetConfig
		sun    SunConfig
	}{
		{"non-positive planet radius", PlanetConfig{RadiusM: 0, AtmosphericHeightM: 1000}, sun},
		{"sun not larger than planet", PlanetConfig{RadiusM: 1e9, AtmosphericHeightM: 1000}, SunConfig{RadiusM: 1e8, DistanceM: sun.DistanceM}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Build(ctx, c.planet, atmos, c.sun, sampling)
			if err == nil {
				t.Fatalf("Build() returned nil error for invalid config")
			}
		})
	}
}

func TestBuildSmallScale(t *testing.T) {
	ctx := context.Background()

	planet := PlanetConfig{
		RadiusM:                           6.371e6,
		AtmosphericHeightM:                42000,
		SeaLevelMolecularNumberDensityCM3: 2.504e19,
	}
	atmos := DefaultAtmosphereConfig()
	sun := DefaultSunConfig()
	sampling := SamplingConfig{
		NumPhotons:      2000,
		TexWidth:        32,
		TexHeight:       32,
		MinWavelengthNM: 500,
		MaxWavelengthNM: 560,
		Seed:            7,
		NumWorkers:      2,
	}

	result, err := Build(ctx, planet, atmos, sun, sampling)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if result.Map.Width != sampling.TexWidth {
		t.Fatalf("Map.Width = %d, want %d", result.Map.Width, sampling.TexWidth)
	}
	if len(result.Map.Data) != sampling.TexWidth*sampling.TexWidth*(sampling.MaxWavelengthNM-sampling.MinWavelengthNM) {
		t.Fatalf("len(Map.Data) = %d, want %d", len(result.Map.Data), sampling.TexWidth*sampling.TexWidth*(sampling.MaxWavelengthNM-sampling.MinWavelengthNM))
	}

	total := int64(sampling.NumPhotons)
	dropped := result.Counters.Missed + result.Counters.Impacted + result.Counters.StepCapHit
	if dropped > total {
		t.Fatalf("dropped count %d exceeds total photons %d", dropped, total)
	}
}

func TestBuildDeterministicForSameSeed(t *testing.T) {
	ctx := context.Background()

	planet := PlanetConfig{
		RadiusM:                           6.371e6,
		AtmosphericHeightM:                42000,
		SeaLevelMolecularNumberDensityCM3: 2.504e19,
	}
	atmos := DefaultAtmosphereConfig()
	sun := DefaultSunConfig()
	sampling := SamplingConfig{
		NumPhotons:      500,
		TexWidth:        16,
		TexHeight:       16,
		MinWavelengthNM: 500,
		MaxWavelengthNM: 560,
		Seed:            42,
		NumWorkers:      1,
	}

	a, err := Build(ctx, planet, atmos, sun, sampling)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b, err := Build(ctx, planet, atmos, sun, sampling)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if a.TotalDeposited != b.TotalDeposited {
		t.Fatalf("TotalDeposited differs across runs with the same seed: %d vs %d", a.TotalDeposited, b.TotalDeposited)
	}
	for i := range a.Map.Data {
		if a.Map.Data[i] != b.Map.Data[i] {
			t.Fatalf("bin %d differs across runs with the same seed: %d vs %d", i, a.Map.Data[i], b.Map.Data[i])
		}
	}
}
