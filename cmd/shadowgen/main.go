// Command shadowgen builds an eclipse shadow map and writes it to disk
// in the reference little-endian u32 serialization.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/eclipseshadow/shadowtrace/shadowmap"
	"github.com/eclipseshadow/shadowtrace/sun"
)

type config struct {
	planetRadius, atmosphereHeight, seaLevelDensity    *float64
	sunRadius, sunDistance                             *float64
	timeStr                                            *string
	numPhotons, texWidth, minWavelength, maxWavelength *int
	seed                                               *int64
	workers                                            *int
	out                                                *string
	showHelp                                           *bool
}

func defineFlags() config {
	return config{
		planetRadius:     flag.Float64("planet-radius", 6.371e6, "Planet radius in meters"),
		atmosphereHeight: flag.Float64("atmosphere-height", 42000, "Atmospheric height in meters"),
		seaLevelDensity:  flag.Float64("sea-level-density", 2.504e19, "Sea-level molecular number density in cm^-3"),

		sunRadius:   flag.Float64("sun-radius", 6.9551e8, "Sun radius in meters"),
		sunDistance: flag.Float64("sun-distance", 1.496e11, "Sun distance in meters (ignored if -time is set)"),
		timeStr:     flag.String("time", "", "Time in RFC3339 format used to derive the sun distance via ephemeris; overrides -sun-distance"),

		numPhotons:    flag.Int("photons", 10_000_000, "Number of photons to emit"),
		texWidth:      flag.Int("width", 1024, "Shadow-plane texture width/height"),
		minWavelength: flag.Int("min-wavelength", 380, "Minimum wavelength in nm"),
		maxWavelength: flag.Int("max-wavelength", 740, "Maximum wavelength in nm (exclusive)"),
		seed:          flag.Int64("seed", 1, "Photon-emitter random seed"),
		workers:       flag.Int("workers", 0, "Number of worker goroutines (0 = GOMAXPROCS)"),

		out: flag.String("out", "shadowmap.bin", "Output file path"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `shadowgen - eclipse shadow map generator

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Planet", []string{"planet-radius", "atmosphere-height", "sea-level-density"})
	printGroup("Sun", []string{"sun-radius", "sun-distance", "time"})
	printGroup("Sampling", []string{"photons", "width", "min-wavelength", "max-wavelength", "seed", "workers"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-20s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	sunDistance := *cfg.sunDistance
	if *cfg.timeStr != "" {
		t, err := time.Parse(time.RFC3339, *cfg.timeStr)
		if err != nil {
			log.Fatalf("invalid -time value: %v", err)
		}
		sunDistance = sun.DistanceAt(t)
	}

	planet := shadowmap.PlanetConfig{
		RadiusM:                           *cfg.planetRadius,
		AtmosphericHeightM:                *cfg.atmosphereHeight,
		SeaLevelMolecularNumberDensityCM3: *cfg.seaLevelDensity,
	}
	atmos := shadowmap.DefaultAtmosphereConfig()
	sunCfg := shadowmap.SunConfig{
		RadiusM:   *cfg.sunRadius,
		DistanceM: sunDistance,
	}
	sampling := shadowmap.SamplingConfig{
		NumPhotons:      *cfg.numPhotons,
		TexWidth:        *cfg.texWidth,
		TexHeight:       *cfg.texWidth,
		MinWavelengthNM: *cfg.minWavelength,
		MaxWavelengthNM: *cfg.maxWavelength,
		Seed:            *cfg.seed,
		NumWorkers:      *cfg.workers,
	}

	slog.Info("building shadow map", "photons", sampling.NumPhotons, "width", sampling.TexWidth)

	result, err := shadowmap.Build(context.Background(), planet, atmos, sunCfg, sampling)
	if err != nil {
		log.Fatalf("building shadow map: %v", err)
	}

	slog.Info("build complete",
		"missed", result.Counters.Missed,
		"impacted", result.Counters.Impacted,
		"stepCapHit", result.Counters.StepCapHit,
		"totalDeposited", result.TotalDeposited)

	f, err := os.Create(*cfg.out)
	if err != nil {
		log.Fatalf("creating output file: %v", err)
	}
	defer f.Close()

	if _, err := result.Map.WriteTo(f); err != nil {
		log.Fatalf("writing shadow map: %v", err)
	}
}
