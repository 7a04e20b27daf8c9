package photon

import (
	"math"
	"testing"

	"github.com/eclipseshadow/shadowtrace/vectors"
)

func testConfig() Config {
	return Config{
		SunRadius:         6.9551e8,
		DistanceToSun:     1.496e11,
		PlanetRadius:      6.371e6,
		AtmosphericHeight: 42000,
		MinWavelengthNM:   380,
		MaxWavelengthNM:   740,
		Seed:              1,
	}
}

func TestNextProducesValidWavelengthAndIntensity(t *testing.T) {
	cfg := testConfig()
	e := NewEmitter(cfg)

	for i := 0; i < 1000; i++ {
		p := e.Next()
		if p.Wavelength < cfg.MinWavelengthNM || p.Wavelength >= cfg.MaxWavelengthNM {
			t.Fatalf("photon %d wavelength %d out of range [%d, %d)", i, p.Wavelength, cfg.MinWavelengthNM, cfg.MaxWavelengthNM)
		}
		if p.Intensity != 1.0 {
			t.Fatalf("photon %d intensity = %v, want 1.0", i, p.Intensity)
		}
		if math.Abs(p.Direction.Norm()-1.0) > 1e-9 {
			t.Fatalf("photon %d direction is not unit length: %v", i, p.Direction.Norm())
		}
	}
}

func TestSameSeedReproducesBatch(t *testing.T) {
	cfg := testConfig()

	a := NewEmitter(cfg)
	b := NewEmitter(cfg)

	for i := 0; i < 200; i++ {
		pa := a.Next()
		pb := b.Next()
		if pa != pb {
			t.Fatalf("photon %d differs between identically-seeded emitters: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestDoublingPhotonsReproducesFirstHalf(t *testing.T) {
	cfg := testConfig()

	full := NewEmitter(cfg)
	var fullBatch []Photon
	for i := 0; i < 400; i++ {
		fullBatch = append(fullBatch, full.Next())
	}

	half := NewEmitter(cfg)
	for i := 0; i < 200; i++ {
		p := half.Next()
		if p != fullBatch[i] {
			t.Fatalf("photon %d of half-batch diverges from full batch: %+v vs %+v", i, p, fullBatch[i])
		}
	}
}

func TestRaySphereEntryDistanceBoundary(t *testing.T) {
	radius := 10.0

	// A ray starting exactly on the sphere, aimed inward, still produces
	// a valid (zero) entry distance.
	origin := vectors.Vec2{X: -radius, Y: 0}
	dir := vectors.Vec2{X: 1, Y: 0}
	dist, ok := raySphereEntryDistance(origin, dir, vectors.Zero(), radius)
	if !ok {
		t.Fatalf("ray starting on the sphere boundary should be accepted")
	}
	if dist != 0 {
		t.Fatalf("entry distance = %v, want 0 for a ray starting on the boundary aimed inward", dist)
	}

	// A ray grazing tangent to the sphere produces an entry distance of
	// exactly -b, with no sqrt(disc) contribution.
	tangentOrigin := vectors.Vec2{X: -radius, Y: radius}
	tangentDir := vectors.Vec2{X: 1, Y: 0}
	dist, ok = raySphereEntryDistance(tangentOrigin, tangentDir, vectors.Zero(), radius)
	if !ok {
		t.Fatalf("tangent ray should be accepted")
	}
	m := tangentOrigin.Sub(vectors.Zero())
	b := m.Dot(tangentDir)
	if math.Abs(dist-(-b)) > 1e-9 {
		t.Fatalf("tangent ray entry distance = %v, want -b = %v", dist, -b)
	}

	// A ray that starts outside the sphere and points away from it misses.
	outside := vectors.Vec2{X: -2 * radius, Y: 0}
	awayDir := vectors.Vec2{X: -1, Y: 0}
	_, ok = raySphereEntryDistance(outside, awayDir, vectors.Zero(), radius)
	if ok {
		t.Fatalf("ray pointing away from the sphere should miss")
	}
}
