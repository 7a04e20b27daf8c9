package photon

import (
	"math"
	"math/rand"

	"github.com/eclipseshadow/shadowtrace/vectors"
)

// Config is the emitter's input: the solar-disc and grazing-target
// geometry plus the sampled wavelength range.
type Config struct {
	SunRadius         float64 // R☉, meters
	DistanceToSun     float64 // meters
	PlanetRadius      float64 // meters
	AtmosphericHeight float64 // H, meters
	MinWavelengthNM   int
	MaxWavelengthNM   int
	Seed              int64
}

// Emitter draws photons from the solar disc toward the atmospheric
// annulus. It owns its random source so that two Emitters built with the
// same Config produce bit-identical photon batches.
type Emitter struct {
	cfg Config
	rng *rand.Rand
}

// NewEmitter constructs an Emitter seeded deterministically from cfg.Seed.
func NewEmitter(cfg Config) *Emitter {
	return &Emitter{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Next draws one photon, rejection-sampling the solar disc and the
// atmosphere-entry advance until both succeed.
func (e *Emitter) Next() Photon {
	for {
		p, ok := e.attempt()
		if ok {
			return p
		}
	}
}

func (e *Emitter) attempt() (Photon, bool) {
	R := e.cfg.SunRadius

	var u, v, d float64
	for {
		u = (e.rng.Float64()*2 - 1) * R
		v = (e.rng.Float64()*2 - 1) * R
		d = math.Sqrt(u*u + v*v)
		if d <= R {
			break
		}
	}

	sign := 1.0
	if e.rng.Intn(2) == 0 {
		sign = -1.0
	}

	start := vectors.Vec2{X: -e.cfg.DistanceToSun, Y: sign * d}

	h := e.rng.Float64() * e.cfg.AtmosphericHeight
	target := vectors.Vec2{X: 0, Y: e.cfg.PlanetRadius + h}

	dir := target.Sub(start).Normalize()

	entryRadius := e.cfg.PlanetRadius + e.cfg.AtmosphericHeight
	dist, hit := raySphereEntryDistance(start, dir, vectors.Zero(), entryRadius)
	if !hit {
		return Photon{}, false
	}

	position := start.Add(dir.Scale(dist))

	wavelength := e.cfg.MinWavelengthNM
	if span := e.cfg.MaxWavelengthNM - e.cfg.MinWavelengthNM; span > 0 {
		wavelength += e.rng.Intn(span)
	}

	return Photon{
		Position:   position,
		Direction:  dir,
		Wavelength: wavelength,
		Intensity:  1.0,
	}, true
}

// raySphereEntryDistance computes the ray/sphere entry distance:
// with m = origin - center, b = m·dir, c = m·m - r², disc = b² - c; the ray
// misses when (c > 0 and b > 0) or disc < 0, otherwise the entry distance
// is max(0, -b - sqrt(disc)).
func raySphereEntryDistance(origin, dir, center vectors.Vec2, radius float64) (float64, bool) {
	m := origin.Sub(center)
	b := m.Dot(dir)
	c := m.Dot(m) - radius*radius

	if c > 0 && b > 0 {
		return 0, false
	}

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	dist := -b - math.Sqrt(disc)
	if dist < 0 {
		dist = 0
	}
	return dist, true
}
