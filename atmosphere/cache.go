package atmosphere

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// LUTCache memoizes Precalculate by Config. A LUT is a pure function of
// its Config, so rebuilding it for a repeated configuration (the same
// planet re-rendered at a different time of day, or a parameter sweep
// across wavelength ranges in one process) is wasted CPU.
type LUTCache struct {
	cache *lru.Cache
}

// NewLUTCache creates a cache holding up to size precalculated LUTs.
func NewLUTCache(size int) (*LUTCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("atmosphere: creating LUT cache: %w", err)
	}
	return &LUTCache{cache: c}, nil
}

// Get returns the cached LUT for cfg, building and storing it on a miss.
// Config embeds a slice (SellmeierTerms) and so isn't itself a comparable
// map key; cacheKey renders the parts that determine the LUT's contents
// into a comparable string.
func (c *LUTCache) Get(cfg Config) (*LUT, bool, error) {
	key := cacheKey(cfg)
	if cached, ok := c.cache.Get(key); ok {
		return cached.(*LUT), true, nil
	}

	lut, err := Precalculate(cfg)
	if err != nil {
		return nil, false, err
	}
	c.cache.Add(key, lut)
	return lut, false, nil
}

func cacheKey(cfg Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "r=%s;h=%s;n0=%s;g=%s;m=%s;lo=%d;hi=%d",
		strconv.FormatFloat(cfg.Planet.Radius, 'g', -1, 64),
		strconv.FormatFloat(cfg.Planet.AtmosphericHeight, 'g', -1, 64),
		strconv.FormatFloat(cfg.Planet.SeaLevelMolecularNumberDensity, 'g', -1, 64),
		strconv.FormatFloat(cfg.Gravity, 'g', -1, 64),
		strconv.FormatFloat(cfg.MolarMass, 'g', -1, 64),
		cfg.MinWavelengthNM, cfg.MaxWavelengthNM)

	fmt.Fprintf(&b, ";a=%s", strconv.FormatFloat(cfg.SellmeierA, 'g', -1, 64))
	for _, t := range cfg.SellmeierTerms {
		fmt.Fprintf(&b, ";(%s,%s)",
			strconv.FormatFloat(t.A, 'g', -1, 64),
			strconv.FormatFloat(t.B, 'g', -1, 64))
	}
	return b.String()
}
