package shadowmap

import "errors"

// Sentinel errors for the conditions that fail a Build call outright,
// before any photon work begins.
var (
	ErrInvalidPlanetRadius = errors.New("planet radius must be positive")
	ErrInvalidSunRadius    = errors.New("sun radius must exceed planet radius")
	ErrInvalidTexWidth     = errors.New("texWidth must be positive")
	ErrInvalidNumPhotons   = errors.New("numPhotons must be non-negative")
)

// ConfigError reports nonsensical planet/atmosphere/sun/sampling
// parameters.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return "shadowmap: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ResourceError reports failure to allocate the pixel buffer or LUTs.
type ResourceError struct {
	Err error
}

func (e *ResourceError) Error() string {
	return "shadowmap: allocating resources: " + e.Err.Error()
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
