// Package sun derives a time-grounded SunConfig.DistanceM from ephemeris
// data. The shadow geometry is axisymmetric about the star-planet line,
// so the one ephemeris-derived quantity a build needs is the Earth-Sun
// distance at the chosen instant, never a direction vector.
package sun

import (
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
)

// AUInMeters is one astronomical unit, used to convert meeus's
// Earth-Sun distance (given in AU) into the meters SunConfig expects.
const AUInMeters = 1.495978707e11

// DistanceAt returns the Earth-Sun distance in meters at time t.
func DistanceAt(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	return solar.Radius(base.J2000Century(jd)) * AUInMeters
}
