package sun

import (
	"testing"
	"time"
)

func TestDistanceAtPerihelionAndAphelion(t *testing.T) {
	// Earth is near perihelion in early January (~0.983 AU) and near
	// aphelion in early July (~1.017 AU). Wide tolerances absorb the
	// truncated-series ephemeris error.
	perihelion := time.Date(2026, time.January, 3, 0, 0, 0, 0, time.UTC)
	aphelion := time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC)

	dPeri := DistanceAt(perihelion)
	dAph := DistanceAt(aphelion)

	if dPeri < 1.46e11 || dPeri > 1.48e11 {
		t.Fatalf("DistanceAt(perihelion) = %v m, want ~1.471e11", dPeri)
	}
	if dAph < 1.51e11 || dAph > 1.53e11 {
		t.Fatalf("DistanceAt(aphelion) = %v m, want ~1.521e11", dAph)
	}
	if dPeri >= dAph {
		t.Fatalf("perihelion distance %v not smaller than aphelion distance %v", dPeri, dAph)
	}
}
