package vectors

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		v    Vec2
		want float64
	}{
		{"unit x", Vec2{3, 0}, 1},
		{"unit y", Vec2{0, -5}, 1},
		{"diagonal", Vec2{3, 4}, 1},
		{"zero", Vec2{0, 0}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.v.Normalize().Norm()
			if math.Abs(got-c.want) > 1e-9 {
				t.Fatalf("Normalize().Norm() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestDotAndPerp(t *testing.T) {
	a := Vec2{1, 0}
	b := Vec2{0, 1}

	if got := a.Dot(b); got != 0 {
		t.Fatalf("Dot = %v, want 0", got)
	}
	if got := a.Perp(b); got != 1 {
		t.Fatalf("Perp = %v, want 1", got)
	}
	if got := b.Perp(a); got != -1 {
		t.Fatalf("Perp = %v, want -1", got)
	}
}

func TestDistance(t *testing.T) {
	got := Distance(Vec2{0, 0}, Vec2{3, 4})
	if math.Abs(got-5) > 1e-9 {
		t.Fatalf("Distance = %v, want 5", got)
	}
}
