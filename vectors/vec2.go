// Package vectors provides the 2-D vector arithmetic shared by the
// atmosphere tracer, the photon emitter and the shadow-plane rasterizer.
// The whole photon-transport pipeline is planar: every position and
// direction lives in the plane containing the star center, the planet
// center and the ray, so a single Vec2 type covers the entire pipeline.
package vectors

import "math"

// Vec2 is a 2-D vector with float64 components.
type Vec2 struct {
	X, Y float64
}

func Zero() Vec2 {
	return Vec2{}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product v · o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Norm returns the Euclidean length ||v||.
func (v Vec2) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns the unit vector v / ||v||.
// If ||v|| == 0, it returns the zero vector.
func (v Vec2) Normalize() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Vec2{}
	}
	inv := 1.0 / n
	return Vec2{v.X * inv, v.Y * inv}
}

// Perp returns the scalar 2-D cross product v × o (the z component of the
// 3-D cross product of the two vectors embedded in the xy-plane).
func (v Vec2) Perp(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func Distance(a, b Vec2) float64 {
	return a.Sub(b).Norm()
}
