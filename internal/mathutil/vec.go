// Package mathutil implements the vector, rotation and curve primitives the
// rest of the simulation is built on.
package mathutil

import "math"

// Vec is a three component single precision vector. It is a value type and
// hashable by exact bit equality, matching the original engine's Vec.
type Vec struct {
	X, Y, Z float32
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the component-wise difference.
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale multiplies every component by s.
func (v Vec) Scale(s float32) Vec { return Vec{v.X * s, v.Y * s, v.Z * s} }

// Dot returns the scalar dot product.
func (v Vec) Dot(o Vec) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the vector cross product.
func (v Vec) Cross(o Vec) Vec {
	return Vec{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// LengthSq returns the squared Euclidean norm, avoiding a sqrt.
func (v Vec) LengthSq() float32 { return v.Dot(v) }

// Length returns the Euclidean norm.
func (v Vec) Length() float32 { return float32(math.Sqrt(float64(v.LengthSq()))) }

// Normalized returns a unit vector in the same direction, or the zero vector
// if v is itself zero length.
func (v Vec) Normalized() Vec {
	l := v.Length()
	if l == 0 {
		return Vec{}
	}
	return v.Scale(1 / l)
}

// WithInvertedXY negates the x and y components while leaving z untouched.
// This is the transform used to build the opposing-team snapshot view.
func (v Vec) WithInvertedXY() Vec { return Vec{X: -v.X, Y: -v.Y, Z: v.Z} }

// ApproxEqual reports whether every component of v and o differs by no more
// than eps.
func (v Vec) ApproxEqual(o Vec, eps float32) bool {
	return absf(v.X-o.X) <= eps && absf(v.Y-o.Y) <= eps && absf(v.Z-o.Z) <= eps
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp01Symmetric coerces a control input into [-1, 1].
func Clamp01Symmetric(v float32) float32 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// ClampMagnitude scales v down so its length does not exceed limit. Vectors
// already within the limit, or a non-positive limit, are returned unchanged.
func ClampMagnitude(v Vec, limit float32) Vec {
	if limit <= 0 {
		return v
	}
	lsq := v.LengthSq()
	if lsq <= limit*limit {
		return v
	}
	l := float32(math.Sqrt(float64(lsq)))
	return v.Scale(limit / l)
}
