package mathutil

import "math"

// RotMat is an orthonormal basis described by its three column vectors.
// Invariant: forward, right and up must stay mutually orthogonal unit
// vectors to within 1e-4; callers that compose matrices by hand should run
// the result through Orthonormal(1e-4) in tests that assert the invariant.
type RotMat struct {
	Forward Vec
	Right   Vec
	Up      Vec
}

// Identity returns the axis-aligned identity rotation.
func Identity() RotMat {
	return RotMat{
		Forward: Vec{X: 1, Y: 0, Z: 0},
		Right:   Vec{X: 0, Y: 1, Z: 0},
		Up:      Vec{X: 0, Y: 0, Z: 1},
	}
}

// Orthonormal reports whether the three basis vectors are unit length and
// mutually perpendicular to within eps.
func (m RotMat) Orthonormal(eps float32) bool {
	unit := func(v Vec) bool { return absf(v.Length()-1) <= eps }
	perp := func(a, b Vec) bool { return absf(a.Dot(b)) <= eps }
	return unit(m.Forward) && unit(m.Right) && unit(m.Up) &&
		perp(m.Forward, m.Right) && perp(m.Forward, m.Up) && perp(m.Right, m.Up)
}

// Apply rotates v from local space into world space using this basis.
func (m RotMat) Apply(v Vec) Vec {
	return Vec{
		X: m.Forward.X*v.X + m.Right.X*v.Y + m.Up.X*v.Z,
		Y: m.Forward.Y*v.X + m.Right.Y*v.Y + m.Up.Y*v.Z,
		Z: m.Forward.Z*v.X + m.Right.Z*v.Y + m.Up.Z*v.Z,
	}
}

// Angle is a yaw/pitch/roll triple in radians.
type Angle struct {
	Yaw, Pitch, Roll float32
}

// ToRotMat converts the Euler angle into an orthonormal basis. Rotation
// order matches the original engine: yaw about Z, then pitch about the
// yawed Y axis, then roll about the resulting X axis.
func (a Angle) ToRotMat() RotMat {
	sy, cy := sincos(a.Yaw)
	sp, cp := sincos(a.Pitch)
	sr, cr := sincos(a.Roll)

	forward := Vec{X: cp * cy, Y: cp * sy, Z: sp}
	right := Vec{
		X: cy*sp*sr - sy*cr,
		Y: sy*sp*sr + cy*cr,
		Z: -cp * sr,
	}
	up := Vec{
		X: -cy*sp*cr - sy*sr,
		Y: -sy*sp*cr + cy*sr,
		Z: cp * cr,
	}
	return RotMat{Forward: forward, Right: right, Up: up}
}

// FromRotMat recovers the Euler angle that produced m. ToRotMat and
// FromRotMat are inverses of one another up to IEEE-754 rounding error.
func FromRotMat(m RotMat) Angle {
	yaw := math.Atan2(float64(m.Forward.Y), float64(m.Forward.X))
	pitch := math.Atan2(float64(m.Forward.Z), float64(math.Hypot(float64(m.Forward.X), float64(m.Forward.Y))))
	roll := math.Atan2(float64(-m.Right.Z), float64(m.Up.Z))
	return Angle{Yaw: float32(yaw), Pitch: float32(pitch), Roll: float32(roll)}
}

func sincos(rad float32) (sin, cos float32) {
	s, c := math.Sincos(float64(rad))
	return float32(s), float32(c)
}
