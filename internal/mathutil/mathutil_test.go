package mathutil

import "testing"

func TestAngleRotMatRoundTrip(t *testing.T) {
	cases := []Angle{
		{Yaw: 0, Pitch: 0, Roll: 0},
		{Yaw: 1.2, Pitch: 0.3, Roll: -0.7},
		{Yaw: -2.9, Pitch: 1.1, Roll: 0.05},
	}
	for _, a := range cases {
		m := a.ToRotMat()
		if !m.Orthonormal(1e-4) {
			t.Fatalf("rot mat for %+v not orthonormal: %+v", a, m)
		}
		back := FromRotMat(m)
		m2 := back.ToRotMat()
		if !m.Forward.ApproxEqual(m2.Forward, 1e-4) || !m.Right.ApproxEqual(m2.Right, 1e-4) || !m.Up.ApproxEqual(m2.Up, 1e-4) {
			t.Fatalf("round trip mismatch for %+v: got %+v want %+v", a, m2, m)
		}
	}
}

func TestLinearPieceCurveClampedExtrapolation(t *testing.T) {
	c := NewLinearPieceCurve(
		CurvePoint{Input: 0, Output: 1},
		CurvePoint{Input: 10, Output: 0},
	)
	if got := c.GetOutput(-5, 99); got != 1 {
		t.Fatalf("below-range clamp: got %v want 1", got)
	}
	if got := c.GetOutput(20, 99); got != 0 {
		t.Fatalf("above-range clamp: got %v want 0", got)
	}
	if got := c.GetOutput(5, 99); got != 0.5 {
		t.Fatalf("midpoint interpolation: got %v want 0.5", got)
	}
}

func TestLinearPieceCurveDegenerateSegment(t *testing.T) {
	c := NewLinearPieceCurve(
		CurvePoint{Input: 5, Output: 3},
		CurvePoint{Input: 5, Output: 7},
	)
	if got := c.GetOutput(5, 99); got != 3 {
		t.Fatalf("degenerate segment: got %v want lower endpoint 3", got)
	}
}

func TestLinearPieceCurveEmpty(t *testing.T) {
	var c LinearPieceCurve
	if got := c.GetOutput(5, 42); got != 42 {
		t.Fatalf("empty curve: got %v want default 42", got)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := Vec{X: 3, Y: 4, Z: 0}
	clamped := ClampMagnitude(v, 2)
	if got := clamped.Length(); got > 2.0001 {
		t.Fatalf("clamp did not bound length: got %v", got)
	}
	unclamped := ClampMagnitude(v, 10)
	if unclamped != v {
		t.Fatalf("clamp should be no-op under limit: got %+v", unclamped)
	}
}

func TestRandDeterministicForSameSeed(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 10; i++ {
		if got, want := a.Float(0, 1), b.Float(0, 1); got != want {
			t.Fatalf("seeded rand diverged at %d: %v != %v", i, got, want)
		}
	}
}
