// Package ball implements the single-ball state and its mode-specific
// extensions (heatseeker target redirection, snowday drag). DropshotInfo is
// carried in the state, but nothing in this package updates it.
package ball

import (
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
)

// HeatseekerInfo tracks the redirected-target state heatseeker mode adds to
// the ball.
type HeatseekerInfo struct {
	YTargetDir    float32
	CurTargetSpeed float32
	TimeSinceHit  float32
}

// DropshotInfo tracks the charge-building state dropshot mode adds to the
// ball.
type DropshotInfo struct {
	ChargeLevel         uint8
	AccumulatedHitForce float32
	YTargetDir          float32
	HasDamaged          bool
}

// State is the full mutable state of the ball, matching BallState in the
// data model.
type State struct {
	Pos    mathutil.Vec
	Vel    mathutil.Vec
	AngVel mathutil.Vec
	RotMat mathutil.RotMat

	LastHitCarID uint32

	HSInfo HeatseekerInfo
	DSInfo DropshotInfo
}

// Ball owns a State and exposes the radius its mode configures.
type Ball struct {
	State  State
	Radius float32
}

// New constructs a ball at rest at the origin with the given mode's radius.
func New(mutCfg mutator.Config) *Ball {
	return &Ball{
		State: State{RotMat: mathutil.Identity()},
		Radius: mutCfg.BallRadius,
	}
}

// Integrate advances position/orientation by tickTime, clamps speed to the
// mode's ball max speed and applies the mode-specific velocity rules. The
// arena calls it in its integration phase, before contact dispatch, so the
// extra velocity a touch adds during dispatch is not clamped in that tick.
func (b *Ball) Integrate(mutCfg mutator.Config, tickTime float32, mode mutator.GameMode) {
	s := &b.State

	s.Vel.Z += mutCfg.Gravity * tickTime
	s.Vel = s.Vel.Scale(1 - mutCfg.BallDrag*tickTime)

	s.Pos = s.Pos.Add(s.Vel.Scale(tickTime))

	angle := mathutil.FromRotMat(s.RotMat)
	angle.Yaw += s.AngVel.Z * tickTime
	angle.Pitch += s.AngVel.Y * tickTime
	angle.Roll += s.AngVel.X * tickTime
	s.RotMat = angle.ToRotMat()

	s.Vel = mathutil.ClampMagnitude(s.Vel, mutCfg.BallMaxSpeed)

	switch mode {
	case mutator.Heatseeker:
		b.updateHeatseeker(tickTime)
	case mutator.Snowday:
		s.Vel = s.Vel.Scale(1 - snowdayExtraDrag*tickTime)
	}
}

// updateHeatseeker redirects the ball's horizontal velocity toward the
// attacking team's goal after each touch, ramping CurTargetSpeed up over
// time since the last hit.
func (b *Ball) updateHeatseeker(tickTime float32) {
	hs := &b.State.HSInfo
	hs.TimeSinceHit += tickTime
	hs.CurTargetSpeed += heatseekerRampRate * tickTime
	if hs.CurTargetSpeed > heatseekerMaxTargetSpeed {
		hs.CurTargetSpeed = heatseekerMaxTargetSpeed
	}

	target := mathutil.Vec{X: b.State.Vel.X, Y: hs.YTargetDir * hs.CurTargetSpeed, Z: b.State.Vel.Z}
	b.State.Vel = b.State.Vel.Add(target.Sub(b.State.Vel).Scale(heatseekerTurnRate * tickTime))
}

// OnTouch notifies mode-specific ball state of a new touch, setting
// LastHitCarID and resetting the heatseeker re-target timer.
func (b *Ball) OnTouch(carID uint32, mode mutator.GameMode) {
	b.State.LastHitCarID = carID
	if mode == mutator.Heatseeker {
		b.State.HSInfo.TimeSinceHit = 0
		if b.State.HSInfo.YTargetDir == 0 {
			b.State.HSInfo.YTargetDir = 1
		} else {
			b.State.HSInfo.YTargetDir = -b.State.HSInfo.YTargetDir
		}
	}
}

const (
	snowdayExtraDrag          float32 = 0.4
	heatseekerMaxTargetSpeed  float32 = 3000
	heatseekerRampRate        float32 = 150
	heatseekerTurnRate        float32 = 0.8
)
