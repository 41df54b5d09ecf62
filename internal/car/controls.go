// Package car implements per-car rigid body dynamics, the jump/flip/demo
// control state machine, and the car-side data model (CarControls,
// CarConfig, CarState, Car).
package car

import "rocketsim/internal/mathutil"

// Controls mirrors the engine's CarControls: every analog field is
// constrained to [-1, 1] once ClampFix has run.
type Controls struct {
	Throttle  float32
	Steer     float32
	Pitch     float32
	Yaw       float32
	Roll      float32
	Boost     bool
	Jump      bool
	Handbrake bool
}

// ClampFix coerces every analog field into [-1, 1] in place.
func (c *Controls) ClampFix() {
	c.Throttle = mathutil.Clamp01Symmetric(c.Throttle)
	c.Steer = mathutil.Clamp01Symmetric(c.Steer)
	c.Pitch = mathutil.Clamp01Symmetric(c.Pitch)
	c.Yaw = mathutil.Clamp01Symmetric(c.Yaw)
	c.Roll = mathutil.Clamp01Symmetric(c.Roll)
}
