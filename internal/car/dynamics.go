package car

import (
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
)

// applyGroundForces mutates vel/angVel for a wheeled car under throttle,
// steer and handbrake input, as a piecewise-linear function of current
// ground speed (see curves.go). Suspension itself is the rigid-body
// engine's job (out of scope per the purpose statement); this layer only
// supplies the drive/steer/handbrake force and torque the engine applies.
func applyGroundForces(s *State, controls Controls, mutCfg mutator.Config, tickTime float32) {
	forward := s.RotMat.Forward
	speed := s.Vel.Dot(forward)

	if controls.Throttle > 0 {
		scale := driveForceCurve.GetOutput(speed, 0)
		s.Vel = s.Vel.Add(forward.Scale(controls.Throttle * scale * groundEngineAccel * tickTime))
	} else if controls.Throttle < 0 {
		scale := reverseForceCurve.GetOutput(-speed, 0)
		s.Vel = s.Vel.Add(forward.Scale(controls.Throttle * scale * groundEngineAccel * tickTime))
	}

	if controls.Handbrake {
		lateral := s.RotMat.Right
		lateralSpeed := s.Vel.Dot(lateral)
		s.Vel = s.Vel.Sub(lateral.Scale(lateralSpeed * mutCfg.CarWorldFriction))
		s.HandbrakeVal = 1
	} else {
		s.HandbrakeVal = 0
	}

	turnScale := steerTorqueCurve.GetOutput(absSpeed(speed), 0)
	s.AngVel.Z += controls.Steer * turnScale * groundTurnAccel * tickTime
}

// applyAirControls applies pitch/yaw/roll torques scaled by fixed inertia
// terms, matching the "damping negligible in roll, moderate in pitch/yaw"
// behavior described for airborne cars.
func applyAirControls(s *State, controls Controls, tickTime float32) {
	s.AngVel.Y += controls.Pitch * airPitchAccel * tickTime
	s.AngVel.Z += controls.Yaw * airYawAccel * tickTime
	s.AngVel.X += controls.Roll * airRollAccel * tickTime

	s.AngVel.Y *= 1 - airPitchDamping*tickTime
	s.AngVel.Z *= 1 - airYawDamping*tickTime
}

// applyBoost adds forward acceleration while boosting. It does not touch
// the boost meter; the meter is drained in PostTickUpdate.
func applyBoost(s *State, mutCfg mutator.Config, tickTime float32) {
	if !s.IsBoosting {
		return
	}
	forward := s.RotMat.Forward
	speed := s.Vel.Dot(forward)
	scale := boostAccelCurve.GetOutput(speed, 0)
	accel := mutCfg.BoostAccelGround
	if !s.IsOnGround {
		accel = mutCfg.BoostAccelAir
	}
	s.Vel = s.Vel.Add(forward.Scale(accel * scale * tickTime))
}

// integratePose advances position and orientation by tickTime given the
// current velocity and angular velocity, then clamps speed to the car's
// configured cap.
func integratePose(s *State, tickTime float32, maxSpeed float32) {
	s.Pos = s.Pos.Add(s.Vel.Scale(tickTime))

	angle := mathutil.FromRotMat(s.RotMat)
	angle.Yaw += s.AngVel.Z * tickTime
	angle.Pitch += s.AngVel.Y * tickTime
	angle.Roll += s.AngVel.X * tickTime
	s.RotMat = angle.ToRotMat()

	s.Vel = mathutil.ClampMagnitude(s.Vel, maxSpeed)
}

func absSpeed(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

const (
	groundEngineAccel      float32 = 1600
	groundTurnAccel        float32 = 5.5
	airPitchAccel          float32 = 9.0
	airYawAccel            float32 = 8.0
	airRollAccel           float32 = 12.0
	airPitchDamping        float32 = 0.3
	airYawDamping          float32 = 0.3
)
