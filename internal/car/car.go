package car

import (
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
)

// Car owns a State, a Config, a Team, a process-unique CarID and the
// controls currently applied to it.
type Car struct {
	ID           uint32
	Team         mutator.Team
	Config       Config
	State        State
	Controls     Controls
	ControlState ControlState

	// SpawnPose resolves this car's team/ordinal-indexed respawn slot. The
	// arena assigns it when the car is added so demo-respawn and kickoff
	// can share one source of spawn poses.
	SpawnPose func() Pose

	prevJump bool
}

// New constructs a car at the origin in Grounded state with full boost.
func New(id uint32, team mutator.Team, cfg Config) *Car {
	return &Car{
		ID:     id,
		Team:   team,
		Config: cfg,
		State: State{
			RotMat: mathutil.Identity(),
			Boost:  100,
		},
		ControlState: Grounded,
	}
}

// PreTickUpdate runs phase 1 of the arena tick: input-edge detection,
// ground-sense update from the prior tick's wheel contacts, force/torque
// application, and demo countdown.
func (c *Car) PreTickUpdate(mutCfg mutator.Config, tickTime float32) {
	s := &c.State

	if s.IsDemoed {
		s.DemoRespawnTimer -= tickTime
		if s.DemoRespawnTimer <= 0 {
			c.respawnInPlace(mutCfg)
		}
		c.prevJump = c.Controls.Jump
		return
	}

	jumpEdge := c.Controls.Jump && !c.prevJump
	s.IsOnGround = s.WheelsInContact() >= 3

	c.runStateMachine(jumpEdge, mutCfg, tickTime)

	if s.IsOnGround && c.ControlState == Grounded {
		applyGroundForces(s, c.Controls, mutCfg, tickTime)
	} else if !s.IsDemoed {
		applyAirControls(s, c.Controls, tickTime)
	}

	s.IsBoosting = c.Controls.Boost && s.Boost > 0 && !s.IsDemoed
	if s.IsBoosting {
		applyBoost(s, mutCfg, tickTime)
	}

	maxSpeed := CarMaxSpeedNoBoost
	if s.IsBoosting || s.IsSupersonic {
		maxSpeed = CarMaxSpeed
	}
	integratePose(s, tickTime, maxSpeed)

	s.LastControls = c.Controls
	c.prevJump = c.Controls.Jump
}

// runStateMachine advances c.ControlState per the transition table in
// §4.3: edge-triggered jump, flip-vs-double-jump branching through the
// dodge-deadzone, and the any-air-to-grounded transition.
func (c *Car) runStateMachine(jumpEdge bool, mutCfg mutator.Config, tickTime float32) {
	s := &c.State

	if s.IsOnGround && c.ControlState != Demoed {
		if c.ControlState != Grounded {
			c.ControlState = Grounded
			s.IsJumping = false
			s.IsFlipping = false
		}
	}

	switch c.ControlState {
	case Grounded:
		if jumpEdge && s.WheelsInContact() >= 3 {
			s.Vel.Z += mutCfg.JumpImmediateForce
			s.HasJumped = true
			s.HasDoubleJumped = false
			s.HasFlipped = false
			s.JumpTime = 0
			s.AirTimeSinceJump = 0
			c.ControlState = Jumping
		}
	case Jumping:
		s.JumpTime += tickTime
		s.AirTimeSinceJump += tickTime
		s.Vel.Z += mutCfg.JumpAccel * tickTime
		if s.JumpTime >= JumpMaxTime || (!c.Controls.Jump && s.JumpTime >= JumpMinTime) {
			c.ControlState = AirAfterJump
		}
		c.maybeFlipOrDoubleJump(jumpEdge)
	case AirAfterJump:
		s.AirTimeSinceJump += tickTime
		c.maybeFlipOrDoubleJump(jumpEdge)
	case Flipping:
		s.FlipTime += tickTime
		s.AirTimeSinceJump += tickTime
		if s.FlipTime >= FlipTorqueTime {
			s.IsFlipping = false
			c.ControlState = AirAfterFlip
		} else {
			s.AngVel = s.AngVel.Add(s.FlipRelTorque.Scale(tickTime))
		}
	case AirAfterFlip, AirNeutral:
		s.AirTimeSinceJump += tickTime
	}

	c.updateAutoFlip(tickTime)
}

// maybeFlipOrDoubleJump handles the second jump input: below the
// dodge-deadzone it is a double jump, at or above it is a flip with
// torque direction taken from the current pitch/yaw/roll controls.
func (c *Car) maybeFlipOrDoubleJump(jumpEdge bool) {
	s := &c.State
	if !jumpEdge || s.HasDoubleJumped || s.AirTimeSinceJump > DoubleJumpMaxDelay {
		return
	}

	dir := mathutil.Vec{X: c.Controls.Roll, Y: c.Controls.Pitch, Z: c.Controls.Yaw}
	if dir.Length() >= c.Config.DodgeDeadzone {
		s.HasFlipped = true
		s.IsFlipping = true
		s.FlipTime = 0
		s.FlipRelTorque = dir.Normalized().Scale(flipTorqueMagnitude)
		c.ControlState = Flipping
	} else {
		s.HasDoubleJumped = true
		s.Vel.Z += doubleJumpImpulse
		c.ControlState = AirAfterJump
	}
}

// updateAutoFlip sets IsAutoFlipping when the car ends a tick upside-down
// on the ground with low vertical speed, and applies a decaying torque
// over AutoFlipTime while it is active.
func (c *Car) updateAutoFlip(tickTime float32) {
	s := &c.State
	upsideDown := s.RotMat.Up.Z < 0
	if s.IsOnGround && upsideDown && absSpeed(s.Vel.Z) < autoFlipSpeedThreshold {
		if !s.IsAutoFlipping {
			s.IsAutoFlipping = true
			s.AutoFlipTimer = 0
			s.AutoFlipTorqueScale = 1
		}
	}
	if !s.IsAutoFlipping {
		return
	}
	s.AutoFlipTimer += tickTime
	if s.AutoFlipTimer >= AutoFlipTime {
		s.IsAutoFlipping = false
		s.AutoFlipTorqueScale = 0
		return
	}
	s.AutoFlipTorqueScale = 1 - s.AutoFlipTimer/AutoFlipTime
	s.AngVel.Y += autoFlipTorque * s.AutoFlipTorqueScale * tickTime
}

// PostTickUpdate runs phase 5 of the arena tick: boost drain, supersonic
// hysteresis, bump cooldown decrement and tick bookkeeping.
func (c *Car) PostTickUpdate(mutCfg mutator.Config, tickTime float32) {
	s := &c.State

	if s.IsBoosting {
		s.Boost -= mutCfg.BoostUsedPerSecond * tickTime
		if s.Boost < 0 {
			s.Boost = 0
		}
		s.BoostingTime += tickTime
		s.TimeSinceBoosted = 0
	} else {
		s.TimeSinceBoosted += tickTime
	}

	speed := s.Vel.Length()
	if !s.IsSupersonic && speed >= SupersonicStartSpeed {
		s.IsSupersonic = true
		s.SupersonicTime = 0
	} else if s.IsSupersonic {
		if speed < SupersonicMaintainSpeed {
			s.SupersonicTime += tickTime
			if s.SupersonicTime >= SupersonicMaintainTime {
				s.IsSupersonic = false
				s.SupersonicTime = 0
			}
		} else {
			s.SupersonicTime = 0
		}
	}

	if s.CarContact.CooldownTimer > 0 {
		s.CarContact.CooldownTimer -= tickTime
		if s.CarContact.CooldownTimer < 0 {
			s.CarContact.CooldownTimer = 0
		}
	}

	s.TickCountSinceUpdate++
}

// Demolish transitions the car into Demoed with the given respawn delay.
func (c *Car) Demolish(respawnDelay float32) {
	s := &c.State
	s.IsDemoed = true
	s.DemoRespawnTimer = respawnDelay
	s.IsJumping = false
	s.IsFlipping = false
	s.IsAutoFlipping = false
	c.ControlState = Demoed
}

// Respawn resets the car to a spawn pose with the given boost amount,
// matching the Python binding's respawn(game_mode, seed, boost_amount).
func (c *Car) Respawn(pose Pose, boostAmount float32) {
	s := &c.State
	*s = State{
		Pos:    pose.Pos,
		RotMat: pose.RotMat,
		Boost:  boostAmount,
	}
	c.ControlState = Grounded
	c.Controls = Controls{}
	c.prevJump = false
}

func (c *Car) respawnInPlace(mutCfg mutator.Config) {
	pose := Pose{Pos: c.State.Pos, RotMat: mathutil.Identity()}
	if c.SpawnPose != nil {
		pose = c.SpawnPose()
	}
	c.Respawn(pose, mutCfg.CarSpawnBoostAmount)
}

// Pose is a position/orientation pair used for spawn and respawn slots.
type Pose struct {
	Pos    mathutil.Vec
	RotMat mathutil.RotMat
}

const (
	flipTorqueMagnitude    float32 = 260
	doubleJumpImpulse      float32 = 280
	autoFlipSpeedThreshold float32 = 100
	autoFlipTorque         float32 = 2.0
)
