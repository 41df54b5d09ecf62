package car

import "rocketsim/internal/mathutil"

// ControlState is one of the seven states the jump/flip/demo machine can be
// in for a given car.
type ControlState uint8

const (
	Grounded ControlState = iota
	Jumping
	AirAfterJump
	Flipping
	AirAfterFlip
	AirNeutral
	Demoed
)

func (s ControlState) String() string {
	switch s {
	case Jumping:
		return "jumping"
	case AirAfterJump:
		return "air_after_jump"
	case Flipping:
		return "flipping"
	case AirAfterFlip:
		return "air_after_flip"
	case AirNeutral:
		return "air_neutral"
	case Demoed:
		return "demoed"
	default:
		return "grounded"
	}
}

// WorldContact records the most recent car-vs-world (ground/wall/ceiling)
// contact normal reported by the physics layer.
type WorldContact struct {
	HasContact    bool
	ContactNormal mathutil.Vec
}

// CarContact tracks the bump/demo cooldown against the last car this car
// collided with.
type CarContact struct {
	OtherCarID    uint32
	CooldownTimer float32
}

// BallHitInfo records the most recent ball touch this car made, used both
// to gate "once per (car, tick)" touch dispatch and to populate the
// ballTouchedSinceLastSnapshot snapshot field.
type BallHitInfo struct {
	IsValid                          bool
	RelativePosOnBall                mathutil.Vec
	BallPos                          mathutil.Vec
	ExtraHitVel                      mathutil.Vec
	TickCountWhenHit                 uint64
	TickCountWhenExtraImpulseApplied uint64
}

// State is the full mutable state of one car, matching CarState in the
// data model.
type State struct {
	Pos    mathutil.Vec
	Vel    mathutil.Vec
	AngVel mathutil.Vec
	RotMat mathutil.RotMat

	WheelsWithContact [4]bool
	IsOnGround        bool

	HasJumped bool
	IsJumping bool
	JumpTime  float32

	HasDoubleJumped  bool
	AirTimeSinceJump float32

	HasFlipped    bool
	IsFlipping    bool
	FlipTime      float32
	FlipRelTorque mathutil.Vec

	IsAutoFlipping      bool
	AutoFlipTimer       float32
	AutoFlipTorqueScale float32

	Boost            float32
	BoostingTime     float32
	IsBoosting       bool
	TimeSinceBoosted float32

	IsSupersonic   bool
	SupersonicTime float32

	HandbrakeVal float32

	IsDemoed         bool
	DemoRespawnTimer float32

	WorldContact WorldContact
	CarContact   CarContact

	LastControls Controls
	BallHitInfo  BallHitInfo

	TickCountSinceUpdate uint64
}

// WheelsInContact counts how many of the four wheels currently report
// ground contact.
func (s *State) WheelsInContact() int {
	n := 0
	for _, w := range s.WheelsWithContact {
		if w {
			n++
		}
	}
	return n
}

// HasFlipOrJump is the predicate from the control-state table: true while
// grounded, or while the car still has an unused double jump/flip within
// the post-jump window.
func (s *State) HasFlipOrJump() (bool, ControlState) {
	if s.IsOnGround {
		return true, Grounded
	}
	if s.HasJumped && !s.HasDoubleJumped && s.AirTimeSinceJump <= DoubleJumpMaxDelay {
		return true, AirAfterJump
	}
	return false, AirNeutral
}
