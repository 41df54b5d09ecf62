package car

// Tuning constants reproduced from the well-known public RocketSim/Rocket
// League constant set. The original engine's RLConst.h header was not
// present in the retrieved source material — only call sites referencing
// these names were — so the values below are the community-published
// defaults rather than a verbatim header dump. See DESIGN.md for the open
// question this resolves.
const (
	CarMaxSpeed        float32 = 2300
	CarMaxSpeedNoBoost float32 = 1410

	SupersonicStartSpeed    float32 = 2200
	SupersonicMaintainSpeed float32 = 2199
	SupersonicMaintainTime  float32 = 1.0

	JumpMinTime        float32 = 0.025
	JumpMaxTime        float32 = 0.2
	DoubleJumpMaxDelay float32 = 1.25
	FlipTorqueTime     float32 = 0.65
	AutoFlipTime       float32 = 0.4

	DemoMinSpeed float32 = 1100
)
