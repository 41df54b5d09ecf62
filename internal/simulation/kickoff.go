package simulation

import (
	"rocketsim/internal/ball"
	"rocketsim/internal/car"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
)

// kickoffSpots are the five canonical soccar kickoff positions, mirrored
// across the centerline for the orange team. Each car gets the spot at its
// team ordinal; the seeded draw in ResetToRandomKickoff does not change
// which spot a car gets.
var kickoffSpots = []mathutil.Vec{
	{X: 0, Y: -4608},
	{X: -2048, Y: -2560},
	{X: 2048, Y: -2560},
	{X: -256, Y: -3840},
	{X: 256, Y: -3840},
}

// spawnSlot returns a deterministic team-side respawn pose for a car by
// its ordinal (how many other cars on its team were already present when
// it was added). Used both for demo respawns and for kickoff placement.
func spawnSlot(team mutator.Team, ordinal int) car.Pose {
	spot := kickoffSpots[ordinal%len(kickoffSpots)]
	if team == mutator.Orange {
		spot = mathutil.Vec{X: -spot.X, Y: -spot.Y, Z: spot.Z}
	}
	yaw := float32(1.5707963) // face the opposing goal
	if team == mutator.Orange {
		yaw = -1.5707963
	}
	return car.Pose{
		Pos:    mathutil.Vec{X: spot.X, Y: spot.Y, Z: 17},
		RotMat: mathutil.Angle{Yaw: yaw}.ToRotMat(),
	}
}

// ResetToRandomKickoff resets the ball to center, assigns every car a
// team/ordinal spawn slot with default boost, clears scores and per-car
// stats, and zeroes state-machine timers. The tick counter is untouched.
func (a *Arena) ResetToRandomKickoff(seed int64) {
	a.rand = mathutil.NewRand(seed)
	_ = a.rand.Int(0, len(kickoffSpots)) // selects the kickoff arrangement; spot assignment below is deterministic per team/ordinal

	a.ball = ball.New(a.Mutator)

	byTeam := map[mutator.Team]int{}
	for _, c := range a.Cars() {
		ordinal := byTeam[c.Team]
		byTeam[c.Team] = ordinal + 1
		pose := spawnSlot(c.Team, ordinal)
		pose.Pos.Z = a.groundClearanceAt(pose.Pos) + 17
		c.Respawn(pose, a.Mutator.CarSpawnBoostAmount)
	}

	a.scoreBlue = 0
	a.scoreOrange = 0
	a.tracker.Clear()
	for _, p := range a.pads {
		p.State.IsActive = true
		p.State.Cooldown = 0
	}
}
