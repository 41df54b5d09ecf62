// Package snapshot implements the fixed-layout numeric tensor export RL
// callers sample every tick: one 18-float row per ball, one 26-float row
// per car, one 1-float row per boost pad, plus the optional inverted
// (opposing-team-perspective) views described in spec.md §4.5.
package snapshot

import (
	"rocketsim/internal/ball"
	"rocketsim/internal/boost"
	"rocketsim/internal/car"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/simulation"
)

// BallRowFloats is the fixed width of one ball tensor row: pos(3), vel(3),
// angVel(3), rotMat.forward(3), rotMat.right(3), rotMat.up(3).
const BallRowFloats = 18

// CarRowFloats is the fixed width of one car tensor row: the same 18
// floats as a ball row, then boost, isOnGround, hasJumped,
// hasDoubleJumped, hasFlipped, isDemoed, isSupersonic,
// ballTouchedSinceLastSnapshot.
const CarRowFloats = 26

// PadRowFloats is the fixed width of one boost pad tensor row: isActive.
const PadRowFloats = 1

// GymState is one fully materialized snapshot export. Ball and Cars are
// flattened row-major float32 slices; when Inverted is requested each row
// is immediately followed by its inverted counterpart, doubling the row
// stride (shape (18,) -> (2,18), (N,26) -> (N,2,26) in tensor terms).
type GymState struct {
	Ball        []float32
	Cars        []float32
	Pads        []float32
	CarIDs      []uint32
	CarTeams    []uint8
	BlueScore   uint32
	OrangeScore uint32
	TickCount   uint64
	Inverted    bool
}

// Export builds a fresh, caller-owned GymState from the arena's current
// state and marks the arena's lastSnapshotTick, matching "calling the
// snapshot function updates lastSnapshotTick <- tickCount".
func Export(a *simulation.Arena, inverted bool) GymState {
	cars := a.Cars()
	lastSnapshot := a.LastSnapshotTick()

	state := GymState{
		Pads:     make([]float32, PadRowFloats*len(a.Pads())),
		CarIDs:   make([]uint32, len(cars)),
		CarTeams: make([]uint8, len(cars)),
		Inverted: inverted,
	}

	ballStride := BallRowFloats
	carStride := CarRowFloats
	if inverted {
		ballStride *= 2
		carStride *= 2
	}
	state.Ball = make([]float32, ballStride)
	state.Cars = make([]float32, carStride*len(cars))

	writeBallRow(state.Ball[:BallRowFloats], a.Ball())
	if inverted {
		invertRow(state.Ball[BallRowFloats:BallRowFloats*2], state.Ball[:BallRowFloats])
	}

	for i, c := range cars {
		state.CarIDs[i] = c.ID
		state.CarTeams[i] = uint8(c.Team)
		row := state.Cars[i*carStride : i*carStride+CarRowFloats]
		writeCarRow(row, c, lastSnapshot)
		if inverted {
			invertRow(state.Cars[i*carStride+CarRowFloats:i*carStride+2*CarRowFloats], row)
		}
	}

	for i, p := range a.Pads() {
		state.Pads[i] = padRowValue(p)
	}

	state.BlueScore, state.OrangeScore = a.Score()
	state.TickCount = a.TickCount()
	a.MarkSnapshotTaken()
	return state
}

// writeBallRow fills dst (length BallRowFloats) from b's state.
func writeBallRow(dst []float32, b *ball.Ball) {
	writeVecTriple(dst, b.State.Pos, b.State.Vel, b.State.AngVel, b.State.RotMat)
}

// writeCarRow fills dst (length CarRowFloats) from c's state. The
// ballTouchedSinceLastSnapshot flag is true iff the car's ball-hit info
// is valid and its tick is at or after lastSnapshotTick.
func writeCarRow(dst []float32, c *car.Car, lastSnapshotTick uint64) {
	s := &c.State
	writeVecTriple(dst[:BallRowFloats], s.Pos, s.Vel, s.AngVel, s.RotMat)

	dst[18] = s.Boost
	dst[19] = boolFloat(s.IsOnGround)
	dst[20] = boolFloat(s.HasJumped)
	dst[21] = boolFloat(s.HasDoubleJumped)
	dst[22] = boolFloat(s.HasFlipped)
	dst[23] = boolFloat(s.IsDemoed)
	dst[24] = boolFloat(s.IsSupersonic)
	touched := s.BallHitInfo.IsValid && s.BallHitInfo.TickCountWhenHit >= lastSnapshotTick
	dst[25] = boolFloat(touched)
}

// writeVecTriple packs pos/vel/angVel and the rotation matrix's three
// basis columns into 18 consecutive floats.
func writeVecTriple(dst []float32, pos, vel, angVel mathutil.Vec, rot mathutil.RotMat) {
	putVec(dst[0:3], pos)
	putVec(dst[3:6], vel)
	putVec(dst[6:9], angVel)
	putVec(dst[9:12], rot.Forward)
	putVec(dst[12:15], rot.Right)
	putVec(dst[15:18], rot.Up)
}

func putVec(dst []float32, v mathutil.Vec) {
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
}

func padRowValue(p *boost.Pad) float32 { return boolFloat(p.State.IsActive) }

func boolFloat(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

// invertRow writes src's opposing-team-perspective view into dst: every
// Vec field's (x,y) negated, z preserved, scalar/boolean trailer
// untouched. src and dst must not overlap. dst may be shorter than src
// when invoked on a ball row (18 floats); the scalar trailer copy is a
// no-op in that case.
func invertRow(dst, src []float32) {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	vecFloats := BallRowFloats
	if vecFloats > n {
		vecFloats = n
	}
	for i := 0; i+3 <= vecFloats; i += 3 {
		dst[i] = -src[i]
		dst[i+1] = -src[i+1]
		dst[i+2] = src[i+2]
	}
	for i := vecFloats; i < n; i++ {
		dst[i] = src[i]
	}
}

// Invert returns the opposing-team-perspective view of a single row
// (either a BallRowFloats or CarRowFloats slice), for callers that want
// to invert a row obtained outside of Export.
func Invert(row []float32) []float32 {
	out := make([]float32, len(row))
	invertRow(out, row)
	return out
}
