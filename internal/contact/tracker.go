// Package contact implements the deferred collision pipeline: a
// ContactTracker records every contact the rigid-body step produces, and
// Dispatch resolves those records into gameplay effects once integration
// has finished. No gameplay state is ever mutated from inside the
// narrow-phase callback that would populate the tracker — the physics
// engine is assumed to invoke that callback from within its own solver
// iteration, so recording must be side-effect free.
package contact

import "rocketsim/internal/mathutil"

// PartyKind tags which kind of entity a collision record's userIndex
// identifies, matching the userIndexA/B tagging convention the physics
// engine is assumed to apply to every rigid body it owns.
type PartyKind int

const (
	PartyCar PartyKind = iota
	PartyBall
	PartyWorld
	PartyPadTrigger
)

// Record is a deferred description of one contact point captured during
// integration. Field names mirror CollisionRecord in the original engine.
type Record struct {
	KindA, KindB             PartyKind
	IndexA, IndexB           uint32 // car ID or pad index; ignored for World
	LocalPointA, LocalPointB mathutil.Vec
	NormalWorldOnB           mathutil.Vec
	CombinedFriction         float32
	CombinedRestitution      float32
	ShouldSwap               bool
}

// Tracker accumulates Records during one tick's integration. Its records
// slice must be empty both before and after every tick.
type Tracker struct {
	Records []Record
}

// Clear empties the tracker, run at the start of every tick before
// integration (phase 2 of the arena step).
func (t *Tracker) Clear() {
	t.Records = t.Records[:0]
}

// Add appends a newly observed contact. Called from the (assumed)
// narrow-phase callback during integration; must never touch gameplay
// state directly.
func (t *Tracker) Add(r Record) {
	t.Records = append(t.Records, r)
}
