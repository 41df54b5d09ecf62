package simulation

import (
	"fmt"

	"rocketsim/internal/car"
	"rocketsim/internal/contact"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
	"rocketsim/internal/simerr"
)

// Step advances the arena by n ticks, executing phases 1-8 exactly as
// ordered: pre-tick car update, contact tracker clear, rigid-body
// integration with deferred contact recording, contact dispatch,
// post-tick car update, ball/mode update, boost pad regen, tick
// increment with callback flush.
//
// If a callback panicked on a prior tick, that failure is surfaced here
// before any new work is done, matching "on the next entry to step, the
// stored exception is surfaced to the caller before any new work".
func (a *Arena) Step(n int) error {
	if a.storedErr != nil {
		err := a.storedErr
		a.storedErr = nil
		return err
	}
	for i := 0; i < n; i++ {
		a.stepOnce()
		if a.storedErr != nil {
			break
		}
	}
	return nil
}

func (a *Arena) stepOnce() {
	cars := a.Cars()

	//1.- Pre-tick car update: input edges, ground sense, forces, integration.
	for _, c := range cars {
		c.PreTickUpdate(a.Mutator, a.tickTime)
	}

	//2.- Contact tracker clear.
	a.tracker.Clear()

	//3.- Rigid-body integration. The ball integrates its own motion; the
	// narrow-phase stand-in below records every contact it would have
	// reported, without touching gameplay state.
	a.ball.Integrate(a.Mutator, a.tickTime, a.Mode)
	a.recordContacts(cars)

	//4.- Contact dispatch.
	events := contact.Dispatch(a.tracker, a.cars, a.ball, a.pads, a.Mutator, a.tickCount, a.Mode)

	//5.- Post-tick car update.
	for _, c := range cars {
		c.PostTickUpdate(a.Mutator, a.tickTime)
	}

	//6.- Ball/mode update: world bounce resolution plus goal detection.
	a.resolveBallWorldBounce()
	var goalEvent *goalScored
	if a.Mode.HasGoals() {
		goalEvent = a.detectGoal()
	}

	//7.- Boost pad regen.
	for _, p := range a.pads {
		p.Regen(a.tickTime)
	}

	//8.- Tick increment, then flush queued callbacks.
	a.tickCount++
	a.flushCallbacks(events, goalEvent)
}

// recordContacts runs the narrow-phase stand-in: car-ball overlap,
// car-world plane penetration, and car-pad-trigger volume checks, each
// appended to the tracker for phase 4 to dispatch. No gameplay state is
// touched here.
func (a *Arena) recordContacts(cars []*car.Car) {
	for _, c := range cars {
		if c.State.IsDemoed {
			continue
		}
		ballField := SphereField{Center: Vec3{X: float64(a.ball.State.Pos.X), Y: float64(a.ball.State.Pos.Y), Z: float64(a.ball.State.Pos.Z)}, Radius: float64(a.ball.Radius)}
		carCenter := Vec3{X: float64(c.State.Pos.X), Y: float64(c.State.Pos.Y), Z: float64(c.State.Pos.Z)}
		if hit, _ := SphereIntersection(ballField, carCenter, float64(carBallTouchRadius)); hit {
			a.tracker.Add(contact.Record{KindA: contact.PartyCar, IndexA: c.ID, KindB: contact.PartyBall})
		}
		if normal, ok := nearestPenetratingWallNormal(a.walls, c.State.Pos, carGroundClearance); ok {
			a.tracker.Add(contact.Record{KindA: contact.PartyCar, IndexA: c.ID, KindB: contact.PartyWorld, NormalWorldOnB: normal})
		}
		for idx, p := range a.pads {
			if p.State.IsActive && p.WithinPickupVolume(c.State.Pos) {
				a.tracker.Add(contact.Record{KindA: contact.PartyCar, IndexA: c.ID, KindB: contact.PartyPadTrigger, IndexB: uint32(idx)})
			}
		}
		for _, other := range cars {
			if other.ID <= c.ID || other.State.IsDemoed {
				continue
			}
			if carCarOverlap(c, other) {
				a.tracker.Add(contact.Record{KindA: contact.PartyCar, IndexA: c.ID, KindB: contact.PartyCar, IndexB: other.ID})
			}
		}
	}
}

const (
	carGroundClearance = 20
	carCollisionRadius = 60
	carBallTouchRadius = 110
)

func carCarOverlap(c1, c2 *car.Car) bool {
	d := c1.State.Pos.Sub(c2.State.Pos)
	return d.Length() <= 2*carCollisionRadius
}

func nearestPenetratingWallNormal(walls []wallPlane, pos mathutil.Vec, clearance float32) (mathutil.Vec, bool) {
	for _, w := range walls {
		dist := w.field.Sample(Vec3{X: float64(pos.X), Y: float64(pos.Y), Z: float64(pos.Z)})
		if dist <= float64(clearance) {
			return mathutil.Vec{X: float32(w.field.normal.X), Y: float32(w.field.normal.Y), Z: float32(w.field.normal.Z)}, true
		}
	}
	return mathutil.Vec{}, false
}

// resolveBallWorldBounce reflects the ball's velocity off any wall/floor/
// ceiling it has penetrated, scaled by the mutator's ball-world
// restitution and friction.
func (a *Arena) resolveBallWorldBounce() {
	pos := a.ball.State.Pos
	center := Vec3{X: float64(pos.X), Y: float64(pos.Y), Z: float64(pos.Z)}
	for _, w := range a.walls {
		hit, separation := SphereIntersection(w.field, center, float64(a.ball.Radius))
		if !hit {
			continue
		}
		normal := mathutil.Vec{X: float32(w.field.normal.X), Y: float32(w.field.normal.Y), Z: float32(w.field.normal.Z)}
		vn := a.ball.State.Vel.Dot(normal)
		if vn >= 0 {
			continue
		}
		reflected := a.ball.State.Vel.Sub(normal.Scale(vn * (1 + a.Mutator.BallWorldRestitution)))
		a.ball.State.Vel = reflected.Scale(1 - a.Mutator.BallWorldFriction*0.05)
		a.ball.State.Pos = a.ball.State.Pos.Add(normal.Scale(-float32(separation)))
	}
}

type goalScored struct {
	scoringTeamIsBlue bool
}

func (a *Arena) detectGoal() *goalScored {
	pos := a.ball.State.Pos
	if pos.Y <= -BackWallY && withinGoalMouth(pos) {
		a.scoreOrange++
		return &goalScored{scoringTeamIsBlue: false}
	}
	if pos.Y >= BackWallY && withinGoalMouth(pos) {
		a.scoreBlue++
		return &goalScored{scoringTeamIsBlue: true}
	}
	return nil
}

func withinGoalMouth(pos mathutil.Vec) bool {
	return absf32(pos.X) <= GoalHalfWidth && pos.Z <= GoalHeight
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// flushCallbacks invokes every queued callback for this tick. A callback
// that panics has its failure stored as the next Step's returned error;
// no further callbacks fire for this tick, but state changes already
// applied this tick remain.
func (a *Arena) flushCallbacks(events []contact.Event, goal *goalScored) {
	cb := a.callbackSnapshot()

	if goal != nil {
		team := mutator.Orange
		if goal.scoringTeamIsBlue {
			team = mutator.Blue
		}
		byCar := a.CarByID(a.ball.State.LastHitCarID)
		if cb.goalScore != nil {
			if !a.invoke(func() { cb.goalScore(a, team, byCar) }) {
				return
			}
		}
		a.ResetToRandomKickoff(int64(a.tickCount))
	}

	for _, e := range events {
		switch e.Kind {
		case contact.EventBallTouch:
			if cb.ballTouch != nil {
				if !a.invoke(func() { cb.ballTouch(a, e.Car) }) {
					return
				}
			}
		case contact.EventCarBump:
			if cb.carBump != nil {
				if !a.invoke(func() { cb.carBump(a, e.Car, e.OtherCar, e.IsDemo) }) {
					return
				}
			}
		case contact.EventCarDemo:
			if cb.carDemo != nil {
				if !a.invoke(func() { cb.carDemo(a, e.Car, e.OtherCar) }) {
					return
				}
			}
		case contact.EventBoostPickup:
			if cb.boostPickup != nil {
				if !a.invoke(func() { cb.boostPickup(a, e.Car, e.Pad) }) {
					return
				}
			}
		}
	}
}

// invoke runs fn, converting a panic into a.storedErr. Returns false if
// fn panicked, signalling the caller to stop flushing further callbacks
// this tick.
func (a *Arena) invoke(fn func()) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.storedErr = simerr.Callback(a.tickCount, fmt.Errorf("callback panicked: %v", r))
			ok = false
		}
	}()
	fn()
	return true
}
