package contact

import (
	"rocketsim/internal/ball"
	"rocketsim/internal/boost"
	"rocketsim/internal/car"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
)

// EventKind identifies which gameplay callback slot an Event belongs to.
type EventKind int

const (
	EventBallTouch EventKind = iota
	EventCarBump
	EventCarDemo
	EventBoostPickup
)

// Event is a gameplay-level effect produced by Dispatch, queued for the
// callback registry to flush in phase 8 of the tick.
type Event struct {
	Kind     EventKind
	Car      *car.Car
	OtherCar *car.Car
	Pad      *boost.Pad
	IsDemo   bool
}

// Dispatch resolves every Record accumulated this tick into gameplay state
// changes plus a list of Events for the caller to flush as callbacks. It
// must only be called after integration has completed for the tick.
func Dispatch(t *Tracker, cars map[uint32]*car.Car, b *ball.Ball, pads []*boost.Pad, mutCfg mutator.Config, tickCount uint64, mode mutator.GameMode) []Event {
	var events []Event
	for _, r := range t.Records {
		switch {
		case isPair(r, PartyCar, PartyBall):
			carID := pick(r, PartyCar)
			if c, ok := cars[carID]; ok {
				if ev, fired := dispatchCarBall(c, b, mutCfg, tickCount, mode, r); fired {
					events = append(events, ev)
				}
			}
		case isPair(r, PartyCar, PartyCar):
			c1, ok1 := cars[r.IndexA]
			c2, ok2 := cars[r.IndexB]
			if ok1 && ok2 {
				events = append(events, dispatchCarCar(c1, c2, mutCfg)...)
			}
		case isPair(r, PartyCar, PartyWorld):
			carID := pick(r, PartyCar)
			if c, ok := cars[carID]; ok {
				dispatchCarWorld(c, r)
			}
		case isPair(r, PartyCar, PartyPadTrigger):
			carID := pick(r, PartyCar)
			padIdx := pick(r, PartyPadTrigger)
			if c, ok := cars[carID]; ok && int(padIdx) < len(pads) {
				if ev, fired := dispatchPadPickup(c, pads[padIdx], mutCfg); fired {
					events = append(events, ev)
				}
			}
		}
	}
	return events
}

func isPair(r Record, a, b PartyKind) bool {
	return (r.KindA == a && r.KindB == b) || (r.KindA == b && r.KindB == a)
}

// pick returns whichever of IndexA/IndexB belongs to the party of kind k.
func pick(r Record, k PartyKind) uint32 {
	if r.KindA == k {
		return r.IndexA
	}
	return r.IndexB
}

// dispatchCarBall implements the car<->ball rule: at most one recorded
// touch per (car, tick), writing ballHitInfo and applying the extra hit
// impulse from the approach-velocity force-scale curve.
func dispatchCarBall(c *car.Car, b *ball.Ball, mutCfg mutator.Config, tickCount uint64, mode mutator.GameMode, r Record) (Event, bool) {
	hit := &c.State.BallHitInfo
	if hit.IsValid && hit.TickCountWhenHit == tickCount {
		return Event{}, false
	}

	hit.IsValid = true
	hit.BallPos = b.State.Pos
	hit.RelativePosOnBall = b.State.Pos.Sub(c.State.Pos)
	hit.TickCountWhenHit = tickCount
	b.OnTouch(c.ID, mode)

	approach := c.State.Vel.Sub(b.State.Vel)
	scale := ballHitForceScaleCurve.GetOutput(approach.Length(), 0) * mutCfg.BallHitExtraForceScale
	extra := approach.Scale(scale)
	hit.ExtraHitVel = extra
	hit.TickCountWhenExtraImpulseApplied = tickCount
	b.State.Vel = b.State.Vel.Add(extra)

	return Event{Kind: EventBallTouch, Car: c}, true
}

// dispatchCarCar implements the car<->car bump/demo rule, respecting the
// pairwise cooldown and the mutator's DemoMode/team-demo gates.
func dispatchCarCar(c1, c2 *car.Car, mutCfg mutator.Config) []Event {
	if c1.State.CarContact.CooldownTimer > 0 && c1.State.CarContact.OtherCarID == c2.ID {
		return nil
	}

	relSpeed := c1.State.Vel.Sub(c2.State.Vel).Length()
	isDemo := mutCfg.DemoMode != mutator.DemoDisabled &&
		(relSpeed >= car.DemoMinSpeed ||
			(mutCfg.DemoMode == mutator.DemoOnContact && (c1.State.IsSupersonic || c2.State.IsSupersonic))) &&
		(c1.Team != c2.Team || mutCfg.EnableTeamDemos)

	c1.State.CarContact = car.CarContact{OtherCarID: c2.ID, CooldownTimer: mutCfg.BumpCooldownTime}
	c2.State.CarContact = car.CarContact{OtherCarID: c1.ID, CooldownTimer: mutCfg.BumpCooldownTime}

	events := []Event{{Kind: EventCarBump, Car: c1, OtherCar: c2, IsDemo: isDemo}}
	if isDemo {
		victim := c2
		if c1.State.Vel.Length() < c2.State.Vel.Length() {
			victim = c1
		}
		victim.Demolish(mutCfg.RespawnDelay)
		events = append(events, Event{Kind: EventCarDemo, Car: c1, OtherCar: victim})
	}
	return events
}

// dispatchCarWorld updates the car's world-contact normal; it never
// queues a callback, matching the spec's silence on a world-touch event.
func dispatchCarWorld(c *car.Car, r Record) {
	c.State.WorldContact.HasContact = true
	c.State.WorldContact.ContactNormal = r.NormalWorldOnB

	grounded := r.NormalWorldOnB.Z > 0.7
	for i := range c.State.WheelsWithContact {
		c.State.WheelsWithContact[i] = grounded
	}
}

// dispatchPadPickup implements the car<->pad-trigger rule: inactive pads
// and demoed cars are silently ignored, matching the non-error semantics
// in the error handling design.
func dispatchPadPickup(c *car.Car, p *boost.Pad, mutCfg mutator.Config) (Event, bool) {
	if !p.State.IsActive || c.State.IsDemoed {
		return Event{}, false
	}
	amount := p.Pickup(mutCfg.BoostPadCooldownBig, mutCfg.BoostPadCooldownSmall)
	c.State.Boost += amount
	if c.State.Boost > 100 {
		c.State.Boost = 100
	}
	return Event{Kind: EventBoostPickup, Car: c, Pad: p}, true
}

// ballHitForceScaleCurve scales the extra impulse applied to the ball on
// touch by the car's approach speed.
var ballHitForceScaleCurve = mathutil.NewLinearPieceCurve(
	mathutil.CurvePoint{Input: 0, Output: 0},
	mathutil.CurvePoint{Input: 500, Output: 0.15},
	mathutil.CurvePoint{Input: 4000, Output: 0.35},
)
