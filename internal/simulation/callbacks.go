package simulation

import (
	"sync"

	"rocketsim/internal/boost"
	"rocketsim/internal/car"
	"rocketsim/internal/mutator"
	"rocketsim/internal/simerr"
)

// GoalScoreFn is invoked once per goal, after the scoring team's counter
// has been incremented. byCar is the last car to touch the ball before
// it crossed the goal line, or nil if the ball was never touched.
type GoalScoreFn func(a *Arena, scoringTeam mutator.Team, byCar *car.Car)

// CarBumpFn is invoked for every car-car contact, demo or not.
type CarBumpFn func(a *Arena, bumper, victim *car.Car, isDemo bool)

// CarDemoFn is invoked only when a car-car contact results in a demolish.
type CarDemoFn func(a *Arena, demolisher, victim *car.Car)

// BoostPickupFn is invoked when a car picks up an active boost pad.
type BoostPickupFn func(a *Arena, c *car.Car, p *boost.Pad)

// BallTouchFn is invoked once per (car, tick) on a car-ball contact.
type BallTouchFn func(a *Arena, c *car.Car)

// callbackRegistry holds the five named callback slots behind a mutex so
// set/get is atomic, matching the spec's "guarded by a mutex" contract.
type callbackRegistry struct {
	mu sync.Mutex

	goalScore   GoalScoreFn
	carBump     CarBumpFn
	carDemo     CarDemoFn
	boostPickup BoostPickupFn
	ballTouch   BallTouchFn
}

// SetGoalScoreCallback installs fn and returns the previously installed
// callback. Rejected with an InvalidConfiguration error if the arena's
// mode has no goals.
func (a *Arena) SetGoalScoreCallback(fn GoalScoreFn) (GoalScoreFn, error) {
	if !a.Mode.HasGoals() {
		return nil, simerr.Configurationf("mode %s has no goals", a.Mode)
	}
	a.callbacks.mu.Lock()
	defer a.callbacks.mu.Unlock()
	prev := a.callbacks.goalScore
	a.callbacks.goalScore = fn
	return prev, nil
}

// SetCarBumpCallback installs fn and returns the previously installed
// callback.
func (a *Arena) SetCarBumpCallback(fn CarBumpFn) CarBumpFn {
	a.callbacks.mu.Lock()
	defer a.callbacks.mu.Unlock()
	prev := a.callbacks.carBump
	a.callbacks.carBump = fn
	return prev
}

// SetCarDemoCallback installs fn and returns the previously installed
// callback.
func (a *Arena) SetCarDemoCallback(fn CarDemoFn) CarDemoFn {
	a.callbacks.mu.Lock()
	defer a.callbacks.mu.Unlock()
	prev := a.callbacks.carDemo
	a.callbacks.carDemo = fn
	return prev
}

// SetBoostPickupCallback installs fn and returns the previously installed
// callback. Rejected with an InvalidConfiguration error if the arena's
// mode has no boost pads.
func (a *Arena) SetBoostPickupCallback(fn BoostPickupFn) (BoostPickupFn, error) {
	if !a.Mode.HasBoostPads() {
		return nil, simerr.Configurationf("mode %s has no boost pads", a.Mode)
	}
	a.callbacks.mu.Lock()
	defer a.callbacks.mu.Unlock()
	prev := a.callbacks.boostPickup
	a.callbacks.boostPickup = fn
	return prev, nil
}

// SetBallTouchCallback installs fn and returns the previously installed
// callback. Car-ball contacts are recorded and dispatched whether or not
// this slot is set; a nil slot only skips the callback invocation.
func (a *Arena) SetBallTouchCallback(fn BallTouchFn) BallTouchFn {
	a.callbacks.mu.Lock()
	defer a.callbacks.mu.Unlock()
	prev := a.callbacks.ballTouch
	a.callbacks.ballTouch = fn
	return prev
}

func (a *Arena) callbackSnapshot() callbackRegistry {
	a.callbacks.mu.Lock()
	defer a.callbacks.mu.Unlock()
	return callbackRegistry{
		goalScore:   a.callbacks.goalScore,
		carBump:     a.callbacks.carBump,
		carDemo:     a.callbacks.carDemo,
		boostPickup: a.callbacks.boostPickup,
		ballTouch:   a.callbacks.ballTouch,
	}
}
