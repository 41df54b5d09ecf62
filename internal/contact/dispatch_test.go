package contact

import (
	"testing"

	"rocketsim/internal/ball"
	"rocketsim/internal/boost"
	"rocketsim/internal/car"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
)

func newTestCar(id uint32, team mutator.Team) *car.Car {
	cfg, _ := car.PresetConfig(car.Octane)
	return car.New(id, team, cfg)
}

func TestCarBallTouchOncePerTick(t *testing.T) {
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	b := ball.New(mutCfg)
	c := newTestCar(1, mutator.Blue)
	cars := map[uint32]*car.Car{1: c}

	tracker := &Tracker{}
	tracker.Add(Record{KindA: PartyCar, IndexA: 1, KindB: PartyBall})
	tracker.Add(Record{KindA: PartyCar, IndexA: 1, KindB: PartyBall})

	events := Dispatch(tracker, cars, b, nil, mutCfg, 10, mutator.Soccar)
	touches := 0
	for _, e := range events {
		if e.Kind == EventBallTouch {
			touches++
		}
	}
	if touches != 1 {
		t.Fatalf("expected exactly one ball-touch event for two records same tick, got %d", touches)
	}
	if !c.State.BallHitInfo.IsValid || c.State.BallHitInfo.TickCountWhenHit != 10 {
		t.Fatalf("expected ballHitInfo recorded for tick 10, got %+v", c.State.BallHitInfo)
	}
}

func TestCarCarCooldownSuppressesRepeatBump(t *testing.T) {
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	c1 := newTestCar(1, mutator.Blue)
	c2 := newTestCar(2, mutator.Orange)
	c1.State.CarContact = car.CarContact{OtherCarID: 2, CooldownTimer: 0.5}

	events := dispatchCarCar(c1, c2, mutCfg)
	if events != nil {
		t.Fatalf("expected no bump event while cooldown active, got %+v", events)
	}
}

func TestCarCarDemoAboveSpeedThresholdAcrossTeams(t *testing.T) {
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	c1 := newTestCar(1, mutator.Blue)
	c2 := newTestCar(2, mutator.Orange)
	c1.State.Vel = mathutil.Vec{X: car.DemoMinSpeed + 100}

	events := dispatchCarCar(c1, c2, mutCfg)
	foundDemo := false
	for _, e := range events {
		if e.Kind == EventCarDemo {
			foundDemo = true
		}
	}
	if !foundDemo {
		t.Fatalf("expected a demo event above the speed threshold across teams, got %+v", events)
	}
	if !c2.State.IsDemoed {
		t.Fatalf("expected the slower car to be demoed")
	}
}

func TestCarCarNoDemoWithinSameTeamUnlessEnabled(t *testing.T) {
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	mutCfg.EnableTeamDemos = false
	c1 := newTestCar(1, mutator.Blue)
	c2 := newTestCar(2, mutator.Blue)
	c1.State.Vel = mathutil.Vec{X: car.DemoMinSpeed + 100}

	events := dispatchCarCar(c1, c2, mutCfg)
	for _, e := range events {
		if e.Kind == EventCarDemo {
			t.Fatalf("did not expect a demo event between same-team cars with team demos disabled")
		}
	}
}

func TestPadPickupInactivePadIgnoredSilently(t *testing.T) {
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	c := newTestCar(1, mutator.Blue)
	p := boost.New(mathutil.Vec{}, true)
	p.State.IsActive = false

	_, fired := dispatchPadPickup(c, p, mutCfg)
	if fired {
		t.Fatalf("expected no event for an inactive pad")
	}
}

func TestPadPickupGrantsBoostAndStartsCooldown(t *testing.T) {
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	c := newTestCar(1, mutator.Blue)
	c.State.Boost = 50
	p := boost.New(mathutil.Vec{}, true)

	ev, fired := dispatchPadPickup(c, p, mutCfg)
	if !fired || ev.Kind != EventBoostPickup {
		t.Fatalf("expected a boost pickup event")
	}
	if c.State.Boost != 100 {
		t.Fatalf("expected big pad to fill boost to 100, got %v", c.State.Boost)
	}
	if p.State.IsActive {
		t.Fatalf("expected pad deactivated after pickup")
	}
}
