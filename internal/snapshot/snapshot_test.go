package snapshot

import (
	"testing"

	"rocketsim/internal/car"
	"rocketsim/internal/mathutil"
	"rocketsim/internal/mutator"
	"rocketsim/internal/simulation"
)

func TestExportBallRowLayout(t *testing.T) {
	a := simulation.NewArena(mutator.Soccar, 120, 1)
	a.Ball().State.Pos = mathutil.Vec{X: 100, Y: 200, Z: 500}
	a.Ball().State.Vel = mathutil.Vec{X: 10, Y: 20, Z: 30}

	state := Export(a, false)
	if len(state.Ball) != BallRowFloats {
		t.Fatalf("expected %d ball floats, got %d", BallRowFloats, len(state.Ball))
	}
	if state.Ball[0] != 100 || state.Ball[1] != 200 || state.Ball[2] != 500 {
		t.Fatalf("unexpected ball pos row: %v", state.Ball[:3])
	}
	if state.Ball[3] != 10 || state.Ball[4] != 20 || state.Ball[5] != 30 {
		t.Fatalf("unexpected ball vel row: %v", state.Ball[3:6])
	}
}

func TestExportInvertedBallView(t *testing.T) {
	a := simulation.NewArena(mutator.Soccar, 120, 1)
	a.Ball().State.Pos = mathutil.Vec{X: 100, Y: 200, Z: 500}
	a.Ball().State.Vel = mathutil.Vec{X: 10, Y: 20, Z: 30}

	state := Export(a, true)
	if len(state.Ball) != BallRowFloats*2 {
		t.Fatalf("expected inverted ball row to be %d floats, got %d", BallRowFloats*2, len(state.Ball))
	}
	straight := state.Ball[:BallRowFloats]
	inverted := state.Ball[BallRowFloats:]

	if straight[0] != 100 || straight[1] != 200 || straight[2] != 500 {
		t.Fatalf("straight row pos mismatch: %v", straight[:3])
	}
	if inverted[0] != -100 || inverted[1] != -200 || inverted[2] != 500 {
		t.Fatalf("inverted row pos mismatch: %v", inverted[:3])
	}
	// z-vel must match between the two views.
	if straight[5] != inverted[5] {
		t.Fatalf("z-vel mismatch between views: %v vs %v", straight[5], inverted[5])
	}
}

func TestInversionLawRoundTrips(t *testing.T) {
	row := make([]float32, CarRowFloats)
	for i := range row {
		row[i] = float32(i) + 0.5
	}
	once := Invert(row)
	twice := Invert(once)
	for i := range row {
		if row[i] != twice[i] {
			t.Fatalf("invert(invert(row)) mismatch at %d: %v != %v", i, row[i], twice[i])
		}
	}
	// Non-vec trailer (scalars/booleans) must be untouched by a single invert.
	for i := BallRowFloats; i < CarRowFloats; i++ {
		if row[i] != once[i] {
			t.Fatalf("scalar trailer changed by Invert at %d: %v != %v", i, row[i], once[i])
		}
	}
}

func TestCarPlacementRow(t *testing.T) {
	cfg, err := car.PresetConfig(car.Octane)
	if err != nil {
		t.Fatalf("PresetConfig: %v", err)
	}
	a := simulation.NewArena(mutator.Soccar, 120, 1)
	c := a.AddCar(mutator.Blue, cfg)
	c.State.Pos = mathutil.Vec{Z: 17}
	c.State.IsOnGround = true
	c.State.WheelsWithContact = [4]bool{true, true, true, true}

	state := Export(a, false)
	if len(state.CarIDs) != 1 || state.CarIDs[0] != c.ID {
		t.Fatalf("expected single car id %d, got %v", c.ID, state.CarIDs)
	}
	row := state.Cars[:CarRowFloats]
	if row[2] != 17 {
		t.Fatalf("expected pos.z == 17, got %v", row[2])
	}
	if row[19] != 1 {
		t.Fatalf("expected isOnGround flag set, got %v", row[19])
	}
	if row[25] != 0 {
		t.Fatalf("expected ballTouchedSinceLastSnapshot unset, got %v", row[25])
	}
}

func TestExportMarksLastSnapshotTick(t *testing.T) {
	a := simulation.NewArena(mutator.Soccar, 120, 1)
	if err := a.Step(5); err != nil {
		t.Fatalf("Step: %v", err)
	}
	Export(a, false)
	if got := a.LastSnapshotTick(); got != a.TickCount() {
		t.Fatalf("expected lastSnapshotTick == tickCount (%d), got %d", a.TickCount(), got)
	}
}

func TestPadRowReflectsActiveState(t *testing.T) {
	a := simulation.NewArena(mutator.Soccar, 120, 1)
	if len(a.Pads()) == 0 {
		t.Fatalf("expected soccar arena to have boost pads")
	}
	a.Pads()[0].State.IsActive = false

	state := Export(a, false)
	if state.Pads[0] != 0 {
		t.Fatalf("expected inactive pad row to be 0, got %v", state.Pads[0])
	}
	if len(state.Pads) != len(a.Pads()) {
		t.Fatalf("expected %d pad rows, got %d", len(a.Pads()), len(state.Pads))
	}
}
