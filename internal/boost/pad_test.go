package boost

import (
	"testing"

	"rocketsim/internal/mathutil"
)

func TestRegenReactivatesAtZero(t *testing.T) {
	p := New(mathutil.Vec{}, true)
	p.State.IsActive = false
	p.State.Cooldown = 0.02

	p.Regen(0.01)
	if p.State.IsActive {
		t.Fatalf("expected pad still inactive mid-cooldown")
	}
	p.Regen(0.02)
	if !p.State.IsActive {
		t.Fatalf("expected pad reactivated once cooldown reaches zero")
	}
}

func TestPickupSetsCooldownAndBoostAmount(t *testing.T) {
	big := New(mathutil.Vec{}, true)
	small := New(mathutil.Vec{}, false)

	if amt := big.Pickup(10, 4); amt != 100 || big.State.IsActive || big.State.Cooldown != 10 {
		t.Fatalf("big pad pickup mismatch: amt=%v active=%v cooldown=%v", amt, big.State.IsActive, big.State.Cooldown)
	}
	if amt := small.Pickup(10, 4); amt != 12 || small.State.IsActive || small.State.Cooldown != 4 {
		t.Fatalf("small pad pickup mismatch: amt=%v active=%v cooldown=%v", amt, small.State.IsActive, small.State.Cooldown)
	}
}

func TestSortPadsOrdersByYThenX(t *testing.T) {
	pads := []*Pad{
		New(mathutil.Vec{X: 5, Y: 1}, false),
		New(mathutil.Vec{X: 1, Y: 1}, false),
		New(mathutil.Vec{X: 0, Y: 0}, false),
	}
	SortPads(pads)
	if pads[0].Config.Pos.Y != 0 {
		t.Fatalf("expected lowest y first")
	}
	if pads[1].Config.Pos.X != 1 || pads[2].Config.Pos.X != 5 {
		t.Fatalf("expected ties broken by ascending x, got %+v", pads)
	}
}

func TestWithinPickupVolume(t *testing.T) {
	p := New(mathutil.Vec{X: 0, Y: 0, Z: 0}, false)
	if !p.WithinPickupVolume(mathutil.Vec{X: 10, Y: 10, Z: 0}) {
		t.Fatalf("expected car near origin to be within small pad pickup volume")
	}
	if p.WithinPickupVolume(mathutil.Vec{X: 1000, Y: 1000, Z: 0}) {
		t.Fatalf("expected distant car outside pickup volume")
	}
}
