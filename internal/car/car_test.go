package car

import (
	"testing"

	"rocketsim/internal/mutator"
)

func groundedCar() *Car {
	cfg, _ := PresetConfig(Octane)
	c := New(1, mutator.Blue, cfg)
	c.State.WheelsWithContact = [4]bool{true, true, true, true}
	c.State.IsOnGround = true
	return c
}

func TestJumpEdgeTriggerOnly(t *testing.T) {
	c := groundedCar()
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	tickTime := float32(1.0 / 120.0)

	c.Controls.Jump = true
	c.PreTickUpdate(mutCfg, tickTime)
	if !c.State.HasJumped {
		t.Fatalf("expected HasJumped after jump-edge tick")
	}
	if c.ControlState != Jumping {
		t.Fatalf("expected Jumping state, got %v", c.ControlState)
	}

	// Holding jump should not trigger a second jump. Clear the wheel
	// contacts the car left behind so ground-sense does not immediately
	// revert it to Grounded (a real engine would clear these via physics
	// query once the car leaves the ground).
	c.State.WheelsWithContact = [4]bool{}
	jumpTimeBefore := c.State.JumpTime
	c.PreTickUpdate(mutCfg, tickTime)
	if c.State.JumpTime <= jumpTimeBefore {
		t.Fatalf("expected jump hold to keep advancing jump time")
	}
	if c.State.HasDoubleJumped {
		t.Fatalf("holding jump must not record a double jump")
	}
}

func TestDoubleJumpBelowDeadzone(t *testing.T) {
	c := groundedCar()
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	tickTime := float32(1.0 / 120.0)

	c.Controls.Jump = true
	c.PreTickUpdate(mutCfg, tickTime)

	c.State.WheelsWithContact = [4]bool{}
	c.Controls.Jump = false
	c.PreTickUpdate(mutCfg, tickTime)

	c.Controls.Jump = true
	c.Controls.Pitch = 0
	c.Controls.Yaw = 0
	c.Controls.Roll = 0
	c.PreTickUpdate(mutCfg, tickTime)

	if !c.State.HasDoubleJumped {
		t.Fatalf("expected a double jump below the dodge deadzone")
	}
	if c.State.IsFlipping {
		t.Fatalf("did not expect a flip below the dodge deadzone")
	}
}

func TestFlipAboveDeadzone(t *testing.T) {
	c := groundedCar()
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	tickTime := float32(1.0 / 120.0)

	c.Controls.Jump = true
	c.PreTickUpdate(mutCfg, tickTime)

	c.State.WheelsWithContact = [4]bool{}
	c.Controls.Jump = false
	c.PreTickUpdate(mutCfg, tickTime)

	c.Controls.Jump = true
	c.Controls.Pitch = 1
	c.PreTickUpdate(mutCfg, tickTime)

	if !c.State.IsFlipping {
		t.Fatalf("expected a flip above the dodge deadzone")
	}
	if c.State.HasDoubleJumped {
		t.Fatalf("did not expect a double jump when flipping")
	}
}

func TestSupersonicEntryAndExit(t *testing.T) {
	c := groundedCar()
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	tickTime := float32(1.0 / 120.0)

	c.State.Vel.X = 2300
	c.PostTickUpdate(mutCfg, tickTime)
	if !c.State.IsSupersonic {
		t.Fatalf("expected supersonic entry at 2300 speed")
	}

	c.State.Vel.X = 100
	for i := 0; i < int(SupersonicMaintainTime/tickTime)+2; i++ {
		c.PostTickUpdate(mutCfg, tickTime)
	}
	if c.State.IsSupersonic {
		t.Fatalf("expected supersonic exit after maintain time below maintain speed")
	}
}

func TestDemoteAndRespawn(t *testing.T) {
	c := groundedCar()
	mutCfg := mutator.DefaultConfig(mutator.Soccar)
	tickTime := float32(1.0 / 120.0)

	c.Demolish(0.1)
	if c.ControlState != Demoed {
		t.Fatalf("expected Demoed state")
	}
	for i := 0; i < 20; i++ {
		c.PreTickUpdate(mutCfg, tickTime)
	}
	if c.ControlState != Grounded {
		t.Fatalf("expected respawn to Grounded after timer expiry, got %v", c.ControlState)
	}
	if c.State.IsDemoed {
		t.Fatalf("expected IsDemoed cleared after respawn")
	}
}

func TestClampFixBoundsControls(t *testing.T) {
	ctl := Controls{Throttle: 5, Steer: -5, Pitch: 2, Yaw: -2, Roll: 1.5}
	ctl.ClampFix()
	if ctl.Throttle != 1 || ctl.Steer != -1 || ctl.Pitch != 1 || ctl.Yaw != -1 || ctl.Roll != 1 {
		t.Fatalf("clamp fix did not bound all fields: %+v", ctl)
	}
}
