package mutator

import "testing"

func TestDefaultConfigPerMode(t *testing.T) {
	modes := []GameMode{Soccar, Hoops, Heatseeker, Snowday, Dropshot, TheVoid, TheVoidWithGround}
	for _, m := range modes {
		cfg := DefaultConfig(m)
		if cfg.BallMaxSpeed <= 0 {
			t.Fatalf("mode %s: expected positive ball max speed, got %v", m, cfg.BallMaxSpeed)
		}
		if cfg.Gravity >= 0 {
			t.Fatalf("mode %s: expected negative gravity, got %v", m, cfg.Gravity)
		}
	}
}

func TestTheVoidDisablesDemos(t *testing.T) {
	cfg := DefaultConfig(TheVoid)
	if cfg.DemoMode != DemoDisabled {
		t.Fatalf("expected THE_VOID to disable demos, got %v", cfg.DemoMode)
	}
}

func TestUnknownModeFallsBackToSoccar(t *testing.T) {
	got := DefaultConfig(GameMode(99))
	want := DefaultConfig(Soccar)
	if got != want {
		t.Fatalf("expected fallback to soccar defaults, got %+v want %+v", got, want)
	}
}

func TestGameModeGatesGoalsAndPads(t *testing.T) {
	if Soccar.HasGoals() != true || Soccar.HasBoostPads() != true {
		t.Fatalf("soccar should have goals and pads")
	}
	if TheVoid.HasGoals() || TheVoid.HasBoostPads() {
		t.Fatalf("THE_VOID should have neither goals nor pads")
	}
	if TheVoid.HasGroundPlane() {
		t.Fatalf("THE_VOID should have no ground plane")
	}
	if !TheVoidWithGround.HasGroundPlane() {
		t.Fatalf("THE_VOID_WITH_GROUND should have a ground plane")
	}
}
