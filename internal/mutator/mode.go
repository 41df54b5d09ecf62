// Package mutator carries the per-game-mode scalar tuning tables
// (MutatorConfig) and the GameMode/Team/DemoMode enums the rest of the
// simulation dispatches on.
package mutator

// GameMode selects which arena ruleset and spawn/kickoff tables apply.
type GameMode uint8

const (
	Soccar GameMode = iota
	Hoops
	Heatseeker
	Snowday
	Dropshot
	TheVoid
	TheVoidWithGround
)

var gameModeStrs = [...]string{
	"soccar",
	"hoops",
	"heatseeker",
	"snowday",
	"dropshot",
	"void",
	"void_with_ground",
}

func (m GameMode) String() string {
	if int(m) < 0 || int(m) >= len(gameModeStrs) {
		return "unknown"
	}
	return gameModeStrs[m]
}

// ParseGameMode resolves a GameMode by its String() name, for config and
// CLI flag parsing. Returns an error for any name not in gameModeStrs.
func ParseGameMode(name string) (GameMode, error) {
	for i, s := range gameModeStrs {
		if s == name {
			return GameMode(i), nil
		}
	}
	return 0, errUnknownGameMode(name)
}

type errUnknownGameMode string

func (e errUnknownGameMode) Error() string {
	return "mutator: unknown game mode " + string(e)
}

// HasGoals reports whether the mode scores goals, gating the goal-score
// callback slot.
func (m GameMode) HasGoals() bool {
	switch m {
	case TheVoid, TheVoidWithGround:
		return false
	default:
		return true
	}
}

// HasBoostPads reports whether the mode spawns boost pads, gating the
// boost-pickup callback slot.
func (m GameMode) HasBoostPads() bool {
	switch m {
	case TheVoid, TheVoidWithGround:
		return false
	default:
		return true
	}
}

// HasGroundPlane reports whether the mode's arena has a ground mesh at all.
// THE_VOID has none; cars and the ball fall forever.
func (m GameMode) HasGroundPlane() bool {
	return m != TheVoid
}

// Team identifies which side of the field a car plays for.
type Team uint8

const (
	Blue Team = iota
	Orange
)

func (t Team) String() string {
	if t == Orange {
		return "orange"
	}
	return "blue"
}

// DemoMode governs when a car-car contact above the speed threshold demos
// the victim rather than just bumping it.
type DemoMode uint8

const (
	// DemoNormal demos only at high relative speed regardless of who was
	// boosting.
	DemoNormal DemoMode = iota
	// DemoOnContact demos on any contact from a supersonic car, even at
	// modest relative speed.
	DemoOnContact
	// DemoDisabled turns all car-car contacts into bumps, never demos.
	DemoDisabled
)

func (d DemoMode) String() string {
	switch d {
	case DemoOnContact:
		return "on_contact"
	case DemoDisabled:
		return "disabled"
	default:
		return "normal"
	}
}

// MarshalJSON renders the mode as its lowercase name so the embedded
// per-mode tuning tables stay human-readable.
func (d DemoMode) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the lowercase name produced by MarshalJSON.
func (d *DemoMode) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"on_contact"`:
		*d = DemoOnContact
	case `"disabled"`:
		*d = DemoDisabled
	default:
		*d = DemoNormal
	}
	return nil
}
