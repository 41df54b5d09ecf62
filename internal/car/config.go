package car

import (
	"rocketsim/internal/simerr"

	"rocketsim/internal/mathutil"
)

// WheelPair describes the shared geometry of the two wheels on one axle.
type WheelPair struct {
	WheelRadius           float32
	SuspensionRestLength  float32
	ConnectionPointOffset mathutil.Vec
}

// Config is the hitbox/geometry profile a Car is built from. Field names
// mirror the original engine's CarConfig.
type Config struct {
	HitboxSize      mathutil.Vec
	HitboxPosOffset mathutil.Vec
	FrontWheels     WheelPair
	BackWheels      WheelPair
	DodgeDeadzone   float32
}

// HitboxType selects one of the fixed preset Configs, matching the
// Python binding's positional hitbox_type argument.
type HitboxType int

const (
	Octane HitboxType = iota
	Dominus
	Plank
	Breakout
	Hybrid
	Merc
)

var presets = [...]Config{
	Octane: {
		HitboxSize:      mathutil.Vec{X: 120.507, Y: 86.6994, Z: 38.659},
		HitboxPosOffset:  mathutil.Vec{X: 13.87566, Y: 0, Z: 20.75499},
		FrontWheels:     WheelPair{WheelRadius: 12.50, SuspensionRestLength: 38.755, ConnectionPointOffset: mathutil.Vec{X: 51.25, Y: 25.90, Z: 20.755}},
		BackWheels:      WheelPair{WheelRadius: 15.00, SuspensionRestLength: 37.055, ConnectionPointOffset: mathutil.Vec{X: -33.75, Y: 29.50, Z: 20.755}},
		DodgeDeadzone:   0.5,
	},
	Dominus: {
		HitboxSize:      mathutil.Vec{X: 130.427, Y: 85.5602, Z: 33.989},
		HitboxPosOffset:  mathutil.Vec{X: 9.00000, Y: 0, Z: 15.75},
		FrontWheels:     WheelPair{WheelRadius: 12.50, SuspensionRestLength: 37.5, ConnectionPointOffset: mathutil.Vec{X: 54.81, Y: 26.68, Z: 18.76}},
		BackWheels:      WheelPair{WheelRadius: 15.00, SuspensionRestLength: 37.5, ConnectionPointOffset: mathutil.Vec{X: -34.44, Y: 29.67, Z: 18.76}},
		DodgeDeadzone:   0.5,
	},
	Plank: {
		HitboxSize:      mathutil.Vec{X: 128.82, Y: 84.67, Z: 29.39},
		HitboxPosOffset:  mathutil.Vec{X: 9.00000, Y: 0, Z: 12.09},
		FrontWheels:     WheelPair{WheelRadius: 12.00, SuspensionRestLength: 36.0, ConnectionPointOffset: mathutil.Vec{X: 56.47, Y: 22.46, Z: 15.91}},
		BackWheels:      WheelPair{WheelRadius: 14.00, SuspensionRestLength: 36.0, ConnectionPointOffset: mathutil.Vec{X: -35.95, Y: 27.80, Z: 15.91}},
		DodgeDeadzone:   0.5,
	},
	Breakout: {
		HitboxSize:      mathutil.Vec{X: 131.49, Y: 80.52, Z: 30.30},
		HitboxPosOffset:  mathutil.Vec{X: 12.50, Y: 0, Z: 11.75},
		FrontWheels:     WheelPair{WheelRadius: 13.50, SuspensionRestLength: 36.0, ConnectionPointOffset: mathutil.Vec{X: 58.49, Y: 25.03, Z: 16.04}},
		BackWheels:      WheelPair{WheelRadius: 15.50, SuspensionRestLength: 36.0, ConnectionPointOffset: mathutil.Vec{X: -35.70, Y: 29.85, Z: 16.04}},
		DodgeDeadzone:   0.5,
	},
	Hybrid: {
		HitboxSize:      mathutil.Vec{X: 127.02, Y: 83.28, Z: 34.05},
		HitboxPosOffset:  mathutil.Vec{X: 10.50, Y: 0, Z: 16.57},
		FrontWheels:     WheelPair{WheelRadius: 12.50, SuspensionRestLength: 37.0, ConnectionPointOffset: mathutil.Vec{X: 53.55, Y: 25.50, Z: 19.32}},
		BackWheels:      WheelPair{WheelRadius: 15.00, SuspensionRestLength: 37.0, ConnectionPointOffset: mathutil.Vec{X: -34.45, Y: 29.00, Z: 19.32}},
		DodgeDeadzone:   0.5,
	},
	Merc: {
		HitboxSize:      mathutil.Vec{X: 123.22, Y: 90.06, Z: 41.44},
		HitboxPosOffset:  mathutil.Vec{X: 11.85, Y: 0, Z: 21.95},
		FrontWheels:     WheelPair{WheelRadius: 12.50, SuspensionRestLength: 39.0, ConnectionPointOffset: mathutil.Vec{X: 51.58, Y: 27.10, Z: 21.84}},
		BackWheels:      WheelPair{WheelRadius: 15.00, SuspensionRestLength: 39.0, ConnectionPointOffset: mathutil.Vec{X: -34.00, Y: 30.10, Z: 21.84}},
		DodgeDeadzone:   0.5,
	},
}

// PresetConfig returns a copy of the fixed hitbox configuration for t, or an
// InvalidConfiguration error for an out-of-range hitbox type.
func PresetConfig(t HitboxType) (Config, error) {
	if t < Octane || t > Merc {
		return Config{}, simerr.Configurationf("unknown hitbox type %d", t)
	}
	return presets[t], nil
}
