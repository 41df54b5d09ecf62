// Package boost implements the boost pad grid: immutable position/size
// configuration plus the mutable active/cooldown state each pad carries.
package boost

import (
	"sort"

	"rocketsim/internal/mathutil"
)

// Config is the immutable geometry of one boost pad.
type Config struct {
	Pos   mathutil.Vec
	IsBig bool
}

// State is the mutable per-tick state of one boost pad.
type State struct {
	IsActive bool
	Cooldown float32
}

// Pad couples a pad's immutable Config with its mutable State.
type Pad struct {
	Config Config
	State  State
}

// New constructs an active pad at the given position.
func New(pos mathutil.Vec, isBig bool) *Pad {
	return &Pad{Config: Config{Pos: pos, IsBig: isBig}, State: State{IsActive: true}}
}

// PickupRadius and PickupHeight depend on whether the pad is big, matching
// the "pickup radius/height depends on isBig" data-model note.
const (
	SmallPickupRadius float32 = 144
	BigPickupRadius   float32 = 208
	SmallPickupHeight float32 = 165
	BigPickupHeight   float32 = 168
)

// PickupRadius returns this pad's pickup radius.
func (p *Pad) PickupRadius() float32 {
	if p.Config.IsBig {
		return BigPickupRadius
	}
	return SmallPickupRadius
}

// PickupHeight returns this pad's pickup height.
func (p *Pad) PickupHeight() float32 {
	if p.Config.IsBig {
		return BigPickupHeight
	}
	return SmallPickupHeight
}

// WithinPickupVolume reports whether carPos is within this pad's pickup
// cylinder.
func (p *Pad) WithinPickupVolume(carPos mathutil.Vec) bool {
	dx := carPos.X - p.Config.Pos.X
	dy := carPos.Y - p.Config.Pos.Y
	radial := dx*dx + dy*dy
	r := p.PickupRadius()
	if radial > r*r {
		return false
	}
	dz := carPos.Z - p.Config.Pos.Z
	if dz < 0 {
		dz = -dz
	}
	return dz <= p.PickupHeight()
}

// Regen runs the per-tick cooldown decrement: when the cooldown reaches
// zero the pad reactivates.
func (p *Pad) Regen(tickTime float32) {
	if p.State.Cooldown <= 0 {
		return
	}
	p.State.Cooldown -= tickTime
	if p.State.Cooldown <= 0 {
		p.State.Cooldown = 0
		p.State.IsActive = true
	}
}

// Pickup deactivates the pad and starts its cooldown, returning the boost
// amount the picking-up car should receive.
func (p *Pad) Pickup(cooldownBig, cooldownSmall float32) float32 {
	p.State.IsActive = false
	if p.Config.IsBig {
		p.State.Cooldown = cooldownBig
		return 100
	}
	p.State.Cooldown = cooldownSmall
	return 12
}

// SortPads orders pads lexicographically by (y, x), the canonical order
// GetBoostPads must return.
func SortPads(pads []*Pad) {
	sort.Slice(pads, func(i, j int) bool {
		a, b := pads[i].Config.Pos, pads[j].Config.Pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}
