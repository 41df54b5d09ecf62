// Package wire implements the little-endian, fixed-layout binary codec
// spec.md §6 assigns to two external collaborators: the UDP visualizer
// protocol and on-disk snapshot persistence, which spec.md states share
// "the same byte layout". Every float is IEEE-754 single precision.
package wire

import "rocketsim/internal/mathutil"

// PacketType tags the first byte of every UDP datagram on the visualizer
// ports.
type PacketType uint8

const (
	PacketQuit       PacketType = 0
	PacketGameState  PacketType = 1
	PacketConnection PacketType = 2
	PacketPaused     PacketType = 3
	PacketSpeed      PacketType = 4
	PacketRender     PacketType = 5
)

func (p PacketType) String() string {
	switch p {
	case PacketQuit:
		return "quit"
	case PacketGameState:
		return "game_state"
	case PacketConnection:
		return "connection"
	case PacketPaused:
		return "paused"
	case PacketSpeed:
		return "speed"
	case PacketRender:
		return "render"
	default:
		return "unknown"
	}
}

// VisualizerPort and SimulatorPort are the two fixed UDP ports spec.md §6
// assigns to the visualizer protocol.
const (
	VisualizerPort = 45243
	SimulatorPort  = 34254
)

// BallStateInfo is the wire encoding of one ball: pos (12B), rotMat (36B,
// forward/right/up columns), vel (12B), angVel (12B), then the
// heatseeker target triple (12B) — 84 bytes total, field order and sizes
// exactly as spec.md §6 enumerates.
type BallStateInfo struct {
	Pos              mathutil.Vec
	RotMat           mathutil.RotMat
	Vel              mathutil.Vec
	AngVel           mathutil.Vec
	HeatseekerTarget mathutil.Vec
}

// BoostPadInfo is the wire encoding of one boost pad: u8 isActive, f32
// cooldown, Vec pos (12B), u8 isBig.
type BoostPadInfo struct {
	IsActive bool
	Cooldown float32
	Pos      mathutil.Vec
	IsBig    bool
}

// CarStateWire is the wire encoding of the subset of CarState the
// visualizer needs to render a car: pose, velocities, and the handful of
// booleans/scalars a client-side renderer would otherwise have to guess.
// spec.md §6 names "CarState serialization" without enumerating fields
// (only BallStateInfo and BoostPadInfo get an explicit byte breakdown);
// this concrete field order is this module's resolution, recorded in
// DESIGN.md.
type CarStateWire struct {
	Pos        mathutil.Vec
	Vel        mathutil.Vec
	AngVel     mathutil.Vec
	RotMat     mathutil.RotMat
	Boost      float32
	IsOnGround bool
	IsDemoed   bool
	IsSupersonic bool
}

// CarConfigWire is the wire encoding of the subset of CarConfig the
// visualizer needs to draw the correct hitbox: size and position offset.
// Same Open-Question resolution as CarStateWire.
type CarConfigWire struct {
	HitboxSize      mathutil.Vec
	HitboxPosOffset mathutil.Vec
}

// CarInfo is the wire encoding of one car: u32 id, u8 team, then its
// CarStateWire and CarConfigWire.
type CarInfo struct {
	ID     uint32
	Team   uint8
	State  CarStateWire
	Config CarConfigWire
}

// GameStatePacket is the full payload of a PacketGameState datagram: u64
// tickCount, f32 tickRate, u8 gameMode, u32 numPads, u32 numCars,
// BallStateInfo, numPads BoostPadInfo, numCars CarInfo.
type GameStatePacket struct {
	TickCount uint64
	TickRate  float32
	GameMode  uint8
	Ball      BallStateInfo
	Pads      []BoostPadInfo
	Cars      []CarInfo
}
