package wire

import (
	"bufio"
	"bytes"
	"os"

	"rocketsim/internal/ball"
	"rocketsim/internal/boost"
	"rocketsim/internal/car"
	"rocketsim/internal/mutator"
	"rocketsim/internal/simulation"
)

// FromArena builds a GameStatePacket from a's current state, matching
// spec.md §6's "the same byte layout is used for on-disk snapshots" by
// reusing the exact UDP GameState encoding for persistence too.
func FromArena(a *simulation.Arena) GameStatePacket {
	cars := a.Cars()
	pads := a.Pads()

	pkt := GameStatePacket{
		TickCount: a.TickCount(),
		TickRate:  a.TickRate,
		GameMode:  uint8(a.Mode),
		Ball:      ballStateInfo(a.Ball(), a.Mode),
		Pads:      make([]BoostPadInfo, len(pads)),
		Cars:      make([]CarInfo, len(cars)),
	}
	for i, p := range pads {
		pkt.Pads[i] = boostPadInfo(p)
	}
	for i, c := range cars {
		pkt.Cars[i] = carInfo(c)
	}
	return pkt
}

func ballStateInfo(b *ball.Ball, mode mutator.GameMode) BallStateInfo {
	info := BallStateInfo{
		Pos:    b.State.Pos,
		RotMat: b.State.RotMat,
		Vel:    b.State.Vel,
		AngVel: b.State.AngVel,
	}
	if mode == mutator.Heatseeker {
		info.HeatseekerTarget.Y = b.State.HSInfo.YTargetDir * b.State.HSInfo.CurTargetSpeed
	}
	return info
}

func boostPadInfo(p *boost.Pad) BoostPadInfo {
	return BoostPadInfo{
		IsActive: p.State.IsActive,
		Cooldown: p.State.Cooldown,
		Pos:      p.Config.Pos,
		IsBig:    p.Config.IsBig,
	}
}

func carInfo(c *car.Car) CarInfo {
	return CarInfo{
		ID:   c.ID,
		Team: uint8(c.Team),
		State: CarStateWire{
			Pos:          c.State.Pos,
			Vel:          c.State.Vel,
			AngVel:       c.State.AngVel,
			RotMat:       c.State.RotMat,
			Boost:        c.State.Boost,
			IsOnGround:   c.State.IsOnGround,
			IsDemoed:     c.State.IsDemoed,
			IsSupersonic: c.State.IsSupersonic,
		},
		Config: CarConfigWire{
			HitboxSize:      c.Config.HitboxSize,
			HitboxPosOffset: c.Config.HitboxPosOffset,
		},
	}
}

// WriteSnapshotFile persists one GameStatePacket to path, optionally
// compressed with the given Compressor (pass a noop compressor, or
// NewCompressor("none"), for an uncompressed file).
func WriteSnapshotFile(path string, pkt GameStatePacket, compressor Compressor) error {
	var raw bytes.Buffer
	if err := EncodeGameState(&raw, pkt); err != nil {
		return err
	}
	payload := raw.Bytes()
	if compressor != nil {
		compressed, err := compressor.Compress(payload)
		if err != nil {
			return err
		}
		payload = compressed
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	if _, err := w.Write(payload); err != nil {
		return err
	}
	return w.Flush()
}

// ReadSnapshotFile decodes one GameStatePacket previously written by
// WriteSnapshotFile, using the matching Compressor.
func ReadSnapshotFile(path string, compressor Compressor) (GameStatePacket, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return GameStatePacket{}, err
	}
	if compressor != nil {
		decompressed, err := compressor.Decompress(raw)
		if err != nil {
			return GameStatePacket{}, err
		}
		raw = decompressed
	}
	return DecodeGameState(bytes.NewReader(raw))
}
