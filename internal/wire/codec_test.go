package wire

import (
	"bytes"
	"testing"

	"rocketsim/internal/mathutil"
)

func TestGameStateRoundTrip(t *testing.T) {
	pkt := GameStatePacket{
		TickCount: 1234,
		TickRate:  120,
		GameMode:  0,
		Ball: BallStateInfo{
			Pos:    mathutil.Vec{X: 1, Y: 2, Z: 3},
			RotMat: mathutil.Identity(),
			Vel:    mathutil.Vec{X: 4, Y: 5, Z: 6},
			AngVel: mathutil.Vec{X: 7, Y: 8, Z: 9},
		},
		Pads: []BoostPadInfo{
			{IsActive: true, Cooldown: 0, Pos: mathutil.Vec{X: 10}, IsBig: true},
			{IsActive: false, Cooldown: 3.5, Pos: mathutil.Vec{X: -10}, IsBig: false},
		},
		Cars: []CarInfo{
			{
				ID:   1,
				Team: 0,
				State: CarStateWire{
					Pos:    mathutil.Vec{Z: 17},
					RotMat: mathutil.Identity(),
					Boost:  33.5,
				},
				Config: CarConfigWire{HitboxSize: mathutil.Vec{X: 120}},
			},
		},
	}

	var buf bytes.Buffer
	if err := EncodeGameState(&buf, pkt); err != nil {
		t.Fatalf("EncodeGameState: %v", err)
	}
	got, err := DecodeGameState(&buf)
	if err != nil {
		t.Fatalf("DecodeGameState: %v", err)
	}

	if got.TickCount != pkt.TickCount || got.TickRate != pkt.TickRate {
		t.Fatalf("header mismatch: %+v", got)
	}
	if got.Ball.Pos != pkt.Ball.Pos || got.Ball.Vel != pkt.Ball.Vel {
		t.Fatalf("ball mismatch: %+v", got.Ball)
	}
	if len(got.Pads) != 2 || got.Pads[1].Cooldown != 3.5 {
		t.Fatalf("pad mismatch: %+v", got.Pads)
	}
	if len(got.Cars) != 1 || got.Cars[0].State.Boost != 33.5 {
		t.Fatalf("car mismatch: %+v", got.Cars)
	}
}

func TestPacketTypeByteRoundTrip(t *testing.T) {
	for _, pt := range []PacketType{PacketQuit, PacketGameState, PacketConnection, PacketPaused, PacketSpeed, PacketRender} {
		var buf bytes.Buffer
		if err := EncodePacketType(&buf, pt); err != nil {
			t.Fatalf("encode %v: %v", pt, err)
		}
		got, err := DecodePacketType(&buf)
		if err != nil {
			t.Fatalf("decode %v: %v", pt, err)
		}
		if got != pt {
			t.Fatalf("round trip mismatch: want %v got %v", pt, got)
		}
	}
}

func TestSpeedAndPausedPayloads(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeSpeed(&buf, 2.5); err != nil {
		t.Fatalf("EncodeSpeed: %v", err)
	}
	speed, err := DecodeSpeed(&buf)
	if err != nil || speed != 2.5 {
		t.Fatalf("speed round trip failed: %v %v", speed, err)
	}

	buf.Reset()
	if err := EncodePaused(&buf, true); err != nil {
		t.Fatalf("EncodePaused: %v", err)
	}
	paused, err := DecodePaused(&buf)
	if err != nil || !paused {
		t.Fatalf("paused round trip failed: %v %v", paused, err)
	}
}

func TestCompressorsRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("rocketsim-wire-payload"), 64)
	for _, name := range []string{"none", "gzip", "snappy", "zstd"} {
		c, err := NewCompressor(name)
		if err != nil {
			t.Fatalf("NewCompressor(%q): %v", name, err)
		}
		compressed, err := c.Compress(payload)
		if err != nil {
			t.Fatalf("%s Compress: %v", name, err)
		}
		out, err := c.Decompress(compressed)
		if err != nil {
			t.Fatalf("%s Decompress: %v", name, err)
		}
		if !bytes.Equal(out, payload) {
			t.Fatalf("%s round trip mismatch", name)
		}
	}
}
