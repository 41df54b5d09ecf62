package wire

import (
	"encoding/binary"
	"fmt"
	"io"

	"rocketsim/internal/mathutil"
)

// EncodePacketType writes the single packet-type byte that prefixes every
// datagram and persisted record.
func EncodePacketType(w io.Writer, t PacketType) error {
	_, err := w.Write([]byte{byte(t)})
	return err
}

// DecodePacketType reads the leading packet-type byte.
func DecodePacketType(r io.Reader) (PacketType, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return PacketType(b[0]), nil
}

// EncodeSpeed writes a PacketSpeed payload: a single f32.
func EncodeSpeed(w io.Writer, speed float32) error {
	return binary.Write(w, binary.LittleEndian, speed)
}

// DecodeSpeed reads a PacketSpeed payload.
func DecodeSpeed(r io.Reader) (float32, error) {
	var speed float32
	err := binary.Read(r, binary.LittleEndian, &speed)
	return speed, err
}

// EncodePaused writes a PacketPaused payload: a single byte, nonzero for paused.
func EncodePaused(w io.Writer, paused bool) error {
	var b byte
	if paused {
		b = 1
	}
	_, err := w.Write([]byte{b})
	return err
}

// DecodePaused reads a PacketPaused payload.
func DecodePaused(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func writeVec(w io.Writer, v mathutil.Vec) error {
	if err := binary.Write(w, binary.LittleEndian, v.X); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, v.Y); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, v.Z)
}

func readVec(r io.Reader) (mathutil.Vec, error) {
	var v mathutil.Vec
	if err := binary.Read(r, binary.LittleEndian, &v.X); err != nil {
		return v, err
	}
	if err := binary.Read(r, binary.LittleEndian, &v.Y); err != nil {
		return v, err
	}
	if err := binary.Read(r, binary.LittleEndian, &v.Z); err != nil {
		return v, err
	}
	return v, nil
}

func writeRotMat(w io.Writer, m mathutil.RotMat) error {
	for _, v := range [3]mathutil.Vec{m.Forward, m.Right, m.Up} {
		if err := writeVec(w, v); err != nil {
			return err
		}
	}
	return nil
}

func readRotMat(r io.Reader) (mathutil.RotMat, error) {
	var m mathutil.RotMat
	var err error
	if m.Forward, err = readVec(r); err != nil {
		return m, err
	}
	if m.Right, err = readVec(r); err != nil {
		return m, err
	}
	if m.Up, err = readVec(r); err != nil {
		return m, err
	}
	return m, nil
}

func writeBool(w io.Writer, b bool) error {
	var v byte
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})
	return err
}

func readBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// EncodeBallStateInfo writes the 84-byte BallStateInfo wire record.
func EncodeBallStateInfo(w io.Writer, b BallStateInfo) error {
	if err := writeVec(w, b.Pos); err != nil {
		return err
	}
	if err := writeRotMat(w, b.RotMat); err != nil {
		return err
	}
	if err := writeVec(w, b.Vel); err != nil {
		return err
	}
	if err := writeVec(w, b.AngVel); err != nil {
		return err
	}
	return writeVec(w, b.HeatseekerTarget)
}

// DecodeBallStateInfo reads the 84-byte BallStateInfo wire record.
func DecodeBallStateInfo(r io.Reader) (BallStateInfo, error) {
	var b BallStateInfo
	var err error
	if b.Pos, err = readVec(r); err != nil {
		return b, err
	}
	if b.RotMat, err = readRotMat(r); err != nil {
		return b, err
	}
	if b.Vel, err = readVec(r); err != nil {
		return b, err
	}
	if b.AngVel, err = readVec(r); err != nil {
		return b, err
	}
	if b.HeatseekerTarget, err = readVec(r); err != nil {
		return b, err
	}
	return b, nil
}

// EncodeBoostPadInfo writes one BoostPadInfo record: u8 isActive, f32
// cooldown, Vec pos, u8 isBig.
func EncodeBoostPadInfo(w io.Writer, p BoostPadInfo) error {
	if err := writeBool(w, p.IsActive); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, p.Cooldown); err != nil {
		return err
	}
	if err := writeVec(w, p.Pos); err != nil {
		return err
	}
	return writeBool(w, p.IsBig)
}

// DecodeBoostPadInfo reads one BoostPadInfo record.
func DecodeBoostPadInfo(r io.Reader) (BoostPadInfo, error) {
	var p BoostPadInfo
	var err error
	if p.IsActive, err = readBool(r); err != nil {
		return p, err
	}
	if err = binary.Read(r, binary.LittleEndian, &p.Cooldown); err != nil {
		return p, err
	}
	if p.Pos, err = readVec(r); err != nil {
		return p, err
	}
	if p.IsBig, err = readBool(r); err != nil {
		return p, err
	}
	return p, nil
}

func writeCarStateWire(w io.Writer, s CarStateWire) error {
	if err := writeVec(w, s.Pos); err != nil {
		return err
	}
	if err := writeVec(w, s.Vel); err != nil {
		return err
	}
	if err := writeVec(w, s.AngVel); err != nil {
		return err
	}
	if err := writeRotMat(w, s.RotMat); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, s.Boost); err != nil {
		return err
	}
	if err := writeBool(w, s.IsOnGround); err != nil {
		return err
	}
	if err := writeBool(w, s.IsDemoed); err != nil {
		return err
	}
	return writeBool(w, s.IsSupersonic)
}

func readCarStateWire(r io.Reader) (CarStateWire, error) {
	var s CarStateWire
	var err error
	if s.Pos, err = readVec(r); err != nil {
		return s, err
	}
	if s.Vel, err = readVec(r); err != nil {
		return s, err
	}
	if s.AngVel, err = readVec(r); err != nil {
		return s, err
	}
	if s.RotMat, err = readRotMat(r); err != nil {
		return s, err
	}
	if err = binary.Read(r, binary.LittleEndian, &s.Boost); err != nil {
		return s, err
	}
	if s.IsOnGround, err = readBool(r); err != nil {
		return s, err
	}
	if s.IsDemoed, err = readBool(r); err != nil {
		return s, err
	}
	if s.IsSupersonic, err = readBool(r); err != nil {
		return s, err
	}
	return s, nil
}

func writeCarConfigWire(w io.Writer, c CarConfigWire) error {
	if err := writeVec(w, c.HitboxSize); err != nil {
		return err
	}
	return writeVec(w, c.HitboxPosOffset)
}

func readCarConfigWire(r io.Reader) (CarConfigWire, error) {
	var c CarConfigWire
	var err error
	if c.HitboxSize, err = readVec(r); err != nil {
		return c, err
	}
	if c.HitboxPosOffset, err = readVec(r); err != nil {
		return c, err
	}
	return c, nil
}

// EncodeCarInfo writes one CarInfo record: u32 id, u8 team, CarStateWire,
// CarConfigWire.
func EncodeCarInfo(w io.Writer, c CarInfo) error {
	if err := binary.Write(w, binary.LittleEndian, c.ID); err != nil {
		return err
	}
	if _, err := w.Write([]byte{c.Team}); err != nil {
		return err
	}
	if err := writeCarStateWire(w, c.State); err != nil {
		return err
	}
	return writeCarConfigWire(w, c.Config)
}

// DecodeCarInfo reads one CarInfo record.
func DecodeCarInfo(r io.Reader) (CarInfo, error) {
	var c CarInfo
	if err := binary.Read(r, binary.LittleEndian, &c.ID); err != nil {
		return c, err
	}
	var teamByte [1]byte
	if _, err := io.ReadFull(r, teamByte[:]); err != nil {
		return c, err
	}
	c.Team = teamByte[0]
	var err error
	if c.State, err = readCarStateWire(r); err != nil {
		return c, err
	}
	if c.Config, err = readCarConfigWire(r); err != nil {
		return c, err
	}
	return c, nil
}

// EncodeGameState writes a full GameState payload: u64 tickCount, f32
// tickRate, u8 gameMode, u32 numPads, u32 numCars, BallStateInfo, then
// numPads BoostPadInfo records and numCars CarInfo records, exactly as
// spec.md §6 enumerates.
func EncodeGameState(w io.Writer, pkt GameStatePacket) error {
	if err := binary.Write(w, binary.LittleEndian, pkt.TickCount); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, pkt.TickRate); err != nil {
		return err
	}
	if _, err := w.Write([]byte{pkt.GameMode}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(pkt.Pads))); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(pkt.Cars))); err != nil {
		return err
	}
	if err := EncodeBallStateInfo(w, pkt.Ball); err != nil {
		return err
	}
	for _, p := range pkt.Pads {
		if err := EncodeBoostPadInfo(w, p); err != nil {
			return err
		}
	}
	for _, c := range pkt.Cars {
		if err := EncodeCarInfo(w, c); err != nil {
			return err
		}
	}
	return nil
}

// maxDecodeCount bounds numPads/numCars on decode so a corrupt or
// malicious length prefix cannot force an unbounded allocation.
const maxDecodeCount = 1 << 20

// DecodeGameState reads a full GameState payload.
func DecodeGameState(r io.Reader) (GameStatePacket, error) {
	var pkt GameStatePacket
	if err := binary.Read(r, binary.LittleEndian, &pkt.TickCount); err != nil {
		return pkt, err
	}
	if err := binary.Read(r, binary.LittleEndian, &pkt.TickRate); err != nil {
		return pkt, err
	}
	var modeByte [1]byte
	if _, err := io.ReadFull(r, modeByte[:]); err != nil {
		return pkt, err
	}
	pkt.GameMode = modeByte[0]

	var numPads, numCars uint32
	if err := binary.Read(r, binary.LittleEndian, &numPads); err != nil {
		return pkt, err
	}
	if err := binary.Read(r, binary.LittleEndian, &numCars); err != nil {
		return pkt, err
	}
	if numPads > maxDecodeCount || numCars > maxDecodeCount {
		return pkt, fmt.Errorf("wire: implausible pad/car count %d/%d", numPads, numCars)
	}

	var err error
	if pkt.Ball, err = DecodeBallStateInfo(r); err != nil {
		return pkt, err
	}

	pkt.Pads = make([]BoostPadInfo, numPads)
	for i := range pkt.Pads {
		if pkt.Pads[i], err = DecodeBoostPadInfo(r); err != nil {
			return pkt, err
		}
	}

	pkt.Cars = make([]CarInfo, numCars)
	for i := range pkt.Cars {
		if pkt.Cars[i], err = DecodeCarInfo(r); err != nil {
			return pkt, err
		}
	}
	return pkt, nil
}
