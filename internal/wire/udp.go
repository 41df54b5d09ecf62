package wire

import (
	"bytes"
	"fmt"
	"net"
)

// Conn wraps a UDP socket bound to one of the two fixed visualizer ports
// and sends/receives the packet-type-prefixed datagrams spec.md §6
// defines.
type Conn struct {
	udp *net.UDPConn
}

// DialVisualizer opens a UDP socket for sending datagrams to the
// visualizer's listening port.
func DialVisualizer(addr string) (*Conn, error) {
	raddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", addr, VisualizerPort))
	if err != nil {
		return nil, err
	}
	conn, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, err
	}
	return &Conn{udp: conn}, nil
}

// ListenSimulator opens a UDP socket bound to the simulator's fixed
// receive port, for a process that wants to receive visualizer
// datagrams (e.g. a standalone playback tool).
func ListenSimulator() (*Conn, error) {
	laddr, err := net.ResolveUDPAddr("udp", fmt.Sprintf(":%d", SimulatorPort))
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp", laddr)
	if err != nil {
		return nil, err
	}
	return &Conn{udp: conn}, nil
}

// Close releases the underlying socket.
func (c *Conn) Close() error { return c.udp.Close() }

// SendGameState encodes and sends one GameState datagram.
func (c *Conn) SendGameState(pkt GameStatePacket) error {
	var buf bytes.Buffer
	if err := EncodePacketType(&buf, PacketGameState); err != nil {
		return err
	}
	if err := EncodeGameState(&buf, pkt); err != nil {
		return err
	}
	_, err := c.udp.Write(buf.Bytes())
	return err
}

// SendSpeed encodes and sends one Speed datagram.
func (c *Conn) SendSpeed(speed float32) error {
	var buf bytes.Buffer
	if err := EncodePacketType(&buf, PacketSpeed); err != nil {
		return err
	}
	if err := EncodeSpeed(&buf, speed); err != nil {
		return err
	}
	_, err := c.udp.Write(buf.Bytes())
	return err
}

// SendPaused encodes and sends one Paused datagram.
func (c *Conn) SendPaused(paused bool) error {
	var buf bytes.Buffer
	if err := EncodePacketType(&buf, PacketPaused); err != nil {
		return err
	}
	if err := EncodePaused(&buf, paused); err != nil {
		return err
	}
	_, err := c.udp.Write(buf.Bytes())
	return err
}

// SendQuit sends a bare Quit datagram.
func (c *Conn) SendQuit() error {
	_, err := c.udp.Write([]byte{byte(PacketQuit)})
	return err
}

// maxDatagramBytes bounds the receive buffer; a GameState packet for a
// full 64-car/34-pad arena comfortably fits well under this.
const maxDatagramBytes = 1 << 20

// ReceiveGameState blocks for the next datagram and decodes it as a
// GameState payload. Returns the packet type actually received so a
// caller can branch on non-GameState control packets too.
func (c *Conn) ReceiveGameState() (PacketType, GameStatePacket, error) {
	buf := make([]byte, maxDatagramBytes)
	n, err := c.udp.Read(buf)
	if err != nil {
		return 0, GameStatePacket{}, err
	}
	r := bytes.NewReader(buf[:n])
	pt, err := DecodePacketType(r)
	if err != nil {
		return 0, GameStatePacket{}, err
	}
	if pt != PacketGameState {
		return pt, GameStatePacket{}, nil
	}
	pkt, err := DecodeGameState(r)
	return pt, pkt, err
}
