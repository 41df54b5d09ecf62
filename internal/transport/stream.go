package transport

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"rocketsim/internal/logging"
	"rocketsim/internal/snapshot"
)

// upgrader mirrors the teacher's permissive CheckOrigin; this endpoint is
// meant to be reached by a trusted rollout process on the same host or a
// sidecar, not a browser.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Frame is the JSON envelope written to the single subscribed consumer
// for every exported GymState. The tensors travel as plain float32 arrays
// rather than the §6 binary wire layout because this stream feeds a
// Python rollout client, not the visualizer.
type Frame struct {
	TickCount   uint64    `json:"tick_count"`
	BlueScore   uint32    `json:"blue_score"`
	OrangeScore uint32    `json:"orange_score"`
	Inverted    bool      `json:"inverted"`
	CarIDs      []uint32  `json:"car_ids"`
	CarTeams    []uint8   `json:"car_teams"`
	Ball        []float32 `json:"ball"`
	Cars        []float32 `json:"cars"`
	Pads        []float32 `json:"pads"`
}

func frameFromGymState(s snapshot.GymState) Frame {
	return Frame{
		TickCount:   s.TickCount,
		BlueScore:   s.BlueScore,
		OrangeScore: s.OrangeScore,
		Inverted:    s.Inverted,
		CarIDs:      s.CarIDs,
		CarTeams:    s.CarTeams,
		Ball:        s.Ball,
		Cars:        s.Cars,
		Pads:        s.Pads,
	}
}

// consumer is the single rollout client currently attached to a Stream.
// Spec.md §6 is explicit that the rollout stream has exactly one
// consumer at a time; a second Subscribe bumps the first.
type consumer struct {
	conn *websocket.Conn
	send chan []byte
	id   string
}

// Stream publishes exported GymState snapshots to at most one subscribed
// websocket consumer, applying per-consumer bandwidth regulation and
// recording delivery metrics. Grounded on the teacher's root main.go
// Broker/Client reader-writer pump, narrowed from broadcast-to-many to
// single-consumer-with-replacement.
type Stream struct {
	mu        sync.Mutex
	current   *consumer
	bandwidth *BandwidthRegulator
	metrics   *SnapshotMetrics
	log       *logging.Logger
}

// NewStream constructs a Stream with the given bandwidth regulator and
// metrics sink. Either may be nil to disable that concern.
func NewStream(bandwidth *BandwidthRegulator, metrics *SnapshotMetrics, log *logging.Logger) *Stream {
	if log == nil {
		log = logging.L()
	}
	return &Stream{bandwidth: bandwidth, metrics: metrics, log: log}
}

// ServeHTTP upgrades the request to a websocket and installs it as the
// current consumer, displacing whatever consumer was previously attached.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("rollout stream upgrade failed", logging.Error(err))
		return
	}
	c := &consumer{conn: conn, send: make(chan []byte, 64), id: r.RemoteAddr}

	s.mu.Lock()
	previous := s.current
	s.current = c
	s.mu.Unlock()
	if previous != nil {
		close(previous.send)
	}

	go s.readLoop(c)
	go s.writeLoop(c)
}

func (s *Stream) readLoop(c *consumer) {
	defer s.detach(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Stream) writeLoop(c *consumer) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case payload, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *Stream) detach(c *consumer) {
	s.mu.Lock()
	if s.current == c {
		s.current = nil
	}
	s.mu.Unlock()
	c.conn.Close()
	if s.metrics != nil {
		s.metrics.ForgetConsumer(c.id)
	}
	if s.bandwidth != nil {
		s.bandwidth.Forget(c.id)
	}
}

// Publish encodes s as a Frame and delivers it to the current consumer,
// subject to bandwidth regulation. It is a no-op when no consumer is
// attached. dropped, if non-nil, is forwarded to the metrics sink so a
// consumer that is being throttled still shows up in
// broker_snapshot_dropped_entities_total.
func (s *Stream) Publish(state snapshot.GymState, dropped map[RowKind]int) error {
	s.mu.Lock()
	c := s.current
	s.mu.Unlock()
	if c == nil {
		return nil
	}

	payload, err := json.Marshal(frameFromGymState(state))
	if err != nil {
		return err
	}

	if s.bandwidth != nil && !s.bandwidth.Allow(c.id, len(payload)) {
		if s.metrics != nil {
			s.metrics.Observe(c.id, 0, dropped)
		}
		return nil
	}
	if s.metrics != nil {
		s.metrics.Observe(c.id, len(payload), dropped)
	}

	select {
	case c.send <- payload:
	default:
		// Consumer's outbound buffer is saturated; drop this frame
		// rather than block the simulation loop.
		s.log.Warn("rollout stream consumer backlogged, dropping frame", logging.String("consumer", c.id))
	}
	return nil
}

// Attached reports whether a consumer is currently subscribed.
func (s *Stream) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}
