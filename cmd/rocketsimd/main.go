// Command rocketsimd runs one or more physics arenas at a fixed tick
// rate, exposes operational HTTP endpoints, and streams exported
// snapshot tensors to a single subscribed rollout consumer.
package main

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rocketsim/internal/car"
	"rocketsim/internal/config"
	httpapi "rocketsim/internal/http"
	"rocketsim/internal/logging"
	"rocketsim/internal/mutator"
	"rocketsim/internal/replay"
	"rocketsim/internal/simulation"
	"rocketsim/internal/snapshot"
	"rocketsim/internal/transport"
	"rocketsim/internal/wire"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	logging.ReplaceGlobals(logger)

	mode, err := mutator.ParseGameMode(cfg.GameMode)
	if err != nil {
		logger.Fatal("invalid game mode", logging.Error(err))
	}

	host, err := newHost(cfg, mode, logger)
	if err != nil {
		logger.Fatal("start host", logging.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	host.Run(ctx)
}

// host owns the arenas, their loops, the rollout stream, and the
// operational HTTP server for one rocketsimd process.
type host struct {
	cfg     *config.Config
	logger  *logging.Logger
	arenas  []*simulation.Arena
	loops   []*simulation.Loop
	monitor *simulation.TickMonitor
	stream  *transport.Stream
	server  *http.Server
	startup time.Time
}

func newHost(cfg *config.Config, mode mutator.GameMode, logger *logging.Logger) (*host, error) {
	h := &host{cfg: cfg, logger: logger, startup: time.Now(), monitor: simulation.NewTickMonitor()}

	for i := 0; i < cfg.NumArenas; i++ {
		arena := simulation.NewArena(mode, float32(cfg.TickRate), int64(i+1))
		seedKickoff(arena)
		h.arenas = append(h.arenas, arena)
	}

	limit := cfg.BandwidthLimitBps
	if limit <= 0 {
		limit = transport.DefaultBandwidthLimitBytesPerSecond
	}
	bandwidth := transport.NewBandwidthRegulator(limit, time.Now)
	metrics := transport.NewSnapshotMetrics()
	h.stream = transport.NewStream(bandwidth, metrics, logger)

	handlers := httpapi.NewHandlerSet(httpapi.Options{
		Logger:    logger,
		Readiness: h,
		Stats:     h.stats,
		Snapshots: metrics,
		Bandwidth: bandwidth,
		Replay:    httpapi.ReplayDumperFunc(h.dumpReplay),
	})
	mux := http.NewServeMux()
	handlers.Register(mux)
	mux.Handle("/rollout/stream", h.stream)
	h.server = &http.Server{Addr: cfg.Address, Handler: mux}

	for _, arena := range h.arenas {
		h.loops = append(h.loops, simulation.NewArenaLoop(arena, h.monitor))
	}
	return h, nil
}

// seedKickoff places two opening cars on the arena so a freshly started
// host is immediately useful for a rollout client, grounded on
// car.PresetConfig's documented hitbox table.
func seedKickoff(a *simulation.Arena) {
	cfg, err := car.PresetConfig(car.Octane)
	if err != nil {
		return
	}
	a.AddCar(mutator.Blue, cfg)
	a.AddCar(mutator.Orange, cfg)
}

func (h *host) Run(ctx context.Context) {
	for _, loop := range h.loops {
		loop.Start(ctx)
	}

	publishTicker := time.NewTicker(time.Second / time.Duration(h.cfg.TickRate))
	defer publishTicker.Stop()

	go func() {
		if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			h.logger.Error("ops server exited", logging.Error(err))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("shutting down rocketsimd")
			for _, loop := range h.loops {
				loop.Stop()
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = h.server.Shutdown(shutdownCtx)
			return
		case <-publishTicker.C:
			h.publish()
		}
	}
}

// publish exports the first arena's GymState and pushes it to the rollout
// stream; arenas beyond the first are neither exported nor streamed.
func (h *host) publish() {
	if len(h.arenas) == 0 {
		return
	}
	state := snapshot.Export(h.arenas[0], false)
	if err := h.stream.Publish(state, nil); err != nil {
		h.logger.Warn("publish snapshot failed", logging.Error(err))
	}
}

// dumpReplay persists the first arena's current state via the §6 wire
// format, reusing replay.Writer's framed storage.
func (h *host) dumpReplay(ctx context.Context) (string, error) {
	if len(h.arenas) == 0 {
		return "", nil
	}
	root := h.cfg.StateSnapshotPath
	if root == "" {
		root = "replays"
	}
	writer, _, err := replay.NewWriter(root, "rocketsimd", time.Now)
	if err != nil {
		return "", err
	}
	defer writer.Close()

	var buf bytes.Buffer
	pkt := wire.FromArena(h.arenas[0])
	if err := wire.EncodeGameState(&buf, pkt); err != nil {
		return "", err
	}
	if err := writer.AppendFrame(h.arenas[0].TickCount(), time.Now().UnixMilli(), buf.Bytes()); err != nil {
		return "", err
	}
	if err := writer.Flush(); err != nil {
		return "", err
	}
	return writer.Directory(), nil
}

func (h *host) stats() (broadcasts, clients int) {
	broadcasts = h.monitor.Snapshot().Samples
	if h.stream.Attached() {
		return broadcasts, 1
	}
	return broadcasts, 0
}

// SnapshotClientCounts implements httpapi.ReadinessProvider.
func (h *host) SnapshotClientCounts() (clients, pending int) {
	if h.stream.Attached() {
		return 1, 0
	}
	return 0, 0
}

// StartupError implements httpapi.ReadinessProvider.
func (h *host) StartupError() error { return nil }

// Uptime implements httpapi.ReadinessProvider.
func (h *host) Uptime() time.Duration { return time.Since(h.startup) }
