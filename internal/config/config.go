package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultAddr is the default TCP address the simulation host listens on.
	DefaultAddr = ":43127"
	// DefaultPingInterval controls the keepalive cadence for WebSocket connections.
	DefaultPingInterval = 30 * time.Second
	// DefaultMaxPayloadBytes limits inbound WebSocket frame size.
	DefaultMaxPayloadBytes int64 = 1 << 20
	// DefaultMaxClients bounds concurrent WebSocket connections. Zero disables the limit.
	DefaultMaxClients = 256

	// DefaultReplayDumpWindow bounds how frequently replay dump triggers may be requested.
	DefaultReplayDumpWindow = time.Minute
	// DefaultReplayDumpBurst sets how many replay dump requests may be made per window.
	DefaultReplayDumpBurst = 1

	// DefaultLogLevel controls verbosity for broker logs.
	DefaultLogLevel = "info"
	// DefaultLogPath is where structured logs are written.
	DefaultLogPath = "rocketsimd.log"
	// DefaultLogMaxSizeMB caps the size of a single log file before rotation.
	DefaultLogMaxSizeMB = 100
	// DefaultLogMaxBackups limits retained rotated log files.
	DefaultLogMaxBackups = 10
	// DefaultLogMaxAgeDays controls how long rotated log files are kept on disk.
	DefaultLogMaxAgeDays = 7
	// DefaultLogCompress toggles gzip compression for rotated log files.
	DefaultLogCompress = true

	// DefaultStateSnapshotInterval controls how frequently state snapshots are persisted.
	DefaultStateSnapshotInterval = 30 * time.Second

	// DefaultNumArenas is how many independent simulation arenas rocketsimd runs.
	DefaultNumArenas = 1
	// DefaultTickRate is the fixed simulation step rate in Hz.
	DefaultTickRate = 120
	// DefaultGameMode selects the ruleset new arenas start with.
	DefaultGameMode = "soccar"
	// DefaultCompressor names the wire.Compressor used for persisted snapshots.
	DefaultCompressor = "zstd"
)

// Config captures all runtime tunables for the simulation host service.
type Config struct {
	Address               string
	AllowedOrigins        []string
	MaxPayloadBytes       int64
	PingInterval          time.Duration
	MaxClients            int
	TLSCertPath           string
	TLSKeyPath            string
	AdminToken            string
	ReplayDumpWindow      time.Duration
	ReplayDumpBurst       int
	Logging               LoggingConfig
	StateSnapshotPath     string
	StateSnapshotInterval time.Duration

	NumArenas         int
	TickRate          int
	GameMode          string
	BandwidthLimitBps float64
	Compressor        string
}

// LoggingConfig captures structured logging configuration options.
type LoggingConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads the simulation host configuration from environment variables, applying sane defaults
// and returning descriptive errors for invalid overrides.
func Load() (*Config, error) {
	cfg := &Config{
		Address:          getString("ROCKETSIM_ADDR", DefaultAddr),
		AllowedOrigins:   parseList(os.Getenv("ROCKETSIM_ALLOWED_ORIGINS")),
		MaxPayloadBytes:  DefaultMaxPayloadBytes,
		PingInterval:     DefaultPingInterval,
		MaxClients:       DefaultMaxClients,
		TLSCertPath:      strings.TrimSpace(os.Getenv("ROCKETSIM_TLS_CERT")),
		TLSKeyPath:       strings.TrimSpace(os.Getenv("ROCKETSIM_TLS_KEY")),
		AdminToken:       strings.TrimSpace(os.Getenv("ROCKETSIM_ADMIN_TOKEN")),
		ReplayDumpWindow: DefaultReplayDumpWindow,
		ReplayDumpBurst:  DefaultReplayDumpBurst,
		Logging: LoggingConfig{
			Level:      strings.TrimSpace(getString("ROCKETSIM_LOG_LEVEL", DefaultLogLevel)),
			Path:       strings.TrimSpace(getString("ROCKETSIM_LOG_PATH", DefaultLogPath)),
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
			Compress:   DefaultLogCompress,
		},
		StateSnapshotPath:     strings.TrimSpace(os.Getenv("ROCKETSIM_STATE_PATH")),
		StateSnapshotInterval: DefaultStateSnapshotInterval,

		NumArenas:         DefaultNumArenas,
		TickRate:          DefaultTickRate,
		GameMode:          strings.TrimSpace(getString("ROCKETSIM_GAME_MODE", DefaultGameMode)),
		BandwidthLimitBps: 0,
		Compressor:        strings.TrimSpace(getString("ROCKETSIM_COMPRESSOR", DefaultCompressor)),
	}

	var problems []string

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_MAX_PAYLOAD_BYTES")); raw != "" {
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_MAX_PAYLOAD_BYTES must be a positive integer, got %q", raw))
		} else {
			cfg.MaxPayloadBytes = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_PING_INTERVAL")); raw != "" {
		duration, err := time.ParseDuration(raw)
		if err != nil || duration <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_PING_INTERVAL must be a positive duration, got %q", raw))
		} else {
			cfg.PingInterval = duration
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_MAX_CLIENTS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_MAX_CLIENTS must be a non-negative integer, got %q", raw))
		} else {
			cfg.MaxClients = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_LOG_MAX_SIZE_MB")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_LOG_MAX_SIZE_MB must be a positive integer, got %q", raw))
		} else {
			cfg.Logging.MaxSizeMB = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_LOG_MAX_BACKUPS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_LOG_MAX_BACKUPS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Logging.MaxBackups = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_LOG_MAX_AGE_DAYS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_LOG_MAX_AGE_DAYS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Logging.MaxAgeDays = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_LOG_COMPRESS")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_LOG_COMPRESS must be a boolean value, got %q", raw))
		} else {
			cfg.Logging.Compress = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_REPLAY_DUMP_WINDOW")); raw != "" {
		duration, err := time.ParseDuration(raw)
		if err != nil || duration <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_REPLAY_DUMP_WINDOW must be a positive duration, got %q", raw))
		} else {
			cfg.ReplayDumpWindow = duration
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_REPLAY_DUMP_BURST")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_REPLAY_DUMP_BURST must be a positive integer, got %q", raw))
		} else {
			cfg.ReplayDumpBurst = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_STATE_INTERVAL")); raw != "" {
		duration, err := time.ParseDuration(raw)
		if err != nil || duration <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_STATE_INTERVAL must be a positive duration, got %q", raw))
		} else {
			cfg.StateSnapshotInterval = duration
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_NUM_ARENAS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_NUM_ARENAS must be a positive integer, got %q", raw))
		} else {
			cfg.NumArenas = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_TICK_RATE")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_TICK_RATE must be a positive integer, got %q", raw))
		} else {
			cfg.TickRate = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ROCKETSIM_BANDWIDTH_LIMIT_BPS")); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ROCKETSIM_BANDWIDTH_LIMIT_BPS must be a positive number, got %q", raw))
		} else {
			cfg.BandwidthLimitBps = value
		}
	}

	if (cfg.TLSCertPath == "") != (cfg.TLSKeyPath == "") {
		problems = append(problems, "ROCKETSIM_TLS_CERT and ROCKETSIM_TLS_KEY must be provided together")
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf(strings.Join(problems, "; "))
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			values = append(values, item)
		}
	}
	return values
}
