// Command snapplay replays a sequence of persisted snapshot files over
// the UDP visualizer protocol, one GameState datagram per file, paced by
// a configurable playback rate.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rocketsim/internal/wire"
)

func main() {
	compressorName := flag.String("compressor", "none", "compressor used when the files were written: none, gzip, snappy, zstd")
	addr := flag.String("addr", "127.0.0.1", "visualizer host to send datagrams to")
	rate := flag.Float64("rate", 30, "playback rate in frames per second")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: snapplay [-addr host] [-rate fps] [-compressor name] file [file...]")
		os.Exit(2)
	}
	if *rate <= 0 {
		fmt.Fprintln(os.Stderr, "snapplay: -rate must be positive")
		os.Exit(2)
	}

	compressor, err := wire.NewCompressor(*compressorName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapplay: %v\n", err)
		os.Exit(1)
	}

	conn, err := wire.DialVisualizer(*addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapplay: dial visualizer: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	interval := time.Duration(float64(time.Second) / *rate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, path := range paths {
		pkt, err := wire.ReadSnapshotFile(path, compressor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "snapplay: %s: %v\n", path, err)
			continue
		}
		if err := conn.SendGameState(pkt); err != nil {
			fmt.Fprintf(os.Stderr, "snapplay: send %s: %v\n", path, err)
			continue
		}
		fmt.Printf("sent %s (tick=%d)\n", path, pkt.TickCount)
		<-ticker.C
	}
	_ = conn.SendQuit()
}
