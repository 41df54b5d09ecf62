// Command snapcat inspects persisted snapshot files written by
// wire.WriteSnapshotFile, printing a one-line summary of
// each file's tick, mode, car, and pad counts.
package main

import (
	"flag"
	"fmt"
	"os"

	"rocketsim/internal/mutator"
	"rocketsim/internal/wire"
)

func main() {
	compressorName := flag.String("compressor", "none", "compressor used when the file was written: none, gzip, snappy, zstd")
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: snapcat [-compressor name] file [file...]")
		os.Exit(2)
	}

	compressor, err := wire.NewCompressor(*compressorName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snapcat: %v\n", err)
		os.Exit(1)
	}

	exit := 0
	for _, path := range paths {
		if err := describe(path, compressor); err != nil {
			fmt.Fprintf(os.Stderr, "snapcat: %s: %v\n", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func describe(path string, compressor wire.Compressor) error {
	pkt, err := wire.ReadSnapshotFile(path, compressor)
	if err != nil {
		return err
	}
	fmt.Printf(
		"%s\ttick=%d\trate=%.0f\tmode=%s\tcars=%d\tpads=%d\tboost=%.1f\n",
		path,
		pkt.TickCount,
		pkt.TickRate,
		mutator.GameMode(pkt.GameMode),
		len(pkt.Cars),
		len(pkt.Pads),
		totalBoost(pkt.Cars),
	)
	return nil
}

func totalBoost(cars []wire.CarInfo) float32 {
	var sum float32
	for _, c := range cars {
		sum += c.State.Boost
	}
	return sum
}
