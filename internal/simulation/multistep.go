package simulation

import (
	"runtime"
	"sync"

	"rocketsim/internal/simerr"
)

// sequentialThreshold is the arena-count cutoff below which MultiStep runs
// on the caller's own goroutine instead of spreading work across a pool.
const sequentialThreshold = 4

// MultiStep advances every arena in arenas by ticks ticks. Arenas must all
// be distinct; duplicates are rejected before any arena is touched. Below
// sequentialThreshold arenas the work runs on the caller's goroutine;
// at or above it, arenas are handed one at a time to a pool of worker
// goroutines sized to min(GOMAXPROCS, len(arenas)). If any arena's Step call returns an
// error, the first such error in input order is returned once every
// arena has finished advancing; arenas that already failed keep whatever
// state they reached at their last successful tick boundary.
func MultiStep(arenas []*Arena, ticks int) error {
	if err := checkDistinct(arenas); err != nil {
		return err
	}
	if len(arenas) < sequentialThreshold {
		var firstErr error
		for _, a := range arenas {
			if err := a.Step(ticks); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}
	return stepPooled(arenas, ticks)
}

func checkDistinct(arenas []*Arena) error {
	seen := make(map[*Arena]bool, len(arenas))
	for _, a := range arenas {
		if seen[a] {
			return simerr.Operationf("duplicate arena in multi_step input")
		}
		seen[a] = true
	}
	return nil
}

func stepPooled(arenas []*Arena, ticks int) error {
	poolSize := runtime.GOMAXPROCS(0)
	if poolSize > len(arenas) {
		poolSize = len(arenas)
	}
	if poolSize < 1 {
		poolSize = 1
	}

	errs := make([]error, len(arenas))
	jobs := make(chan int, len(arenas))
	for i := range arenas {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < poolSize; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				errs[idx] = arenas[idx].Step(ticks)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
