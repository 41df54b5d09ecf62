package mathutil

import "math/rand/v2"

// Rand is a per-arena, per-call-seeded source of randomness. It wraps
// math/rand/v2's PCG generator so that the same seed always produces the
// same sequence regardless of process or goroutine scheduling, matching the
// determinism property two identically-seeded arenas must exhibit.
type Rand struct {
	r *rand.Rand
}

// NewRand constructs a seeded generator. A negative seed asks for
// process-entropy seeding, matching the original engine's "seed == -1 means
// unseeded" convention.
func NewRand(seed int64) *Rand {
	if seed < 0 {
		return &Rand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &Rand{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

// Float returns a uniformly distributed float32 in [min, max).
func (rr *Rand) Float(min, max float32) float32 {
	if rr == nil || rr.r == nil {
		return min
	}
	return min + float32(rr.r.Float64())*(max-min)
}

// Int returns a uniformly distributed int in [min, max) — min inclusive,
// max exclusive.
func (rr *Rand) Int(min, max int) int {
	if rr == nil || rr.r == nil || max <= min {
		return min
	}
	return min + rr.r.IntN(max-min)
}
