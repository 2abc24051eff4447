// Package mathrandom provides a ports.Random backed by math/rand/v2.
package mathrandom

import (
	"math/rand/v2"
	"time"

	"github.com/user/shapedraw/pkg/ports"
)

// Random implements ports.Random with a seeded PCG generator.
// It is not safe for concurrent use.
type Random struct {
	rng  *rand.Rand
	seed uint64
}

// New creates a deterministic generator. A zero seed is replaced by the
// current time; Seed reports the value actually used.
func New(seed uint64) *Random {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Random{
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the seed the generator was created with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// IntN returns an integer in [0, n). It panics if n <= 0.
func (r *Random) IntN(n int) int {
	return r.rng.IntN(n)
}

// IntRange returns an integer in [lo, hi]. It panics if hi < lo.
func (r *Random) IntRange(lo, hi int) int {
	return lo + r.rng.IntN(hi-lo+1)
}

// Ensure Random implements ports.Random
var _ ports.Random = (*Random)(nil)
