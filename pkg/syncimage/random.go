package syncimage

import (
	"sync"

	"github.com/user/shapedraw/pkg/ports"
)

// Random wraps a ports.Random with a mutex. Draw order across goroutines is
// unspecified, so seeded output is only reproducible for a single worker.
type Random struct {
	mu    sync.Mutex
	inner ports.Random
}

// NewRandom wraps rnd.
func NewRandom(rnd ports.Random) *Random {
	return &Random{inner: rnd}
}

func (r *Random) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.IntN(n)
}

func (r *Random) IntRange(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.IntRange(lo, hi)
}

var _ ports.Random = (*Random)(nil)
