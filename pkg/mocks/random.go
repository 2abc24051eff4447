package mocks

import (
	"sync"

	"github.com/user/shapedraw/pkg/ports"
)

// Random is a mock implementation of ports.Random.
//
// Without overrides IntN returns n-1 and IntRange returns hi, so results stay
// in range and are easy to predict. Calls are counted.
type Random struct {
	mu sync.Mutex

	IntNFunc     func(n int) int
	IntRangeFunc func(lo, hi int) int

	IntNCalls     int
	IntRangeCalls int
}

func (m *Random) IntN(n int) int {
	m.mu.Lock()
	m.IntNCalls++
	m.mu.Unlock()
	if m.IntNFunc != nil {
		return m.IntNFunc(n)
	}
	return n - 1
}

func (m *Random) IntRange(lo, hi int) int {
	m.mu.Lock()
	m.IntRangeCalls++
	m.mu.Unlock()
	if m.IntRangeFunc != nil {
		return m.IntRangeFunc(lo, hi)
	}
	return hi
}

// Sequence returns an IntRange override that cycles through values.
func Sequence(values ...int) func(lo, hi int) int {
	var mu sync.Mutex
	i := 0
	return func(lo, hi int) int {
		mu.Lock()
		defer mu.Unlock()
		v := values[i%len(values)]
		i++
		return v
	}
}

var _ ports.Random = (*Random)(nil)
