package mathrandom

import "testing"

func TestRandom_IntNRange(t *testing.T) {
	r := New(1)
	for i := 0; i < 10000; i++ {
		if v := r.IntN(7); v < 0 || v >= 7 {
			t.Fatalf("IntN(7) = %d, out of range", v)
		}
	}
}

func TestRandom_IntRangeInclusive(t *testing.T) {
	r := New(2)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := r.IntRange(0, 3)
		if v < 0 || v > 3 {
			t.Fatalf("IntRange(0, 3) = %d, out of range", v)
		}
		seen[v] = true
	}
	for v := 0; v <= 3; v++ {
		if !seen[v] {
			t.Errorf("IntRange(0, 3) never returned %d", v)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d for equal seeds", i, x, y)
		}
	}
}

func TestRandom_ZeroSeed(t *testing.T) {
	r := New(0)
	if r.Seed() == 0 {
		t.Error("expected zero seed to be replaced")
	}
}
