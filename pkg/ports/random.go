package ports

// Random is a source of uniformly distributed integers.
// Implementations are not required to be safe for concurrent use.
type Random interface {
	// IntN returns an integer in the half-open range [0, n).
	// It panics if n <= 0.
	IntN(n int) int

	// IntRange returns an integer in the closed range [lo, hi].
	IntRange(lo, hi int) int
}
