package ports

// RandomSource supplies uniformly distributed integers.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}
