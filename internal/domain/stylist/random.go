package stylist

import "math/rand/v2"

// RandomSource supplies the randomness used to pick shoes and accessories.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultRandomSource is backed by the process-wide math/rand/v2 generator,
// which is safe for concurrent use.
func DefaultRandomSource() RandomSource {
	return globalSource{}
}

// SeededRandomSource returns a reproducible source. It is not safe for
// concurrent use.
func SeededRandomSource(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
