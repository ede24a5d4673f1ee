// Package rng provides the uniform random source used to draw secrets.
//
// The game only ever needs one draw per run, but the source is abstracted
// behind an interface so tests (and the --seed flag) can make games
// deterministic.
package rng

import (
	"fmt"
	"math/rand/v2"
)

// Source produces uniform integers in the half-open range [0, n).
type Source interface {
	IntN(n int) int
}

// defaultSource delegates to the shared math/rand/v2 generator.
type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Default returns the process-wide random source.
func Default() Source {
	return defaultSource{}
}

// Seeded returns a deterministic source. The same seed always yields the
// same sequence of draws.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// Between draws a uniform integer from the inclusive range [lo, hi].
// Both bounds are reachable. Panics if lo > hi.
func Between(src Source, lo, hi int) int {
	if lo > hi {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", lo, hi))
	}
	return lo + src.IntN(hi-lo+1)
}
