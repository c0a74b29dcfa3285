package core

import "math/rand"

// RandomSource yields uniform reals in [0,1).
// *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRand returns a seeded source for deterministic simulation.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
