package rng

import (
	"math/rand"
)

// Seeded is a deterministic generator for reproducible games.
// The same seed and the same sequence of calls always produce the same stream.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
