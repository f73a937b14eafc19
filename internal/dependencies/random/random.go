package random

import (
	"math/rand/v2"
)

// Random provides random number generation that can be mocked for testing.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// Source implements Random on a PCG generator owned by one agent.
type Source struct {
	rnd *rand.Rand
}

// New creates a Source with an unpredictable seed.
func New() *Source {
	return NewSeeded(rand.Uint64())
}

// NewSeeded creates a Source whose sequence is fixed by seed.
func NewSeeded(seed uint64) *Source {
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (that *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return that.rnd.IntN(n)
}

func (that *Source) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	that.rnd.Shuffle(n, swap)
}
