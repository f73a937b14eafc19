package mocks

import (
	"github.com/rocketscienceinc/tictactoe-engine/internal/dependencies/random"
)

// MockRandom is a deterministic Random for tests.
// Shuffle keeps the original order unless a permutation is queued.
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Permutations is a queue of orders applied by Shuffle
	Permutations [][]int
	permIndex    int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	if r.intnIndex >= len(r.IntnResults) {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	if n > 0 {
		result %= n
	}
	return result
}

// Shuffle applies the next queued permutation: element perm[i] moves to position i.
func (r *MockRandom) Shuffle(n int, swap func(i, j int)) {
	if r.permIndex >= len(r.Permutations) {
		return
	}
	perm := r.Permutations[r.permIndex]
	r.permIndex++
	if len(perm) != n {
		return
	}

	// position[k] is where original element k currently sits
	position := make([]int, n)
	element := make([]int, n)
	for i := range n {
		position[i] = i
		element[i] = i
	}

	for i := range n {
		j := position[perm[i]]
		if i == j {
			continue
		}
		swap(i, j)
		element[i], element[j] = element[j], element[i]
		position[element[i]] = i
		position[element[j]] = j
	}
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// QueuePermutation adds an order for the next Shuffle call
func (r *MockRandom) QueuePermutation(perm ...int) {
	r.Permutations = append(r.Permutations, perm)
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.Permutations = nil
	r.permIndex = 0
}
