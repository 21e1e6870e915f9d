package operators

import (
	"fmt"
	"math/rand"
)

// ValidatePermutation reports whether perm contains each of 1..len(perm)
// exactly once. The empty slice is a valid permutation.
//
// Complexity: O(N) time, O(N) space.
func ValidatePermutation(perm []int) error {
	n := len(perm)
	seen := make([]bool, n+1)
	for i, v := range perm {
		if v < 1 || v > n {
			return fmt.Errorf("%w: value %d at position %d out of range [1,%d]", ErrNotPermutation, v, i, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: value %d repeated at position %d", ErrNotPermutation, v, i)
		}
		seen[v] = true
	}

	return nil
}

// Identity returns [1, 2, ..., n]. For n ≤ 0 it returns an empty slice.
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i + 1
	}

	return p
}

// RandomPermutation returns a uniformly shuffled permutation of 1..n.
// A nil rng uses the default seed.
func RandomPermutation(n int, rng *rand.Rand) []int {
	p := Identity(n)
	shuffleInPlace(p, orDefault(rng))

	return p
}

// positions returns pos where pos[v] is the index of value v in perm.
// Index 0 is unused since values start at 1.
func positions(perm []int) []int {
	pos := make([]int, len(perm)+1)
	for i, v := range perm {
		pos[v] = i
	}

	return pos
}
