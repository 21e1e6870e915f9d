package operators

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for permutation checks and enum parsing.
var (
	// ErrNotPermutation indicates a slice that is not a permutation of 1..N.
	ErrNotPermutation = errors.New("operators: not a permutation of 1..N")

	// ErrUnknownMethod indicates an operator name that ParseCrossover or
	// ParseMutation does not recognize.
	ErrUnknownMethod = errors.New("operators: unknown method")
)

// Crossover selects a crossover operator.
type Crossover int

const (
	// PMX is partially mapped crossover. It is also the fallback for unknown values.
	PMX Crossover = iota

	// OX is order crossover.
	OX

	// CX is cycle crossover.
	CX

	// SegmentRecombination takes the outer thirds from one parent and the
	// middle third from the other, then repairs duplicates.
	SegmentRecombination

	// OrderBased is order-based crossover (OBX).
	OrderBased

	// EdgeRecombination is edge recombination crossover (ERX).
	EdgeRecombination
)

var crossoverNames = [...]string{"pmx", "ox", "cx", "segment", "obx", "erx"}

// String returns the short lowercase name of c.
func (c Crossover) String() string {
	if c < 0 || int(c) >= len(crossoverNames) {
		return fmt.Sprintf("crossover(%d)", int(c))
	}

	return crossoverNames[c]
}

// ParseCrossover maps a name produced by String (case-insensitive) back to
// its Crossover. Unknown names return PMX and ErrUnknownMethod.
func ParseCrossover(s string) (Crossover, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range crossoverNames {
		if name == s {
			return Crossover(i), nil
		}
	}

	return PMX, fmt.Errorf("%w: crossover %q", ErrUnknownMethod, s)
}

// Mutation selects a mutation operator.
type Mutation int

const (
	// Insertion moves one gene to another position.
	Insertion Mutation = iota

	// Swap exchanges two distinct positions. It is also the fallback for unknown values.
	Swap

	// Inversion reverses a random sub-range.
	Inversion

	// Heuristic behaves exactly like Swap.
	Heuristic

	// HalfSwap exchanges the first half with the second half element-for-element.
	HalfSwap

	// Scramble shuffles a random sub-range.
	Scramble
)

var mutationNames = [...]string{"insertion", "swap", "inversion", "heuristic", "halfswap", "scramble"}

// String returns the short lowercase name of m.
func (m Mutation) String() string {
	if m < 0 || int(m) >= len(mutationNames) {
		return fmt.Sprintf("mutation(%d)", int(m))
	}

	return mutationNames[m]
}

// ParseMutation maps a name produced by String (case-insensitive) back to
// its Mutation. Unknown names return Swap and ErrUnknownMethod.
func ParseMutation(s string) (Mutation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range mutationNames {
		if name == s {
			return Mutation(i), nil
		}
	}

	return Swap, fmt.Errorf("%w: mutation %q", ErrUnknownMethod, s)
}
