// Package operators_test checks the permutation invariant of every operator
// across many sizes and seeds, plus known-answer cases for the
// deterministic operators and the dispatch fallbacks.
package operators_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/operators"
)

var (
	allCrossovers = []operators.Crossover{
		operators.PMX, operators.OX, operators.CX,
		operators.SegmentRecombination, operators.OrderBased, operators.EdgeRecombination,
	}
	allMutations = []operators.Mutation{
		operators.Insertion, operators.Swap, operators.Inversion,
		operators.Heuristic, operators.HalfSwap, operators.Scramble,
	}
)

const (
	maxN  = 30
	seeds = 40
)

// ------------------------------------------------------------------------
// 1. Permutation invariant
// ------------------------------------------------------------------------

func TestCross_PreservesPermutation(t *testing.T) {
	for _, m := range allCrossovers {
		t.Run(m.String(), func(t *testing.T) {
			for n := 0; n <= maxN; n++ {
				for seed := int64(1); seed <= seeds; seed++ {
					rng := operators.NewRand(seed)
					p1 := operators.RandomPermutation(n, rng)
					p2 := operators.RandomPermutation(n, rng)
					keep1 := slices.Clone(p1)
					keep2 := slices.Clone(p2)

					c1, c2 := operators.Cross(m, p1, p2, rng)

					require.Len(t, c1, n)
					require.Len(t, c2, n)
					require.NoErrorf(t, operators.ValidatePermutation(c1), "n=%d seed=%d child1=%v", n, seed, c1)
					require.NoErrorf(t, operators.ValidatePermutation(c2), "n=%d seed=%d child2=%v", n, seed, c2)
					require.Equal(t, keep1, p1, "parent 1 modified")
					require.Equal(t, keep2, p2, "parent 2 modified")
				}
			}
		})
	}
}

func TestCross_EmptyParents(t *testing.T) {
	for _, m := range allCrossovers {
		c1, c2 := operators.Cross(m, []int{}, []int{}, operators.NewRand(1))
		assert.Empty(t, c1, m.String())
		assert.Empty(t, c2, m.String())
	}
}

func TestMutate_PreservesPermutation(t *testing.T) {
	for _, m := range allMutations {
		t.Run(m.String(), func(t *testing.T) {
			for n := 0; n <= maxN; n++ {
				for seed := int64(1); seed <= seeds; seed++ {
					rng := operators.NewRand(seed)
					p := operators.RandomPermutation(n, rng)
					operators.Mutate(m, p, rng)
					require.Len(t, p, n)
					require.NoErrorf(t, operators.ValidatePermutation(p), "n=%d seed=%d perm=%v", n, seed, p)
				}
			}
		})
	}
}

func TestOperators_SingleGeneNoOp(t *testing.T) {
	rng := operators.NewRand(5)
	for _, m := range allCrossovers {
		c1, c2 := operators.Cross(m, []int{1}, []int{1}, rng)
		assert.Equal(t, []int{1}, c1, m.String())
		assert.Equal(t, []int{1}, c2, m.String())
	}
	for _, m := range allMutations {
		p := []int{1}
		operators.Mutate(m, p, rng)
		assert.Equal(t, []int{1}, p, m.String())
	}
}

// ------------------------------------------------------------------------
// 2. Known answers
// ------------------------------------------------------------------------

func TestCycle_KnownAnswer(t *testing.T) {
	p1 := []int{1, 2, 3, 4, 5, 6, 7, 8}
	p2 := []int{8, 5, 2, 1, 3, 6, 4, 7}
	// Cycles: {0,7,6,3} from p1, {1,4,2} from p2, {5} from p1.
	c1, c2 := operators.Cycle(p1, p2, nil)
	assert.Equal(t, []int{1, 5, 2, 4, 3, 6, 7, 8}, c1)
	assert.Equal(t, []int{8, 2, 3, 1, 5, 6, 4, 7}, c2)
}

func TestCycle_IdenticalParents(t *testing.T) {
	p := []int{3, 1, 2, 5, 4}
	c1, c2 := operators.Cycle(p, p, nil)
	assert.Equal(t, p, c1)
	assert.Equal(t, p, c2)
}

func TestSegment_RepairsDuplicates(t *testing.T) {
	p1 := []int{1, 2, 3, 4, 5, 6}
	p2 := []int{3, 4, 1, 2, 6, 5}
	c1, c2 := operators.Segment(p1, p2, nil)
	assert.Equal(t, []int{3, 4, 1, 2, 5, 6}, c1)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 5}, c2)
}

func TestSwapHalves(t *testing.T) {
	even := []int{1, 2, 3, 4, 5, 6}
	operators.SwapHalves(even)
	assert.Equal(t, []int{4, 5, 6, 1, 2, 3}, even)

	odd := []int{1, 2, 3, 4, 5}
	operators.SwapHalves(odd)
	assert.Equal(t, []int{4, 5, 3, 1, 2}, odd)
}

func TestSwapPositions_ChangesExactlyTwo(t *testing.T) {
	rng := operators.NewRand(9)
	for i := 0; i < 200; i++ {
		p := operators.Identity(7)
		operators.SwapPositions(p, rng)
		var diff int
		for k, v := range p {
			if v != k+1 {
				diff++
			}
		}
		require.Equal(t, 2, diff)
	}
}

func TestInvert_ReversesContiguousRange(t *testing.T) {
	rng := operators.NewRand(13)
	for i := 0; i < 200; i++ {
		p := operators.Identity(10)
		operators.Invert(p, rng)

		lo, hi := 0, len(p)-1
		for lo < len(p) && p[lo] == lo+1 {
			lo++
		}
		for hi >= 0 && p[hi] == hi+1 {
			hi--
		}
		for k := lo; k <= hi; k++ {
			require.Equalf(t, lo+hi-k+1, p[k], "not a reversal: %v", p)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Dispatch and determinism
// ------------------------------------------------------------------------

func TestCross_UnknownFallsBackToPMX(t *testing.T) {
	p1 := operators.RandomPermutation(12, operators.NewRand(1))
	p2 := operators.RandomPermutation(12, operators.NewRand(2))

	w1, w2 := operators.PartiallyMapped(p1, p2, operators.NewRand(77))
	g1, g2 := operators.Cross(operators.Crossover(99), p1, p2, operators.NewRand(77))
	assert.Equal(t, w1, g1)
	assert.Equal(t, w2, g2)
}

func TestMutate_UnknownAndHeuristicBehaveAsSwap(t *testing.T) {
	want := operators.Identity(12)
	operators.SwapPositions(want, operators.NewRand(21))

	for _, m := range []operators.Mutation{operators.Heuristic, operators.Mutation(-1), operators.Mutation(42)} {
		got := operators.Identity(12)
		operators.Mutate(m, got, operators.NewRand(21))
		assert.Equal(t, want, got, m.String())
	}
}

func TestCross_SameSeedSameChildren(t *testing.T) {
	p1 := operators.RandomPermutation(20, operators.NewRand(3))
	p2 := operators.RandomPermutation(20, operators.NewRand(4))
	for _, m := range allCrossovers {
		a1, a2 := operators.Cross(m, p1, p2, operators.NewRand(8))
		b1, b2 := operators.Cross(m, p1, p2, operators.NewRand(8))
		assert.Equal(t, a1, b1, m.String())
		assert.Equal(t, a2, b2, m.String())
	}
}

func TestNewRand_ZeroSeedIsDefault(t *testing.T) {
	assert.Equal(t, operators.NewRand(1).Int63(), operators.NewRand(0).Int63())
}

// ------------------------------------------------------------------------
// 4. Helpers and enums
// ------------------------------------------------------------------------

func TestValidatePermutation(t *testing.T) {
	assert.NoError(t, operators.ValidatePermutation(nil))
	assert.NoError(t, operators.ValidatePermutation([]int{2, 3, 1}))
	assert.ErrorIs(t, operators.ValidatePermutation([]int{1, 1, 3}), operators.ErrNotPermutation)
	assert.ErrorIs(t, operators.ValidatePermutation([]int{0, 1, 2}), operators.ErrNotPermutation)
	assert.ErrorIs(t, operators.ValidatePermutation([]int{1, 2, 4}), operators.ErrNotPermutation)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, operators.Identity(3))
	assert.Empty(t, operators.Identity(0))
	assert.Empty(t, operators.Identity(-2))
}

func TestParseCrossover(t *testing.T) {
	for _, m := range allCrossovers {
		got, err := operators.ParseCrossover(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := operators.ParseCrossover(" ERX ")
	require.NoError(t, err)
	assert.Equal(t, operators.EdgeRecombination, got)

	got, err = operators.ParseCrossover("nope")
	assert.ErrorIs(t, err, operators.ErrUnknownMethod)
	assert.Equal(t, operators.PMX, got)
	assert.Equal(t, "crossover(9)", operators.Crossover(9).String())
}

func TestParseMutation(t *testing.T) {
	for _, m := range allMutations {
		got, err := operators.ParseMutation(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := operators.ParseMutation("")
	assert.ErrorIs(t, err, operators.ErrUnknownMethod)
	assert.Equal(t, operators.Swap, got)
	assert.Equal(t, "mutation(-1)", operators.Mutation(-1).String())
}
