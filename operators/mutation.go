package operators

import "math/rand"

// Mutate applies the mutation selected by method to perm in place.
// Unknown methods fall back to Swap. A nil rng uses the default seed.
func Mutate(method Mutation, perm []int, rng *rand.Rand) {
	rng = orDefault(rng)
	switch method {
	case Insertion:
		Insert(perm, rng)
	case Swap, Heuristic:
		SwapPositions(perm, rng)
	case Inversion:
		Invert(perm, rng)
	case HalfSwap:
		SwapHalves(perm)
	case Scramble:
		ScrambleRange(perm, rng)
	default:
		SwapPositions(perm, rng)
	}
}

// Insert removes the gene at a random position and reinserts it at another
// random position (possibly the same), shifting the genes in between.
func Insert(perm []int, rng *rand.Rand) {
	n := len(perm)
	if n < 2 {
		return
	}
	from, to := rng.Intn(n), rng.Intn(n)
	v := perm[from]
	if from < to {
		copy(perm[from:to], perm[from+1:to+1])
	} else {
		copy(perm[to+1:from+1], perm[to:from])
	}
	perm[to] = v
}

// SwapPositions exchanges the genes at two distinct random positions.
func SwapPositions(perm []int, rng *rand.Rand) {
	n := len(perm)
	if n < 2 {
		return
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	perm[i], perm[j] = perm[j], perm[i]
}

// Invert reverses perm[a..b] for random cut points a ≤ b.
func Invert(perm []int, rng *rand.Rand) {
	n := len(perm)
	if n < 2 {
		return
	}
	a, b := cutPoints(n, rng)
	for ; a < b; a, b = a+1, b-1 {
		perm[a], perm[b] = perm[b], perm[a]
	}
}

// SwapHalves exchanges perm[i] with perm[i+⌈n/2⌉] for every i < ⌊n/2⌋.
// For odd n the middle gene stays in place.
func SwapHalves(perm []int) {
	n := len(perm)
	half, offset := n/2, (n+1)/2
	for i := 0; i < half; i++ {
		perm[i], perm[i+offset] = perm[i+offset], perm[i]
	}
}

// ScrambleRange picks a random sub-range [a..b] and swaps each position in
// it with a random position of the same sub-range.
func ScrambleRange(perm []int, rng *rand.Rand) {
	n := len(perm)
	if n < 2 {
		return
	}
	a, b := cutPoints(n, rng)
	scrambleBetween(perm, a, b, rng)
}

// scrambleBetween swaps every position of perm[a..b], b included, with a
// random position of the same range.
func scrambleBetween(perm []int, a, b int, rng *rand.Rand) {
	width := b - a + 1
	for i := a; i <= b; i++ {
		j := a + rng.Intn(width)
		perm[i], perm[j] = perm[j], perm[i]
	}
}
