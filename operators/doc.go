// Package operators provides permutation-preserving variation operators for
// route optimization: six crossovers and six mutations over permutations of
// the location IDs 1..N.
//
// What:
//
//   - Crossover (two parents → two children): PMX, OX, CX,
//     SegmentRecombination, OrderBased, EdgeRecombination.
//   - Mutation (one permutation, in place): Insertion, Swap, Inversion,
//     Heuristic, HalfSwap, Scramble.
//   - Cross and Mutate dispatch on closed enums; an unknown Crossover falls
//     back to PMX and an unknown Mutation falls back to Swap.
//
// Invariant:
//
//   - Every output is a permutation of 1..N whenever the inputs are.
//     Crossover never modifies its parents.
//
// Randomness:
//
//   - All operators draw from the *rand.Rand passed by the caller. NewRand
//     builds one from a seed (0 ⇒ fixed default seed), so runs are reproducible.
//     A *rand.Rand is not goroutine-safe; give each goroutine its own.
//
// Degenerate sizes:
//
//   - N=0 yields empty children; with N=1 every operator is a no-op.
//
// Complexity:
//
//   - PMX, OX, CX, SegmentRecombination, OrderBased: O(N) time, O(N) space.
//   - EdgeRecombination: O(N²) worst case (random fallback scans), O(N) space.
//   - Mutations: O(N) time, O(1) extra space.
package operators
