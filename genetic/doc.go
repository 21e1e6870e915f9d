// Package genetic implements the evolutionary route optimizer: a
// permutation genetic algorithm with elitism and μ+λ replacement that
// searches for the cheapest order in which to visit a set of locations.
//
// What:
//
//   - The initial population holds PopulationSize random permutations of 1..N.
//   - Each generation copies the current best individual into the offspring
//     pool (elitism), then fills the pool to PopulationSize with children:
//     select two parents, cross them with probability CrossoverProb (else
//     copy them), mutate each child with probability MutationProb and
//     evaluate it.
//   - Replacement merges parents and offspring, sorts by fitness (stable)
//     and keeps the best PopulationSize. The best fitness and the worst
//     fitness of the population therefore never get worse.
//   - Metrics per generation: best, mean, worst and best-ever fitness.
//
// Selection:
//
//   - Roulette: probability ∝ 1/max(fitness, ε).
//   - Tournament: TournamentSize uniform draws with replacement, lowest
//     fitness wins. Fallback for unknown values.
//   - Ranking: linear rank weights P, P−1, …, 1 over the sorted population.
//   - Truncation: uniform pick from the better half.
//
// Determinism and cancellation:
//
//   - Every Run re-seeds its *rand.Rand from Options.Seed (0 ⇒ default seed),
//     so identical options give identical runs.
//   - Options.Ctx is polled between generations only. On cancellation Run
//     returns the best individual found so far together with ctx.Err().
//
// Observability:
//
//   - Options.OnGeneration is called after each generation with a
//     GenerationStats value stamped with the run's RunID.
//
// An Optimizer is not safe for concurrent use.
package genetic
