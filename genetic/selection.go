package genetic

import (
	"math"
	"math/rand"
)

// selectParent returns the index of a parent in pop, which is sorted by
// ascending fitness.
func selectParent(method SelectionMethod, pop []Individual, tournamentSize int, rng *rand.Rand) int {
	switch method {
	case Roulette:
		return roulette(pop, rng)
	case Tournament:
		return tournament(pop, tournamentSize, rng)
	case Ranking:
		return ranking(len(pop), rng)
	case Truncation:
		return truncation(len(pop), rng)
	default:
		return tournament(pop, tournamentSize, rng)
	}
}

// roulette samples with weight 1/max(fitness, rouletteEps) by
// cumulative-sum search against one uniform draw.
func roulette(pop []Individual, rng *rand.Rand) int {
	var total float64
	for _, ind := range pop {
		total += 1 / math.Max(ind.Fitness, rouletteEps)
	}
	r := rng.Float64() * total
	var acc float64
	for i, ind := range pop {
		acc += 1 / math.Max(ind.Fitness, rouletteEps)
		if r < acc {
			return i
		}
	}

	return len(pop) - 1
}

// tournament draws k indices uniformly with replacement and keeps the fittest.
func tournament(pop []Individual, k int, rng *rand.Rand) int {
	best := rng.Intn(len(pop))
	for i := 1; i < k; i++ {
		c := rng.Intn(len(pop))
		if pop[c].Fitness < pop[best].Fitness {
			best = c
		}
	}

	return best
}

// ranking draws rank i (0 = fittest) with weight n−i.
func ranking(n int, rng *rand.Rand) int {
	total := n * (n + 1) / 2
	r := rng.Intn(total)
	for i := 0; i < n; i++ {
		r -= n - i
		if r < 0 {
			return i
		}
	}

	return n - 1
}

// truncation draws uniformly from the first ⌈n/2⌉ ranks.
func truncation(n int, rng *rand.Rand) int {
	return rng.Intn((n + 1) / 2)
}
