package genetic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvroute/fitness"
	"github.com/katalvlaran/lvroute/operators"
)

// Sentinel errors returned by New.
var (
	// ErrPopulationSize indicates PopulationSize < 1.
	ErrPopulationSize = errors.New("genetic: population size must be at least 1")

	// ErrGenerations indicates Generations < 1.
	ErrGenerations = errors.New("genetic: generations must be at least 1")

	// ErrProbability indicates a crossover or mutation probability outside [0,1].
	ErrProbability = errors.New("genetic: probability must be in [0,1]")

	// ErrTournamentSize indicates TournamentSize < 1.
	ErrTournamentSize = errors.New("genetic: tournament size must be at least 1")
)

// rouletteEps bounds roulette weights 1/fitness for zero-cost routes.
const rouletteEps = 1e-9

// SelectionMethod selects how parents are drawn from the population.
type SelectionMethod int

const (
	// Roulette draws with probability proportional to 1/fitness.
	Roulette SelectionMethod = iota

	// Tournament returns the fittest of TournamentSize uniform draws.
	// It is also the fallback for unknown values.
	Tournament

	// Ranking draws with linear weights over fitness rank.
	Ranking

	// Truncation draws uniformly from the better half.
	Truncation
)

var selectionNames = [...]string{"roulette", "tournament", "ranking", "truncation"}

// String returns the lowercase name of s.
func (s SelectionMethod) String() string {
	if s < 0 || int(s) >= len(selectionNames) {
		return fmt.Sprintf("selection(%d)", int(s))
	}

	return selectionNames[s]
}

// ParseSelection maps a name produced by String (case-insensitive) back to
// its SelectionMethod. Unknown names return Tournament and an error.
func ParseSelection(name string) (SelectionMethod, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range selectionNames {
		if n == name {
			return SelectionMethod(i), nil
		}
	}

	return Tournament, fmt.Errorf("genetic: unknown selection method %q", name)
}

// Options configures an Optimizer.
//
// PopulationSize – individuals per generation (≥ 1).
// Generations    – number of generations to run (≥ 1).
// CrossoverProb  – probability that a parent pair is crossed, in [0,1].
// MutationProb   – per-child mutation probability, in [0,1].
// TournamentSize – draws per tournament (≥ 1).
// Seed           – RNG seed; 0 ⇒ fixed default seed.
// Ctx            – polled between generations; nil ⇒ context.Background().
// OnGeneration   – optional hook called after every generation.
type Options struct {
	PopulationSize int
	Generations    int
	CrossoverProb  float64
	MutationProb   float64
	TournamentSize int

	Scoring   fitness.ScoringMode
	Selection SelectionMethod
	Crossover operators.Crossover
	Mutation  operators.Mutation

	Seed         int64
	Ctx          context.Context
	OnGeneration func(GenerationStats)
}

// DefaultOptions returns population 50, 300 generations, crossover 0.8,
// mutation 0.3, tournament size 3, Distance scoring, Tournament selection,
// PMX crossover, Swap mutation and seed 0.
func DefaultOptions() Options {
	return Options{
		PopulationSize: 50,
		Generations:    300,
		CrossoverProb:  0.8,
		MutationProb:   0.3,
		TournamentSize: 3,
		Scoring:        fitness.Distance,
		Selection:      Tournament,
		Crossover:      operators.PMX,
		Mutation:       operators.Swap,
	}
}

// validate checks numeric ranges. Enum values are never rejected: unknown
// ones fall back to their documented defaults.
func (o Options) validate() error {
	if o.PopulationSize < 1 {
		return fmt.Errorf("%w: got %d", ErrPopulationSize, o.PopulationSize)
	}
	if o.Generations < 1 {
		return fmt.Errorf("%w: got %d", ErrGenerations, o.Generations)
	}
	if !validProb(o.CrossoverProb) {
		return fmt.Errorf("%w: crossover %v", ErrProbability, o.CrossoverProb)
	}
	if !validProb(o.MutationProb) {
		return fmt.Errorf("%w: mutation %v", ErrProbability, o.MutationProb)
	}
	if o.TournamentSize < 1 {
		return fmt.Errorf("%w: got %d", ErrTournamentSize, o.TournamentSize)
	}

	return nil
}

func validProb(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// Individual is one candidate route and its fitness (lower is better).
type Individual struct {
	Route   []int
	Fitness float64
}

// Clone returns a deep copy of ind.
func (ind Individual) Clone() Individual {
	return Individual{Route: append([]int(nil), ind.Route...), Fitness: ind.Fitness}
}

// GenerationStats is passed to Options.OnGeneration after each generation.
type GenerationStats struct {
	RunID        uuid.UUID
	Generation   int // 0-based
	Best         float64
	Mean         float64
	Worst        float64
	BestEver     float64
	CacheEntries int // pathfinder cache size after the generation
}

// Result is the outcome of one Run.
type Result struct {
	RunID       uuid.UUID
	Best        Individual
	Generations int // generations completed
}
