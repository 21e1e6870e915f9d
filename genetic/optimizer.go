package genetic

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/fitness"
	"github.com/katalvlaran/lvroute/gridgraph"
	"github.com/katalvlaran/lvroute/operators"
)

// Optimizer searches for a low-fitness visiting order of a fixed location set.
type Optimizer struct {
	opts Options
	pf   *astar.Pathfinder
	eval *fitness.Evaluator

	rng        *rand.Rand
	population []Individual // sorted by ascending fitness

	bestPerGen     []float64
	meanPerGen     []float64
	worstPerGen    []float64
	bestEverPerGen []float64
}

// New validates opts and builds the fitness evaluator for base and locations
// on pf's grid.
//
// Errors: ErrPopulationSize, ErrGenerations, ErrProbability,
// ErrTournamentSize, and the fitness.NewEvaluator configuration errors.
func New(pf *astar.Pathfinder, base gridgraph.Cell, locations []fitness.Location, opts Options) (*Optimizer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if pf == nil {
		return nil, fitness.ErrNilPathfinder
	}
	eval, err := fitness.NewEvaluator(pf, base, locations)
	if err != nil {
		return nil, err
	}
	if opts.Ctx == nil {
		opts.Ctx = context.Background()
	}

	return &Optimizer{opts: opts, pf: pf, eval: eval}, nil
}

// Evaluator returns the evaluator scoring this optimizer's routes.
func (o *Optimizer) Evaluator() *fitness.Evaluator { return o.eval }

// Run evolves Options.Generations generations and returns the best
// individual found. Metrics of any previous Run are discarded.
//
// If Options.Ctx is canceled, Run stops before the next generation and
// returns the best individual so far with ctx.Err().
func (o *Optimizer) Run() (Result, error) {
	res := Result{RunID: uuid.New()}
	o.rng = operators.NewRand(o.opts.Seed)
	o.bestPerGen = o.bestPerGen[:0]
	o.meanPerGen = o.meanPerGen[:0]
	o.worstPerGen = o.worstPerGen[:0]
	o.bestEverPerGen = o.bestEverPerGen[:0]

	if err := o.initPopulation(); err != nil {
		return res, err
	}
	bestEver := o.population[0].Fitness

	for gen := 0; gen < o.opts.Generations; gen++ {
		if err := o.opts.Ctx.Err(); err != nil {
			res.Best = o.population[0].Clone()
			return res, err
		}
		if err := o.step(); err != nil {
			return res, err
		}
		res.Generations++

		best, mean, worst := o.summary()
		bestEver = math.Min(bestEver, best)
		o.bestPerGen = append(o.bestPerGen, best)
		o.meanPerGen = append(o.meanPerGen, mean)
		o.worstPerGen = append(o.worstPerGen, worst)
		o.bestEverPerGen = append(o.bestEverPerGen, bestEver)

		if o.opts.OnGeneration != nil {
			o.opts.OnGeneration(GenerationStats{
				RunID:        res.RunID,
				Generation:   gen,
				Best:         best,
				Mean:         mean,
				Worst:        worst,
				BestEver:     bestEver,
				CacheEntries: o.pf.Stats().Entries,
			})
		}
	}
	res.Best = o.population[0].Clone()

	return res, nil
}

// initPopulation fills the population with random evaluated routes.
func (o *Optimizer) initPopulation() error {
	n := o.eval.N()
	o.population = make([]Individual, o.opts.PopulationSize)
	for i := range o.population {
		route := operators.RandomPermutation(n, o.rng)
		f, err := o.eval.Evaluate(route, o.opts.Scoring)
		if err != nil {
			return fmt.Errorf("genetic: evaluate initial route: %w", err)
		}
		o.population[i] = Individual{Route: route, Fitness: f}
	}
	sortByFitness(o.population)

	return nil
}

// step performs one generation: elitism, offspring production and μ+λ
// replacement.
func (o *Optimizer) step() error {
	size := o.opts.PopulationSize
	offspring := make([]Individual, 0, size)
	offspring = append(offspring, o.population[0].Clone())

	for len(offspring) < size {
		a := o.population[selectParent(o.opts.Selection, o.population, o.opts.TournamentSize, o.rng)]
		b := o.population[selectParent(o.opts.Selection, o.population, o.opts.TournamentSize, o.rng)]

		var c1, c2 []int
		if o.rng.Float64() < o.opts.CrossoverProb {
			c1, c2 = operators.Cross(o.opts.Crossover, a.Route, b.Route, o.rng)
		} else {
			c1 = append([]int(nil), a.Route...)
			c2 = append([]int(nil), b.Route...)
		}

		for _, child := range [][]int{c1, c2} {
			if len(offspring) == size {
				break
			}
			if o.rng.Float64() < o.opts.MutationProb {
				operators.Mutate(o.opts.Mutation, child, o.rng)
			}
			f, err := o.eval.Evaluate(child, o.opts.Scoring)
			if err != nil {
				return fmt.Errorf("genetic: evaluate offspring: %w", err)
			}
			offspring = append(offspring, Individual{Route: child, Fitness: f})
		}
	}

	merged := make([]Individual, 0, 2*size)
	merged = append(merged, o.population...)
	merged = append(merged, offspring...)
	sortByFitness(merged)
	o.population = merged[:size:size]

	return nil
}

// summary returns the best, mean and worst fitness of the sorted population.
func (o *Optimizer) summary() (best, mean, worst float64) {
	var sum float64
	for _, ind := range o.population {
		sum += ind.Fitness
	}

	return o.population[0].Fitness, sum / float64(len(o.population)), o.population[len(o.population)-1].Fitness
}

func sortByFitness(pop []Individual) {
	slices.SortStableFunc(pop, func(a, b Individual) int {
		return cmp.Compare(a.Fitness, b.Fitness)
	})
}

// BestPerGeneration returns the best fitness of each completed generation.
func (o *Optimizer) BestPerGeneration() []float64 { return slices.Clone(o.bestPerGen) }

// MeanPerGeneration returns the mean fitness of each completed generation.
func (o *Optimizer) MeanPerGeneration() []float64 { return slices.Clone(o.meanPerGen) }

// WorstPerGeneration returns the worst fitness of each completed generation.
func (o *Optimizer) WorstPerGeneration() []float64 { return slices.Clone(o.worstPerGen) }

// BestEverPerGeneration returns the running best fitness after each
// completed generation. The sequence is non-increasing.
func (o *Optimizer) BestEverPerGeneration() []float64 { return slices.Clone(o.bestEverPerGen) }

// Population returns a deep copy of the current population, best first.
func (o *Optimizer) Population() []Individual {
	out := make([]Individual, len(o.population))
	for i, ind := range o.population {
		out[i] = ind.Clone()
	}

	return out
}
