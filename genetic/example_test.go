package genetic_test

import (
	"fmt"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/fitness"
	"github.com/katalvlaran/lvroute/genetic"
	"github.com/katalvlaran/lvroute/gridgraph"
)

// ExampleOptimizer_Run plans a visit to two corners of a 5×5 room with a
// pillar in the middle. Both orders cost 16, so the answer is stable.
func ExampleOptimizer_Run() {
	g, _ := gridgraph.FromStrings([]string{
		".....",
		".....",
		"..#..",
		".....",
		".....",
	}, '#', gridgraph.Conn4)
	pf, _ := astar.New(g)

	opts := genetic.DefaultOptions()
	opts.PopulationSize = 4
	opts.Generations = 5
	opt, _ := genetic.New(pf, gridgraph.Cell{}, []fitness.Location{
		{ID: 1, Name: "desk", Cell: gridgraph.Cell{Row: 0, Col: 4}},
		{ID: 2, Name: "sofa", Cell: gridgraph.Cell{Row: 4, Col: 0}},
	}, opts)

	res, _ := opt.Run()
	fmt.Println("fitness:", res.Best.Fitness, "generations:", res.Generations)
	fmt.Println("best-ever:", opt.BestEverPerGeneration())

	// Output:
	// fitness: 16 generations: 5
	// best-ever: [16 16 16 16 16]
}
