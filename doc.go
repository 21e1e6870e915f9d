// Package lvroute plans the visiting order of a robot that must tour a set
// of rooms on a grid map and return to its base.
//
// 🚀 What is lvroute?
//
//	An in-memory route planner that brings together:
//		• Grid maps: walkable/blocked cells, 4- or 8-connectivity, sealed-room detection
//		• Shortest paths: A* with Manhattan or octile heuristic and a pair cache
//		• Route scoring: total distance, optionally plus a turning penalty
//		• Variation operators: 6 permutation crossovers and 6 mutations
//		• Evolutionary search: elitism, μ+λ replacement, per-generation metrics
//
// ✨ Why choose lvroute?
//
//   - Deterministic: every run is reproducible from its seed
//   - Fail-fast configuration: sentinel errors at construction time
//   - Unreachable rooms never crash a run; they are priced as penalties
//
// Under the hood, everything is organized under five subpackages:
//
//	gridgraph/  immutable grid snapshot, neighbor offsets, connected regions
//	astar/      A* pathfinder bound to one grid, with its path cache
//	fitness/    locations, base and the route Evaluator
//	operators/  crossover and mutation operators on permutations of 1..N
//	genetic/    the evolutionary Optimizer and its run metrics
//
// Quick start:
//
//	grid, _ := gridgraph.FromStrings(layout, '#', gridgraph.Conn4)
//	pf, _ := astar.New(grid)
//	opt, _ := genetic.New(pf, base, rooms, genetic.DefaultOptions())
//	res, _ := opt.Run()
//
// See examples/house_robot_route.go for a complete program.
package lvroute
