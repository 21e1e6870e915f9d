// Package astar_test provides brute-force reference searches shared across
// the pathfinder tests. They are deliberately naive so they are easy to trust.
package astar_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvroute/gridgraph"
)

// bfsDistance computes the true cardinal step count from a to b, or -1.
func bfsDistance(g *gridgraph.Grid, a, b gridgraph.Cell) int {
	if !g.Walkable(a) || !g.Walkable(b) {
		return -1
	}
	dist := map[gridgraph.Cell]int{a: 0}
	queue := []gridgraph.Cell{a}
	dirs := [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return dist[u]
		}
		for _, d := range dirs {
			v := gridgraph.Cell{Row: u.Row + d[0], Col: u.Col + d[1]}
			if _, seen := dist[v]; seen || !g.Walkable(v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return -1
}

// octileDijkstra computes the true 8-connected cost from a to b with an
// O(V²) array-scan Dijkstra, or +Inf.
func octileDijkstra(g *gridgraph.Grid, a, b gridgraph.Cell) float64 {
	if !g.Walkable(a) || !g.Walkable(b) {
		return math.Inf(1)
	}
	n := g.Rows * g.Cols
	dist := make([]float64, n)
	done := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[g.Index(a)] = 0
	for {
		u := -1
		for i := 0; i < n; i++ {
			if !done[i] && !math.IsInf(dist[i], 1) && (u < 0 || dist[i] < dist[u]) {
				u = i
			}
		}
		if u < 0 {
			return math.Inf(1)
		}
		if u == g.Index(b) {
			return dist[u]
		}
		done[u] = true
		uc := g.Coordinate(u)
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				v := gridgraph.Cell{Row: uc.Row + dr, Col: uc.Col + dc}
				if !g.Walkable(v) {
					continue
				}
				w := 1.0
				if dr != 0 && dc != 0 {
					w = math.Sqrt2
				}
				if vi := g.Index(v); dist[u]+w < dist[vi] {
					dist[vi] = dist[u] + w
				}
			}
		}
	}
}

// randomGrid builds a rows×cols grid with roughly wallPct percent walls.
func randomGrid(rng *rand.Rand, rows, cols, wallPct int, conn gridgraph.Connectivity) *gridgraph.Grid {
	values := make([][]int, rows)
	for r := range values {
		values[r] = make([]int, cols)
		for c := range values[r] {
			if rng.Intn(100) < wallPct {
				values[r][c] = 1
			}
		}
	}
	g, err := gridgraph.From2D(values, conn)
	if err != nil {
		panic(err)
	}

	return g
}

// allCells lists every cell of g in row-major order.
func allCells(g *gridgraph.Grid) []gridgraph.Cell {
	cells := make([]gridgraph.Cell, 0, g.Rows*g.Cols)
	for i := 0; i < g.Rows*g.Cols; i++ {
		cells = append(cells, g.Coordinate(i))
	}

	return cells
}

// cell is a short constructor for test tables.
func cell(r, c int) gridgraph.Cell { return gridgraph.Cell{Row: r, Col: c} }
