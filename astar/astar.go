// Package astar implements A* search on immutable grids.
//
// Notes on implementation choices:
//
//   - Search nodes are stored in an arena slice; parent links are handles.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring entries whose cell is already closed.
//   - Frontier ties on f are broken by smaller h, then by insertion order,
//     which makes returned paths deterministic.
package astar

import (
	"container/heap"
	"math"
	"sync/atomic"

	"github.com/katalvlaran/lvroute/gridgraph"
)

// noParent is the predecessor handle of the start node.
const noParent = -1

// Pathfinder answers shortest-path queries on one grid.
// Construct one per grid and reuse it for the whole run so the cache pays off.
type Pathfinder struct {
	grid        *gridgraph.Grid
	diagonal    bool
	offsets     [][2]int
	regionCheck bool
	cache       *Cache
	searches    atomic.Uint64
}

// New binds a Pathfinder to grid.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. a cache given via WithCache must be unbound or bound to the same grid
//     and movement model (ErrCacheMismatch).
//
// Complexity: O(1).
func New(grid *gridgraph.Grid, opts ...Option) (*Pathfinder, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.diagonalSet {
		cfg.diagonal = grid.Conn == gridgraph.Conn8
	}
	if cfg.cache == nil {
		cfg.cache = NewCache()
	}
	if !cfg.cache.bind(grid, cfg.diagonal) {
		return nil, ErrCacheMismatch
	}

	offsets := grid.NeighborOffsets()
	switch {
	case cfg.diagonal && grid.Conn != gridgraph.Conn8:
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	case !cfg.diagonal && grid.Conn == gridgraph.Conn8:
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &Pathfinder{
		grid:     grid,
		diagonal: cfg.diagonal,
		offsets:  offsets,
		// Region labels prove unreachability only if the grid's connectivity
		// is at least as permissive as our movement.
		regionCheck: !cfg.diagonal || grid.Conn == gridgraph.Conn8,
		cache:       cfg.cache,
	}, nil
}

// Grid returns the grid this Pathfinder is bound to.
func (pf *Pathfinder) Grid() *gridgraph.Grid { return pf.grid }

// Diagonal reports whether diagonal movement is enabled.
func (pf *Pathfinder) Diagonal() bool { return pf.diagonal }

// FindPath returns the lowest-cost path from `from` to `to`.
// ok is false when no path exists, including when either endpoint is out of
// bounds or blocked. from == to yields a single-cell path of cost 0.
//
// The returned Cells slice is a fresh copy and may be modified by the caller.
func (pf *Pathfinder) FindPath(from, to gridgraph.Cell) (Path, bool) {
	k := pairKey{from: from, to: to}
	e, ok := pf.cache.load(k)
	if !ok {
		e = pf.cache.store(k, pf.compute(from, to))
	}
	if !e.found {
		return Path{Cost: math.Inf(1)}, false
	}

	return Path{Cells: append([]gridgraph.Cell(nil), e.cells...), Cost: e.cost}, true
}

// Distance returns the cost of the shortest path, or math.Inf(1) if none exists.
func (pf *Pathfinder) Distance(from, to gridgraph.Cell) float64 {
	k := pairKey{from: from, to: to}
	e, ok := pf.cache.load(k)
	if !ok {
		e = pf.cache.store(k, pf.compute(from, to))
	}
	if !e.found {
		return math.Inf(1)
	}

	return e.cost
}

// FindPathRC is FindPath with row/column arguments.
func (pf *Pathfinder) FindPathRC(startRow, startCol, goalRow, goalCol int) (Path, bool) {
	return pf.FindPath(gridgraph.Cell{Row: startRow, Col: startCol}, gridgraph.Cell{Row: goalRow, Col: goalCol})
}

// DistanceRC is Distance with row/column arguments.
func (pf *Pathfinder) DistanceRC(startRow, startCol, goalRow, goalCol int) float64 {
	return pf.Distance(gridgraph.Cell{Row: startRow, Col: startCol}, gridgraph.Cell{Row: goalRow, Col: goalCol})
}

// Stats returns a snapshot of cache and search counters.
func (pf *Pathfinder) Stats() Stats {
	return Stats{
		Entries:  pf.cache.Len(),
		Hits:     pf.cache.hits.Load(),
		Misses:   pf.cache.misses.Load(),
		Searches: pf.searches.Load(),
	}
}

// compute answers one uncached query.
func (pf *Pathfinder) compute(from, to gridgraph.Cell) cacheEntry {
	if !pf.grid.Walkable(from) || !pf.grid.Walkable(to) {
		return cacheEntry{}
	}
	if from == to {
		return cacheEntry{cells: []gridgraph.Cell{from}, found: true}
	}
	if pf.regionCheck && !pf.grid.SameRegion(from, to) {
		return cacheEntry{}
	}
	pf.searches.Add(1)

	return pf.search(from, to)
}

// heuristic estimates the remaining cost from c to goal.
func (pf *Pathfinder) heuristic(c, goal gridgraph.Cell) float64 {
	dr := math.Abs(float64(c.Row - goal.Row))
	dc := math.Abs(float64(c.Col - goal.Col))
	if !pf.diagonal {
		return dr + dc
	}
	lo, hi := math.Min(dr, dc), math.Max(dr, dc)

	return lo*diagonalCost + (hi - lo)
}

// node is one search node in the arena. parent is a handle into the arena.
type node struct {
	cell   gridgraph.Cell
	g, h   float64
	parent int
}

// search runs A* from start to goal. Both endpoints are walkable and distinct.
func (pf *Pathfinder) search(start, goal gridgraph.Cell) cacheEntry {
	grid := pf.grid
	total := grid.Rows * grid.Cols

	// bestG holds the best known cost per cell; closed marks finalized cells.
	bestG := make([]float64, total)
	for i := range bestG {
		bestG[i] = math.Inf(1)
	}
	closed := make([]bool, total)

	arena := make([]node, 0, 64)
	pq := make(frontier, 0, 64)
	var seq int

	push := func(n node) {
		arena = append(arena, n)
		heap.Push(&pq, frontierItem{f: n.g + n.h, h: n.h, seq: seq, handle: len(arena) - 1})
		seq++
	}

	bestG[grid.Index(start)] = 0
	push(node{cell: start, g: 0, h: pf.heuristic(start, goal), parent: noParent})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(frontierItem)
		cur := arena[item.handle]
		ci := grid.Index(cur.cell)

		// Stale entry for a cell whose cost is already final.
		if closed[ci] {
			continue
		}
		if cur.cell == goal {
			return cacheEntry{cells: reconstruct(arena, item.handle), cost: cur.g, found: true}
		}
		closed[ci] = true

		for _, d := range pf.offsets {
			next := gridgraph.Cell{Row: cur.cell.Row + d[0], Col: cur.cell.Col + d[1]}
			if !grid.Walkable(next) {
				continue
			}
			ni := grid.Index(next)
			if closed[ni] {
				continue
			}
			step := cardinalCost
			if d[0] != 0 && d[1] != 0 {
				step = diagonalCost
			}
			ng := cur.g + step
			if ng >= bestG[ni] {
				continue
			}
			bestG[ni] = ng
			push(node{cell: next, g: ng, h: pf.heuristic(next, goal), parent: item.handle})
		}
	}

	return cacheEntry{}
}

// reconstruct follows parent handles from the goal node back to the start
// and returns the cells in start→goal order.
func reconstruct(arena []node, goal int) []gridgraph.Cell {
	var n int
	for h := goal; h != noParent; h = arena[h].parent {
		n++
	}
	cells := make([]gridgraph.Cell, n)
	for h := goal; h != noParent; h = arena[h].parent {
		n--
		cells[n] = arena[h].cell
	}

	return cells
}

// frontierItem is a heap entry pointing at an arena node.
type frontierItem struct {
	f, h   float64
	seq    int
	handle int
}

// frontier is a min-heap of frontierItem ordered by f, then h, then seq.
type frontier []frontierItem

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; ties prefer smaller h, then earlier insertion.
func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	if pq[i].h != pq[j].h {
		return pq[i].h < pq[j].h
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type frontierItem.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(frontierItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the minimum there.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
