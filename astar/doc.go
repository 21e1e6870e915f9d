// Package astar provides an A* shortest-path search over a gridgraph.Grid,
// with a per-grid cache of every (start, goal) answer it has produced.
//
// Overview:
//
//   - A Pathfinder is bound to one immutable grid snapshot at construction.
//   - FindPath returns the lowest-cost cell sequence between two cells, or
//     reports that none exists. Distance returns its cost, or +Inf.
//   - Movement is 4-connected with unit steps, or 8-connected with √2
//     diagonal steps when diagonal movement is enabled. The flag is fixed
//     for the lifetime of the Pathfinder.
//
// Heuristics:
//
//   - Cardinal-only: Manhattan distance |dr| + |dc|.
//   - Diagonal: octile distance min(dr,dc)·√2 + (max(dr,dc) − min(dr,dc)).
//   - Both are admissible and consistent for their cost model, so the first
//     time the goal is popped from the frontier its cost is optimal.
//
// Key features:
//
//   - Lazy decrease-key: stale frontier entries are skipped when popped, a
//     best-known g-cost table prevents pushing non-improving entries.
//   - Node arena: search nodes live in one slice and refer to their
//     predecessor by integer handle, so reconstruction is index-chasing.
//   - Region pre-check: walkable cells in different grid regions are known
//     to be unreachable without running the search.
//   - Caching: every answer, including "no path", is stored under the exact
//     (start, goal) pair. The cache is never invalidated because the grid
//     never changes.
//
// Performance and complexity (per uncached query, V = R×C cells):
//
//   - Time:  O(V log V) worst case; typically far less thanks to the heuristic.
//   - Space: O(V) for the g-cost table, closed flags and node arena.
//   - Cached queries: O(1) map lookup plus O(L) path copy.
//
// Unreachable goals are not errors: FindPath returns ok=false and Distance
// returns math.Inf(1), never a finite sentinel.
//
// Thread safety:
//
//   - The grid is read-only. Each FindPath call owns its search state.
//   - The cache guards its map with a sync.RWMutex and inserts with
//     insert-if-absent semantics, so concurrent first queries of the same
//     pair agree on a single stored answer.
package astar
