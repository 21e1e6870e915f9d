// Package gridgraph treats a fixed 2D grid of walkable and blocked cells as
// a graph, the read-only map snapshot consumed by the route planner.
//
// What:
//
//   - Grid wraps a rectangular [][]int layout with a tunable BlockThreshold.
//   - Cells with value ≥ BlockThreshold are blocked ("walls"); all others are walkable.
//   - Neighbor offsets are precomputed for 4- or 8-connectivity (Conn4 / Conn8).
//   - Connected walkable regions are labeled once at construction, so two cells
//     in different regions are known to be mutually unreachable in O(1).
//
// Why:
//
//   - Path planning: a pathfinder needs bounds, walkability and neighbors only.
//   - Fail-fast validation: a location placed on a wall is a configuration error.
//   - Reachability: sealed rooms are detected without running a search.
//
// Complexity:
//
//   - NewGrid:             O(R×C×d), Memory: O(R×C)    (d = 4 or 8 neighbors).
//   - ConnectedComponents: O(R×C),   Memory: O(R×C).
//   - Walkable/Region:     O(1).
//
// Options:
//
//   - GridOptions.BlockThreshold: minimum value considered "blocked".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//
// A Grid is immutable once built and safe for concurrent readers.
package gridgraph
