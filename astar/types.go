// Package astar defines core types, options and sentinel errors
// for the A* pathfinder.
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvroute/gridgraph"
)

// Sentinel errors returned by the astar constructors.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrCacheMismatch indicates that a Cache already bound to another grid or
	// another movement model was passed via WithCache.
	ErrCacheMismatch = errors.New("astar: cache is bound to a different grid or movement model")
)

// Step costs.
const (
	cardinalCost = 1.0
	diagonalCost = math.Sqrt2
)

// Path is an ordered sequence of cells from start to goal inclusive,
// together with its total movement cost.
type Path struct {
	Cells []gridgraph.Cell
	Cost  float64
}

// Len returns the number of cells in the path (steps + 1).
func (p Path) Len() int { return len(p.Cells) }

// Stats is a snapshot of a Pathfinder's cache and search counters.
type Stats struct {
	Entries  int    // cached (start, goal) answers, including no-path answers
	Hits     uint64 // queries answered from the cache
	Misses   uint64 // queries that had to be computed
	Searches uint64 // A* searches actually run (misses minus trivial answers)
}

// config collects the construction-time settings of a Pathfinder.
type config struct {
	diagonal    bool
	diagonalSet bool
	cache       *Cache
}

// Option configures a Pathfinder at construction.
type Option func(*config)

// WithDiagonal enables or disables 8-connected movement with √2 diagonal steps.
// When not given, diagonal movement follows the grid: enabled iff grid.Conn == Conn8.
func WithDiagonal(enabled bool) Option {
	return func(c *config) {
		c.diagonal = enabled
		c.diagonalSet = true
	}
}

// WithCache makes the Pathfinder use c instead of a private cache.
// A cache binds to the first grid and movement model that uses it; passing
// it to a Pathfinder for a different grid makes New return ErrCacheMismatch.
func WithCache(c *Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}
