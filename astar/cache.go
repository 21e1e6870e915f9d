package astar

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/lvroute/gridgraph"
)

// pairKey identifies one query by its exact endpoints.
type pairKey struct {
	from, to gridgraph.Cell
}

// cacheEntry is one stored answer. found=false is the no-path marker.
type cacheEntry struct {
	cells []gridgraph.Cell
	cost  float64
	found bool
}

// Cache maps (start, goal) pairs to previously computed answers.
// It is populated lazily and never invalidated: correctness depends on the
// bound grid being immutable.
//
// muEntries guards entries and the binding fields; counters are atomic.
type Cache struct {
	muEntries sync.RWMutex
	entries   map[pairKey]cacheEntry

	grid     *gridgraph.Grid
	diagonal bool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache returns an empty, unbound Cache.
// Complexity: O(1).
func NewCache() *Cache {
	return &Cache{entries: make(map[pairKey]cacheEntry)}
}

// bind ties c to grid and movement model on first use and reports whether
// the binding matches on later uses.
func (c *Cache) bind(grid *gridgraph.Grid, diagonal bool) bool {
	c.muEntries.Lock()
	defer c.muEntries.Unlock()
	if c.grid == nil {
		c.grid = grid
		c.diagonal = diagonal

		return true
	}

	return c.grid == grid && c.diagonal == diagonal
}

// load returns the stored answer for k, counting a hit or a miss.
func (c *Cache) load(k pairKey) (cacheEntry, bool) {
	c.muEntries.RLock()
	e, ok := c.entries[k]
	c.muEntries.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}

	return e, ok
}

// store inserts e under k unless an answer is already present, and returns
// whichever answer ends up stored. Racing first queries therefore agree.
func (c *Cache) store(k pairKey, e cacheEntry) cacheEntry {
	c.muEntries.Lock()
	defer c.muEntries.Unlock()
	if prev, ok := c.entries[k]; ok {
		return prev
	}
	c.entries[k] = e

	return e
}

// Len returns the number of cached answers.
func (c *Cache) Len() int {
	c.muEntries.RLock()
	defer c.muEntries.RUnlock()

	return len(c.entries)
}
