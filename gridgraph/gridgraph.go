// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Walkability queries with bounds checking
//   - Identification of connected regions of walkable cells
//
// Cells with value < BlockThreshold are walkable; cells with value ≥ BlockThreshold are blocked.
package gridgraph

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It copies the input to ensure immutability and labels walkable regions.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(R×C×d) time and O(R×C) memory.
func NewGrid(values [][]int, opts GridOptions) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(values), len(values[0])
	for _, row := range values {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	blocked := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			blocked[r*cols+c] = values[r][c] >= opts.BlockThreshold
		}
	}

	return build(rows, cols, blocked, opts.Conn), nil
}

// From2D is a shortcut for NewGrid with BlockThreshold=1 and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*Grid, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGrid(values, opts)
}

// FromStrings builds a Grid from a textual layout, one string per row.
// Every rune equal to wall is blocked; any other rune is walkable.
// Rows are measured in runes, so multi-byte wall glyphs such as '■' work.
func FromStrings(rows []string, wall rune, conn Connectivity) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len([]rune(rows[0]))
	blocked := make([]bool, 0, len(rows)*cols)
	for _, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, ErrNonRectangular
		}
		for _, ch := range runes {
			blocked = append(blocked, ch == wall)
		}
	}

	return build(len(rows), cols, blocked, conn), nil
}

// build finishes construction: offsets first, then region labels.
func build(rows, cols int, blocked []bool, conn Connectivity) *Grid {
	var offsets [][2]int
	if conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	} else {
		conn = Conn4
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}
	g := &Grid{
		Rows:            rows,
		Cols:            cols,
		Conn:            conn,
		blocked:         blocked,
		neighborOffsets: offsets,
	}
	g.labelRegions()

	return g
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Walkable reports whether c is inside the grid and not blocked.
// Complexity: O(1).
func (g *Grid) Walkable(c Cell) bool {
	return g.InBounds(c) && !g.blocked[g.Index(c)]
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets for g.Conn.
// The returned slice must not be modified.
// Complexity: O(1).
func (g *Grid) NeighborOffsets() [][2]int {
	return g.neighborOffsets
}

// Index maps c to a row‑major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}

// WalkableCount returns the number of walkable cells.
// Complexity: O(R×C).
func (g *Grid) WalkableCount() int {
	n := 0
	for _, b := range g.blocked {
		if !b {
			n++
		}
	}

	return n
}
