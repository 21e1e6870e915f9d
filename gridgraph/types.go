// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvroute.
package gridgraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Cell addresses a single grid cell by row and column.
// Cell is comparable and is used directly as a map key.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// noRegion labels blocked cells in the region table.
const noRegion = -1

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// BlockThreshold specifies the minimum cell value considered "blocked".
	BlockThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// BlockThreshold=1 (0 is floor, anything ≥1 is a wall), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		BlockThreshold: 1,
		Conn:           Conn4,
	}
}

// Grid treats a 2D cell layout as a graph. It is immutable once built.
// Rows and Cols define dimensions; Conn is the connectivity used for
// neighbor offsets and region labeling.
// blocked and regions are row-major tables of size Rows×Cols.
type Grid struct {
	Rows, Cols      int
	Conn            Connectivity
	blocked         []bool
	regions         []int
	regionCount     int
	neighborOffsets [][2]int
}
