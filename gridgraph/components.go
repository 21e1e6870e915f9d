package gridgraph

// labelRegions assigns every walkable cell the index of its connected region
// under g.Conn. Blocked cells get noRegion. Called once from build.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for labels and the BFS queue.
func (g *Grid) labelRegions() {
	total := g.Rows * g.Cols
	g.regions = make([]int, total)
	for i := range g.regions {
		g.regions[i] = noRegion
	}

	queue := make([]int, 0, total)
	label := 0
	for i0 := 0; i0 < total; i0++ {
		if g.blocked[i0] || g.regions[i0] != noRegion {
			continue
		}
		// BFS flood fill from i0
		queue = append(queue[:0], i0)
		g.regions[i0] = label
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range g.neighborOffsets {
				v := Cell{Row: u.Row + d[0], Col: u.Col + d[1]}
				if !g.Walkable(v) {
					continue
				}
				vi := g.Index(v)
				if g.regions[vi] == noRegion {
					g.regions[vi] = label
					queue = append(queue, vi)
				}
			}
		}
		label++
	}
	g.regionCount = label
}

// ConnectedComponents returns all contiguous regions of walkable cells,
// according to g.Conn. Each component is a slice of row-major cell indices
// in ascending order; components are ordered by their smallest index.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(R·C).
// Memory: O(R·C) for the output.
func (g *Grid) ConnectedComponents() [][]int {
	comps := make([][]int, g.regionCount)
	for i, label := range g.regions {
		if label == noRegion {
			continue
		}
		comps[label] = append(comps[label], i)
	}

	return comps
}

// Region returns the region label of c, or -1 if c is blocked or out of bounds.
// Complexity: O(1).
func (g *Grid) Region(c Cell) int {
	if !g.InBounds(c) {
		return noRegion
	}

	return g.regions[g.Index(c)]
}

// SameRegion reports whether a and b are walkable cells of the same region.
// A false result for two walkable cells proves no path joins them under g.Conn.
// Complexity: O(1).
func (g *Grid) SameRegion(a, b Cell) bool {
	ra := g.Region(a)

	return ra != noRegion && ra == g.Region(b)
}
