package fitness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvroute/gridgraph"
	"github.com/katalvlaran/lvroute/operators"
)

// Evaluator prices routes over a fixed base and location set.
type Evaluator struct {
	pf    Pathfinder
	base  gridgraph.Cell
	cells []gridgraph.Cell // cells[id-1] is the cell of location id
	locs  []Location       // sorted by ID
}

// NewEvaluator validates the base and locations against pf's grid.
//
// Validation order:
//  1. pf non-nil (ErrNilPathfinder).
//  2. base walkable (ErrBaseBlocked).
//  3. at least one location (ErrNoLocations).
//  4. each ID in 1..N (ErrLocationID) and unique (ErrDuplicateLocation).
//  5. each cell walkable (ErrLocationBlocked).
//
// Complexity: O(N).
func NewEvaluator(pf Pathfinder, base gridgraph.Cell, locations []Location) (*Evaluator, error) {
	if pf == nil {
		return nil, ErrNilPathfinder
	}
	grid := pf.Grid()
	if !grid.Walkable(base) {
		return nil, fmt.Errorf("%w: %v", ErrBaseBlocked, base)
	}
	n := len(locations)
	if n == 0 {
		return nil, ErrNoLocations
	}

	cells := make([]gridgraph.Cell, n)
	locs := make([]Location, n)
	seen := make([]bool, n)
	for _, loc := range locations {
		if loc.ID < 1 || loc.ID > n {
			return nil, fmt.Errorf("%w: %d not in [1,%d]", ErrLocationID, loc.ID, n)
		}
		if seen[loc.ID-1] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateLocation, loc.ID)
		}
		if !grid.Walkable(loc.Cell) {
			return nil, fmt.Errorf("%w: location %d at %v", ErrLocationBlocked, loc.ID, loc.Cell)
		}
		seen[loc.ID-1] = true
		cells[loc.ID-1] = loc.Cell
		locs[loc.ID-1] = loc
	}

	return &Evaluator{pf: pf, base: base, cells: cells, locs: locs}, nil
}

// N returns the number of locations.
func (e *Evaluator) N() int { return len(e.cells) }

// Base returns the start and end cell of every itinerary.
func (e *Evaluator) Base() gridgraph.Cell { return e.base }

// Locations returns a copy of the locations ordered by ID.
func (e *Evaluator) Locations() []Location {
	return append([]Location(nil), e.locs...)
}

// Evaluate returns the fitness of route under mode; lower is better.
// Unknown modes score as Distance.
func (e *Evaluator) Evaluate(route []int, mode ScoringMode) (float64, error) {
	wps, err := e.Waypoints(route)
	if err != nil {
		return 0, err
	}
	if mode != DistancePlusSmoothness {
		var total float64
		for i := 1; i < len(wps); i++ {
			total += legCost(e.pf.Distance(wps[i-1], wps[i]))
		}

		return total, nil
	}

	chains, total, _ := e.chains(wps)
	var turns float64
	for _, c := range chains {
		turns += TurningPenalty(c)
	}

	return total + TurnWeight*turns, nil
}

// Waypoints returns base, the location cells in route order, then base.
func (e *Evaluator) Waypoints(route []int) ([]gridgraph.Cell, error) {
	if err := e.checkRoute(route); err != nil {
		return nil, err
	}
	wps := make([]gridgraph.Cell, 0, len(route)+2)
	wps = append(wps, e.base)
	for _, id := range route {
		wps = append(wps, e.cells[id-1])
	}

	return append(wps, e.base), nil
}

// FullPath returns the cell-by-cell itinerary of route, with the cell shared
// by consecutive legs kept once. complete is false if some leg has no path;
// such legs are left out and the returned cells then jump across them.
func (e *Evaluator) FullPath(route []int) (cells []gridgraph.Cell, complete bool, err error) {
	wps, err := e.Waypoints(route)
	if err != nil {
		return nil, false, err
	}
	chains, _, broken := e.chains(wps)
	for _, c := range chains {
		cells = append(cells, c...)
	}

	return cells, !broken, nil
}

// chains walks the legs between consecutive waypoints. It returns the
// maximal chains of reachable legs, each concatenated with shared boundary
// cells deduplicated, the summed leg cost, and whether any leg had no path.
func (e *Evaluator) chains(wps []gridgraph.Cell) (out [][]gridgraph.Cell, total float64, broken bool) {
	var chain []gridgraph.Cell
	for i := 1; i < len(wps); i++ {
		p, ok := e.pf.FindPath(wps[i-1], wps[i])
		total += legCost(p.Cost)
		if !ok {
			broken = true
			if len(chain) > 0 {
				out = append(out, chain)
			}
			chain = nil
			continue
		}
		if len(chain) > 0 && chain[len(chain)-1] == p.Cells[0] {
			chain = append(chain, p.Cells[1:]...)
		} else {
			chain = append(chain, p.Cells...)
		}
	}
	if len(chain) > 0 {
		out = append(out, chain)
	}

	return out, total, broken
}

// checkRoute verifies that route is a permutation of 1..N.
func (e *Evaluator) checkRoute(route []int) error {
	if len(route) != len(e.cells) {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidRoute, len(route), len(e.cells))
	}
	if err := operators.ValidatePermutation(route); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRoute, err)
	}

	return nil
}

// legCost maps +Inf (no path) to UnreachablePenalty.
func legCost(d float64) float64 {
	if math.IsInf(d, 1) {
		return UnreachablePenalty
	}

	return d
}

// TurningPenalty sums (1 − cos θ) over the interior cells of path, where θ
// is the angle between the incoming and outgoing step. Straight runs cost 0,
// a right angle costs 1 and a reversal costs 2. Zero-length steps are skipped.
func TurningPenalty(path []gridgraph.Cell) float64 {
	var penalty float64
	for k := 1; k+1 < len(path); k++ {
		ar, ac := float64(path[k].Row-path[k-1].Row), float64(path[k].Col-path[k-1].Col)
		br, bc := float64(path[k+1].Row-path[k].Row), float64(path[k+1].Col-path[k].Col)
		na, nb := math.Hypot(ar, ac), math.Hypot(br, bc)
		if na == 0 || nb == 0 {
			continue
		}
		cos := (ar*br + ac*bc) / (na * nb)
		cos = math.Max(-1, math.Min(1, cos))
		penalty += 1 - cos
	}

	return penalty
}
