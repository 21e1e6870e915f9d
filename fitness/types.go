package fitness

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/astar"
	"github.com/katalvlaran/lvroute/gridgraph"
)

// Sentinel errors returned by NewEvaluator and Evaluate.
var (
	// ErrNilPathfinder indicates that NewEvaluator received a nil Pathfinder.
	ErrNilPathfinder = errors.New("fitness: pathfinder is nil")

	// ErrNoLocations indicates an empty location list.
	ErrNoLocations = errors.New("fitness: no locations")

	// ErrLocationID indicates a location ID outside 1..N.
	ErrLocationID = errors.New("fitness: location ID out of range")

	// ErrDuplicateLocation indicates two locations sharing one ID.
	ErrDuplicateLocation = errors.New("fitness: duplicate location ID")

	// ErrLocationBlocked indicates a location placed out of bounds or on a blocked cell.
	ErrLocationBlocked = errors.New("fitness: location is not on a walkable cell")

	// ErrBaseBlocked indicates a base out of bounds or on a blocked cell.
	ErrBaseBlocked = errors.New("fitness: base is not on a walkable cell")

	// ErrInvalidRoute indicates a route that is not a permutation of 1..N.
	ErrInvalidRoute = errors.New("fitness: invalid route")
)

const (
	// UnreachablePenalty is the fitness added for a leg with no path.
	UnreachablePenalty = 1e6

	// TurnWeight scales the turning penalty in DistancePlusSmoothness mode.
	TurnWeight = 10.0
)

// Pathfinder is the subset of *astar.Pathfinder the Evaluator needs.
type Pathfinder interface {
	Grid() *gridgraph.Grid
	Distance(from, to gridgraph.Cell) float64
	FindPath(from, to gridgraph.Cell) (astar.Path, bool)
}

// Location is one place the robot must visit.
// ID is in 1..N and unique; Name is opaque to the planner.
type Location struct {
	ID   int
	Name string
	Cell gridgraph.Cell
}

// ScoringMode selects how a route is priced.
type ScoringMode int

const (
	// Distance sums leg distances. It is also the fallback for unknown values.
	Distance ScoringMode = iota

	// DistancePlusSmoothness adds TurnWeight × turning penalty to Distance.
	DistancePlusSmoothness
)

// String returns "distance", "smoothness" or "scoring(<n>)".
func (m ScoringMode) String() string {
	switch m {
	case Distance:
		return "distance"
	case DistancePlusSmoothness:
		return "smoothness"
	default:
		return fmt.Sprintf("scoring(%d)", int(m))
	}
}

// ParseScoringMode maps "distance" or "smoothness" (case-insensitive) to a
// ScoringMode. Unknown names return Distance and an error.
func ParseScoringMode(s string) (ScoringMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "distance":
		return Distance, nil
	case "smoothness", "distance+smoothness":
		return DistancePlusSmoothness, nil
	default:
		return Distance, fmt.Errorf("fitness: unknown scoring mode %q", s)
	}
}
