// Package fitness scores candidate routes for the grid route planner.
//
// A route is a permutation of location IDs 1..N. Its itinerary starts at the
// base, visits every location in route order and returns to the base. The
// Evaluator prices each consecutive leg with the shortest grid distance
// reported by a Pathfinder (see package astar). Lower fitness is better.
//
// Scoring modes:
//
//   - Distance: sum of leg distances. A leg with no path adds
//     UnreachablePenalty instead of failing, so infeasible routes still rank.
//   - DistancePlusSmoothness: Distance plus TurnWeight × the turning penalty
//     of the concatenated cell-by-cell itinerary, where each interior cell
//     contributes (1 − cos θ) for the angle θ between its incoming and
//     outgoing steps. Straighter routes win among equally short ones.
//
// Errors:
//
//   - NewEvaluator fails fast on configuration problems (ErrNilPathfinder,
//     ErrBaseBlocked, ErrNoLocations, ErrLocationID, ErrDuplicateLocation,
//     ErrLocationBlocked).
//   - Evaluate returns ErrInvalidRoute for a route that is not a permutation
//     of the configured IDs. Unreachable legs are never errors.
//
// The only side effect of evaluation is populating the Pathfinder's cache.
// An Evaluator is safe for concurrent use when its Pathfinder is.
package fitness
