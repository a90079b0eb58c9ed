// Package trailseek computes routes for actors across a 2-D terrain grid.
//
// Each terrain cell has a fixed traversal cost, and each actor is bound to
// one of five search strategies. The strategies share one cost model and
// neighbor order and return the same result: the ordered cells from the
// actor's position to the goal.
//
// Everything is organized into subpackages:
//
//	terrain/ : terrain kinds and costs, coordinates, the immutable Grid, neighbor order, map parsing
//	pathtree/: arena of parent links used to rebuild a route after a search
//	search/  : the five strategies, Path, options and hooks
//	fleet/   : actors bound to strategies, parallel planning, stepping along a path
//	scenario/: YAML scenario files (map, goal, actors)
//	render/  : ASCII and PNG trails
//
// Quick example:
//
//	g, _ := terrain.ParseRows([]string{"rrr", "rsr", "rrr"})
//	p, err := search.FindPath(search.HeuristicGuided, g,
//		terrain.Coord{Row: 1, Col: 0}, terrain.Coord{Row: 1, Col: 2})
//
// returns the cheapest route around the stone in the middle.
//
//	go install github.com/katalvlaran/trailseek/cmd/trailseek@latest
package trailseek
