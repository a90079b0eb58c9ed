// Package scenario decodes a declarative scenario: a terrain map, a goal and
// the actors that must reach it.
//
// Scenarios are YAML documents:
//
//	map:
//	  - rrrrr
//	  - rsssr
//	  - rrrrr
//	goal: {row: 1, col: 4}
//	max_steps: 100000
//	actors:
//	  - name: Draza                 # strategy inferred from the agent name
//	    start: {row: 1, col: 0}
//	  - name: scout
//	    strategy: heuristic-guided
//	    start: {row: 0, col: 0}
//
// Map rows use the terrain.Kind codes. Unknown fields are rejected.
package scenario
