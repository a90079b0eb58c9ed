package search_test

import (
	"fmt"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

// ExampleFindPath compares every strategy on a road ring around a stone block.
// Only the cost-aware strategies avoid the 1000-cost stones.
func ExampleFindPath() {
	g, _ := terrain.ParseRows([]string{
		"rrrrr",
		"rsssr",
		"rsssr",
		"rsssr",
		"rrrrr",
	})
	start, goal := terrain.Coord{Row: 2, Col: 0}, terrain.Coord{Row: 2, Col: 4}

	for _, k := range search.All() {
		p, err := search.FindPath(k, g, start, goal)
		if err != nil {
			fmt.Println(k, "error:", err)
			continue
		}
		fmt.Printf("%-16s cells=%d cost=%d\n", k, p.Len(), p.Cost())
	}
	// Output:
	// naive-direct     cells=5 cost=3002
	// greedy-backtrack cells=9 cost=16
	// frontier-average cells=5 cost=3002
	// uniform-cost     cells=9 cost=16
	// heuristic-guided cells=9 cost=16
}

// ExampleNew_uniformCost prints the optimal route on an open road grid.
func ExampleNew_uniformCost() {
	g, _ := terrain.Uniform(3, 3, terrain.Road)
	s, _ := search.New(search.UniformCost)

	p, _ := s.FindPath(g, terrain.Coord{}, terrain.Coord{Row: 2, Col: 2})
	fmt.Println(p.Coords(), p.Cost())
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)] 8
}
