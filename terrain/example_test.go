package terrain_test

import (
	"fmt"

	"github.com/katalvlaran/trailseek/terrain"
)

// ExampleGrid_Neighbors shows the fixed up, right, down, left expansion order.
func ExampleGrid_Neighbors() {
	g, _ := terrain.ParseRows([]string{
		"rgr",
		"msw",
		"rdr",
	})
	for _, cell := range g.Neighbors(terrain.Coord{Row: 1, Col: 1}, nil) {
		fmt.Printf("%v %s cost=%d\n", cell.Coord, cell.Kind, cell.Cost())
	}
	// Output:
	// (0,1) grass cost=3
	// (1,2) water cost=500
	// (2,1) dune cost=7
	// (1,0) mud cost=5
}
