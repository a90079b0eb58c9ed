package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

// Text writes g as rows of kind codes, replacing every cell on p with its
// step number (the start is step 0). Columns are padded to a common width.
func Text(w io.Writer, g *terrain.Grid, p search.Path) error {
	steps := stepIndex(p)
	width := len(strconv.Itoa(max(len(p)-1, 0)))

	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			coord := terrain.Coord{Row: r, Col: c}
			label := string(g.MustCellAt(coord).Kind.Code())
			if i, ok := steps[coord]; ok {
				label = strconv.Itoa(i)
			}
			if c > 0 {
				_ = bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%*s", width, label)
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// stepIndex maps each coordinate on p to its position in p.
func stepIndex(p search.Path) map[terrain.Coord]int {
	steps := make(map[terrain.Coord]int, len(p))
	for i, cell := range p {
		steps[cell.Coord] = i
	}
	return steps
}
