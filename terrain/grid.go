package terrain

import "fmt"

// neighborOffsets lists the admissible moves in their fixed expansion order:
// up, right, down, left.
var neighborOffsets = [4]Coord{{Row: -1}, {Col: 1}, {Row: 1}, {Col: -1}}

// Grid is an immutable rectangular map of terrain cells stored row-major.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid constructs a Grid from a non-empty, rectangular 2-D slice of kinds,
// indexed kinds[row][col]. The input is copied, so later changes to kinds do
// not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownKind on malformed input.
// Complexity: O(R×C) time and memory.
func NewGrid(kinds [][]Kind) (*Grid, error) {
	if len(kinds) == 0 || len(kinds[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(kinds), len(kinds[0])
	cells := make([]Cell, 0, rows*cols)
	for r, line := range kinds {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
		for c, k := range line {
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %v at %v", ErrUnknownKind, k, Coord{Row: r, Col: c})
			}
			cells = append(cells, Cell{Coord: Coord{Row: r, Col: c}, Kind: k})
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Uniform builds a rows×cols grid where every cell has kind k.
func Uniform(rows, cols int, k Kind) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	kinds := make([][]Kind, rows)
	for r := range kinds {
		kinds[r] = make([]Kind, cols)
		for c := range kinds[r] {
			kinds[r][c] = k
		}
	}
	return NewGrid(kinds)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// CellAt returns the cell at c, or ErrOutOfBounds if c lies outside the grid.
// Complexity: O(1).
func (g *Grid) CellAt(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v not in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return g.cells[g.index(c)], nil
}

// MustCellAt is like CellAt but panics on an out-of-bounds coordinate.
// Intended for coordinates that were already validated.
func (g *Grid) MustCellAt(c Coord) Cell {
	cell, err := g.CellAt(c)
	if err != nil {
		panic(err)
	}
	return cell
}

// Neighbors returns the in-bounds cells adjacent to c that are not members of
// excluded, in the order up, right, down, left. A nil excluded admits every
// in-bounds neighbor.
// Complexity: O(1) plus up to four excluded.Has calls.
func (g *Grid) Neighbors(c Coord, excluded Set) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if !g.InBounds(n) {
			continue
		}
		if excluded != nil && excluded.Has(n) {
			continue
		}
		out = append(out, g.cells[g.index(n)])
	}
	return out
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(Cell)) {
	for _, cell := range g.cells {
		fn(cell)
	}
}

// Kinds returns a fresh [row][col] copy of the grid's kinds.
func (g *Grid) Kinds() [][]Kind {
	out := make([][]Kind, g.rows)
	for r := range out {
		out[r] = make([]Kind, g.cols)
		for c := range out[r] {
			out[r][c] = g.cells[r*g.cols+c].Kind
		}
	}
	return out
}

// index maps c to its row-major index: row*cols + col.
func (g *Grid) index(c Coord) int {
	return c.Row*g.cols + c.Col
}
