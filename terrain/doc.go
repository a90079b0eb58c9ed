// Package terrain models a finite, rectangular 2-D map of terrain cells,
// each carrying a fixed traversal cost.
//
// What:
//
//   - Kind enumerates the terrain kinds and acts as the cost lookup key
//     (the terrain catalog): stone=1000, water=500, dune=7, mud=5, grass=3, road=2.
//   - Coord is a (row, col) position, comparable by value.
//   - Cell is an immutable {Coord, Kind} pair; its cost comes from its Kind.
//   - Grid is an immutable row-major array of cells built once from a
//     [][]Kind or from a textual map description (Parse).
//   - Grid.Neighbors yields the adjacent, non-excluded cells in the fixed
//     order up, right, down, left. Every search strategy breaks score ties
//     with this order, so it must never change.
//
// Every cell is traversable; a high cost makes a cell expensive, not a wall.
//
// Complexity:
//
//   - NewGrid, Parse: O(R×C) time and memory.
//   - CellAt, InBounds: O(1).
//   - Neighbors:        O(1) grid work plus up to four Set lookups.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownKind:    a kind value or map letter is not in the catalog.
//   - ErrOutOfBounds:    a coordinate lies outside the grid.
//
// A Grid is never mutated after construction, so any number of goroutines
// may read it concurrently.
package terrain
