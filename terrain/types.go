package terrain

import "fmt"

// Kind identifies a terrain type. The zero value is not a valid kind.
type Kind uint8

const (
	// Stone is nearly impassable rock.
	Stone Kind = iota + 1
	// Water is deep water.
	Water
	// Dune is loose sand.
	Dune
	// Mud is soft ground.
	Mud
	// Grass is open meadow.
	Grass
	// Road is the cheapest surface.
	Road
)

// kindInfo is one row of the terrain catalog.
type kindInfo struct {
	name string
	code byte
	cost int
}

// catalog is indexed by Kind. Index 0 is the invalid kind.
var catalog = [...]kindInfo{
	{name: "invalid", code: '?', cost: 0},
	Stone: {name: "stone", code: 's', cost: 1000},
	Water: {name: "water", code: 'w', cost: 500},
	Dune:  {name: "dune", code: 'd', cost: 7},
	Mud:   {name: "mud", code: 'm', cost: 5},
	Grass: {name: "grass", code: 'g', cost: 3},
	Road:  {name: "road", code: 'r', cost: 2},
}

// Kinds returns every valid kind in catalog order.
func Kinds() []Kind {
	return []Kind{Stone, Water, Dune, Mud, Grass, Road}
}

// MinCost is the lowest traversal cost of any kind in the catalog.
const MinCost = 2

// Valid reports whether k is a catalog kind.
func (k Kind) Valid() bool {
	return k >= Stone && int(k) < len(catalog)
}

// Cost returns the traversal cost of k, or 0 if k is not valid.
// Complexity: O(1).
func (k Kind) Cost() int {
	if !k.Valid() {
		return 0
	}
	return catalog[k].cost
}

// Code returns the one-letter map code of k. Codes are for display and
// map descriptions only; Kind itself is the cost lookup key.
func (k Kind) Code() byte {
	if !k.Valid() {
		return catalog[0].code
	}
	return catalog[k].code
}

// String returns the lowercase name of k.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return catalog[k].name
}

// ParseKind maps a one-letter map code to its Kind.
// Returns ErrUnknownKind for letters outside the catalog.
func ParseKind(code byte) (Kind, error) {
	for _, k := range Kinds() {
		if catalog[k].code == code {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: code %q", ErrUnknownKind, code)
}

// Coord is a 0-indexed (row, col) grid position.
type Coord struct {
	Row, Col int
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Adjacent reports whether a and b differ by exactly one row or one column step.
func Adjacent(a, b Coord) bool {
	return Manhattan(a, b) == 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is one grid position with a fixed terrain kind.
type Cell struct {
	Coord Coord
	Kind  Kind
}

// Cost returns the traversal cost of the cell's kind.
func (c Cell) Cost() int {
	return c.Kind.Cost()
}

// Set reports membership of coordinates. A nil Set excludes nothing.
// mapset.Set[Coord] satisfies it.
type Set interface {
	Has(c Coord) bool
}
