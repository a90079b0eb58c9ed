package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/trailseek/terrain"
)

// Sentinel errors for path computations.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoPath is returned when a strategy runs out of candidates before
	// reaching the goal. No partial path accompanies it.
	ErrNoPath = errors.New("search: no path found")

	// ErrStepLimit is returned when the WithMaxSteps budget is exhausted.
	ErrStepLimit = errors.New("search: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownStrategy is returned for a Kind or name outside the registry.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrInvalidPath is returned by Validate for malformed paths.
	ErrInvalidPath = errors.New("search: invalid path")
)

// Kind selects one of the search strategies.
type Kind int

const (
	// NaiveDirect steps straight toward the goal, rows first.
	NaiveDirect Kind = iota
	// GreedyBacktrack is cheapest-neighbor depth-first search with backtracking.
	GreedyBacktrack
	// FrontierAverage is FIFO search ordered by neighbor-average cost.
	FrontierAverage
	// UniformCost is exhaustive accumulated-cost search.
	UniformCost
	// HeuristicGuided is exhaustive accumulated-cost plus Manhattan search.
	HeuristicGuided
)

var kindNames = [...]string{
	NaiveDirect:     "naive-direct",
	GreedyBacktrack: "greedy-backtrack",
	FrontierAverage: "frontier-average",
	UniformCost:     "uniform-cost",
	HeuristicGuided: "heuristic-guided",
}

// agentKinds binds the historical actor names to their strategies.
var agentKinds = map[string]Kind{
	"example": NaiveDirect,
	"aki":     GreedyBacktrack,
	"jocke":   FrontierAverage,
	"draza":   UniformCost,
	"bole":    HeuristicGuided,
}

// All returns every strategy kind in declaration order.
func All() []Kind {
	return []Kind{NaiveDirect, GreedyBacktrack, FrontierAverage, UniformCost, HeuristicGuided}
}

// Valid reports whether k names a registered strategy.
func (k Kind) Valid() bool {
	return k >= NaiveDirect && int(k) < len(kindNames)
}

// String returns the hyphenated strategy name, e.g. "uniform-cost".
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Optimal reports whether k always returns a cost-minimal path.
func (k Kind) Optimal() bool {
	return k == UniformCost || k == HeuristicGuided
}

// ParseKind resolves a strategy name ("uniform-cost") or an agent name
// ("Draza"), case-insensitively.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	if k, ok := agentKinds[key]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// KindForAgent returns the strategy bound to a historical agent name.
func KindForAgent(agent string) (Kind, bool) {
	k, ok := agentKinds[strings.ToLower(agent)]
	return k, ok
}

// Strategy computes a path across a grid.
type Strategy interface {
	// Kind identifies the strategy.
	Kind() Kind
	// FindPath returns the cells from start to goal, both inclusive.
	FindPath(g *terrain.Grid, start, goal terrain.Coord, opts ...Option) (Path, error)
}

// New returns the Strategy for k, or ErrUnknownStrategy.
func New(k Kind) (Strategy, error) {
	switch k {
	case NaiveDirect:
		return naiveDirect{}, nil
	case GreedyBacktrack:
		return greedyBacktrack{}, nil
	case FrontierAverage:
		return frontierAverage{}, nil
	case UniformCost:
		return costOrdered{kind: UniformCost}, nil
	case HeuristicGuided:
		return costOrdered{kind: HeuristicGuided, heuristic: terrain.Manhattan}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, k)
	}
}

// FindPath runs the strategy k. It is shorthand for New(k) followed by FindPath.
func FindPath(k Kind, g *terrain.Grid, start, goal terrain.Coord, opts ...Option) (Path, error) {
	s, err := New(k)
	if err != nil {
		return nil, err
	}
	return s.FindPath(g, start, goal, opts...)
}

// Path is an ordered sequence of grid-adjacent cells, start first.
type Path []terrain.Cell

// Len returns the number of cells, start included.
func (p Path) Len() int { return len(p) }

// Cost returns the total traversal cost: the sum of cell costs after the start.
func (p Path) Cost() int {
	total := 0
	for i := 1; i < len(p); i++ {
		total += p[i].Cost()
	}
	return total
}

// Coords returns the coordinates of p in order.
func (p Path) Coords() []terrain.Coord {
	out := make([]terrain.Coord, len(p))
	for i, c := range p {
		out[i] = c.Coord
	}
	return out
}

// Validate checks that p starts at start, ends at goal, stays inside g,
// moves one orthogonal step at a time and never repeats a coordinate.
// Violations are reported as ErrInvalidPath.
func Validate(g *terrain.Grid, p Path, start, goal terrain.Coord) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0].Coord != start {
		return fmt.Errorf("%w: starts at %v, want %v", ErrInvalidPath, p[0].Coord, start)
	}
	if last := p[len(p)-1].Coord; last != goal {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, goal)
	}
	seen := make(map[terrain.Coord]int, len(p))
	for i, cell := range p {
		if !g.InBounds(cell.Coord) {
			return fmt.Errorf("%w: step %d %v outside grid", ErrInvalidPath, i, cell.Coord)
		}
		if j, dup := seen[cell.Coord]; dup {
			return fmt.Errorf("%w: %v repeated at steps %d and %d", ErrInvalidPath, cell.Coord, j, i)
		}
		seen[cell.Coord] = i
		if i > 0 && !terrain.Adjacent(p[i-1].Coord, cell.Coord) {
			return fmt.Errorf("%w: step %d jumps %v -> %v", ErrInvalidPath, i, p[i-1].Coord, cell.Coord)
		}
	}
	return nil
}
