package search

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/trailseek/terrain"
)

// greedyBacktrack is depth-first search that commits to the cheapest
// unvisited neighbor and pops back out of dead ends.
type greedyBacktrack struct{}

func (greedyBacktrack) Kind() Kind { return GreedyBacktrack }

// FindPath keeps the tentative route on a stack. Every cell ever pushed stays
// in the visited set, so a cell abandoned by backtracking is never re-entered.
// An emptied stack yields ErrNoPath.
func (greedyBacktrack) FindPath(g *terrain.Grid, start, goal terrain.Coord, opts ...Option) (Path, error) {
	r, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	visited := mapset.New[terrain.Coord]()
	visited.Put(start)
	var route cellStack
	route.push(r.start)

	for {
		tail, ok := route.peek()
		if !ok {
			return nil, ErrNoPath
		}
		if tail.Coord == goal {
			return route.path(), nil
		}
		if err := r.tick(); err != nil {
			return nil, err
		}
		r.opts.OnExpand(tail.Coord)

		neighbors := g.Neighbors(tail.Coord, visited)
		if len(neighbors) == 0 {
			// dead end: back up and retry from the new tail
			if _, err := route.pop(); err != nil {
				return nil, err
			}
			continue
		}
		next := cheapest(neighbors)
		visited.Put(next.Coord)
		r.opts.OnEnqueue(next.Coord, next.Cost())
		route.push(next)
	}
}

// cheapest returns the lowest-cost cell; the first one wins ties.
func cheapest(cells []terrain.Cell) terrain.Cell {
	best := cells[0]
	for _, c := range cells[1:] {
		if c.Cost() < best.Cost() {
			best = c
		}
	}
	return best
}

// cellStack is the tentative route of the backtracking walk.
type cellStack []terrain.Cell

func (s *cellStack) push(c terrain.Cell) {
	*s = append(*s, c)
}

// pop removes the tail. Popping an empty stack yields ErrNoPath.
func (s *cellStack) pop() (terrain.Cell, error) {
	n := len(*s)
	if n == 0 {
		return terrain.Cell{}, ErrNoPath
	}
	c := (*s)[n-1]
	*s = (*s)[:n-1]
	return c, nil
}

func (s cellStack) peek() (terrain.Cell, bool) {
	if len(s) == 0 {
		return terrain.Cell{}, false
	}
	return s[len(s)-1], true
}

// path copies the stack, bottom first.
func (s cellStack) path() Path {
	return append(Path(nil), s...)
}
