package search

import (
	"cmp"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/trailseek/pathtree"
	"github.com/katalvlaran/trailseek/terrain"
)

// costOrdered drives both exhaustive strategies. With a nil heuristic it is
// uniform-cost search; with one it orders by accumulated cost plus estimate.
type costOrdered struct {
	kind      Kind
	heuristic func(from, to terrain.Coord) int
}

func (s costOrdered) Kind() Kind { return s.kind }

// entry is one frontier candidate. node is the tree node created when the
// entry was pushed, so the route it stands for can always be recovered.
type entry struct {
	cell terrain.Cell
	node pathtree.NodeID
	cost int // accumulated cost from the start
	key  int // ordering key: cost, plus the heuristic if any
}

// FindPath explores until the frontier is empty, expanding each coordinate
// once, and returns the cheapest goal arrival seen.
//
// Complexity: O(N × F log F) for N cells and frontier size F, since the
// frontier is re-sorted (stably) after each expansion.
func (s costOrdered) FindPath(g *terrain.Grid, start, goal terrain.Coord, opts ...Option) (Path, error) {
	r, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	if p, ok := r.trivial(); ok {
		return p, nil
	}

	tree := pathtree.New(start)
	visited := mapset.New[terrain.Coord]()
	visited.Put(start)
	var frontier []entry

	push := func(parent entry) error {
		for _, n := range g.Neighbors(parent.cell.Coord, visited) {
			id, err := tree.Add(parent.node, n.Coord)
			if err != nil {
				return err
			}
			e := entry{cell: n, node: id, cost: parent.cost + n.Cost()}
			e.key = e.cost
			if s.heuristic != nil {
				e.key += s.heuristic(n.Coord, goal)
			}
			r.opts.OnEnqueue(n.Coord, e.key)
			frontier = append(frontier, e)
		}
		slices.SortStableFunc(frontier, func(a, b entry) int { return cmp.Compare(a.key, b.key) })
		return nil
	}

	// 1) Seed with the start's neighbors
	if err := push(entry{cell: r.start, node: pathtree.Root}); err != nil {
		return nil, err
	}

	// 2) Drain the frontier, tracking the cheapest arrival at the goal
	best, bestCost := pathtree.NodeID(-1), math.MaxInt
	for len(frontier) > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		cur := frontier[0]
		frontier = frontier[1:]
		if visited.Has(cur.cell.Coord) {
			continue // already expanded through a cheaper or earlier entry
		}
		if cur.cell.Coord == goal && cur.cost < bestCost {
			best, bestCost = cur.node, cur.cost
		}

		visited.Put(cur.cell.Coord)
		r.opts.OnExpand(cur.cell.Coord)
		if err := push(cur); err != nil {
			return nil, err
		}
	}

	// 3) Rebuild from the best terminal node
	if best < 0 {
		return nil, ErrNoPath
	}
	return r.reconstruct(tree, best)
}
