package search

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/trailseek/pathtree"
	"github.com/katalvlaran/trailseek/terrain"
)

// frontierAverage is FIFO search where each expansion enqueues its children
// in ascending order of their neighbor-average cost.
type frontierAverage struct{}

func (frontierAverage) Kind() Kind { return FrontierAverage }

// scoredCell pairs a candidate with its ordering score.
type scoredCell struct {
	cell  terrain.Cell
	score int
}

// FindPath stops at the first dequeue of the goal, so the result is the first
// route found rather than the cheapest one.
//
// A cell may be enqueued from several parents before it is expanded. On
// dequeue it is resolved to its first-created tree node, and new children
// always hang off that node. A cell is expanded at most once.
func (frontierAverage) FindPath(g *terrain.Grid, start, goal terrain.Coord, opts ...Option) (Path, error) {
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
	var queue []terrain.Cell

	// expand scores the unvisited neighbors of c, attaches them under parent
	// in ascending score order and appends them to the queue.
	expand := func(parent pathtree.NodeID, c terrain.Coord) error {
		neighbors := g.Neighbors(c, visited)
		scored := make([]scoredCell, len(neighbors))
		for i, n := range neighbors {
			scored[i] = scoredCell{cell: n, score: neighborAverage(g, n)}
		}
		slices.SortStableFunc(scored, func(a, b scoredCell) int { return cmp.Compare(a.score, b.score) })
		for _, s := range scored {
			if _, err := tree.Add(parent, s.cell.Coord); err != nil {
				return err
			}
			r.opts.OnEnqueue(s.cell.Coord, s.score)
			queue = append(queue, s.cell)
		}
		return nil
	}

	if err := expand(pathtree.Root, start); err != nil {
		return nil, err
	}
	for len(queue) > 0 {
		if err := r.tick(); err != nil {
			return nil, err
		}
		cur := queue[0]
		queue = queue[1:]

		node, ok := tree.Find(cur.Coord)
		if !ok {
			return nil, pathtree.ErrNodeNotFound
		}
		if cur.Coord == goal {
			return r.reconstruct(tree, node)
		}
		// queued twice before its first expansion
		if visited.Has(cur.Coord) {
			continue
		}

		visited.Put(cur.Coord)
		r.opts.OnExpand(cur.Coord)
		if err := expand(node, cur.Coord); err != nil {
			return nil, err
		}
	}
	return nil, ErrNoPath
}

// neighborAverage is the integer mean cost of every in-bounds neighbor of c,
// regardless of what has been visited.
func neighborAverage(g *terrain.Grid, c terrain.Cell) int {
	neighbors := g.Neighbors(c.Coord, nil)
	if len(neighbors) == 0 {
		return 0
	}
	sum := 0
	for _, n := range neighbors {
		sum += n.Cost()
	}
	return sum / len(neighbors)
}

// reconstruct turns the tree branch ending at id into a Path.
func (r *run) reconstruct(tree *pathtree.Tree, id pathtree.NodeID) (Path, error) {
	coords, err := tree.PathTo(id)
	if err != nil {
		return nil, err
	}
	path := make(Path, len(coords))
	for i, c := range coords {
		cell, err := r.grid.CellAt(c)
		if err != nil {
			return nil, err
		}
		path[i] = cell
	}
	return path, nil
}
