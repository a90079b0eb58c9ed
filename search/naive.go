package search

import "github.com/katalvlaran/trailseek/terrain"

// naiveDirect walks toward the goal one row at a time until the rows match,
// then one column at a time. It never looks at cost.
type naiveDirect struct{}

func (naiveDirect) Kind() Kind { return NaiveDirect }

// FindPath always succeeds for in-bounds endpoints, in |Δrow|+|Δcol| steps.
func (naiveDirect) FindPath(g *terrain.Grid, start, goal terrain.Coord, opts ...Option) (Path, error) {
	r, err := prepare(g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	path := make(Path, 0, terrain.Manhattan(start, goal)+1)
	path = append(path, r.start)
	cur := start
	for cur != goal {
		if err := r.tick(); err != nil {
			return nil, err
		}
		if cur.Row != goal.Row {
			cur.Row += sign(goal.Row - cur.Row)
		} else {
			cur.Col += sign(goal.Col - cur.Col)
		}
		r.opts.OnExpand(cur)
		path = append(path, g.MustCellAt(cur))
	}
	return path, nil
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
