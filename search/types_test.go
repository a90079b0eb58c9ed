package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

func at(r, c int) terrain.Coord { return terrain.Coord{Row: r, Col: c} }

func TestKind_Names(t *testing.T) {
	cases := []struct {
		kind  search.Kind
		name  string
		agent string
	}{
		{search.NaiveDirect, "naive-direct", "Example"},
		{search.GreedyBacktrack, "greedy-backtrack", "Aki"},
		{search.FrontierAverage, "frontier-average", "Jocke"},
		{search.UniformCost, "uniform-cost", "Draza"},
		{search.HeuristicGuided, "heuristic-guided", "Bole"},
	}
	require.Len(t, search.All(), len(cases))
	for i, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, search.All()[i])
			assert.Equal(t, tc.name, tc.kind.String())

			k, err := search.ParseKind(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, k)

			k, err = search.ParseKind(" " + tc.agent + " ")
			require.NoError(t, err)
			assert.Equal(t, tc.kind, k)

			k, ok := search.KindForAgent(tc.agent)
			assert.True(t, ok)
			assert.Equal(t, tc.kind, k)

			s, err := search.New(tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, s.Kind())
		})
	}
	assert.True(t, search.UniformCost.Optimal())
	assert.True(t, search.HeuristicGuided.Optimal())
	assert.False(t, search.FrontierAverage.Optimal())
}

func TestKind_Unknown(t *testing.T) {
	_, err := search.ParseKind("teleport")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, err = search.New(search.Kind(99))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Equal(t, "Kind(99)", search.Kind(99).String())

	g, err := terrain.Uniform(2, 2, terrain.Road)
	require.NoError(t, err)
	_, err = search.FindPath(search.Kind(-1), g, at(0, 0), at(1, 1))
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)

	_, ok := search.KindForAgent("nobody")
	assert.False(t, ok)
}

func TestPath_CostAndCoords(t *testing.T) {
	g, err := terrain.ParseRows([]string{"rgm"})
	require.NoError(t, err)
	p := search.Path{g.MustCellAt(at(0, 0)), g.MustCellAt(at(0, 1)), g.MustCellAt(at(0, 2))}

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 3+5, p.Cost(), "start cell is not paid for")
	assert.Equal(t, []terrain.Coord{at(0, 0), at(0, 1), at(0, 2)}, p.Coords())
	assert.Zero(t, search.Path{g.MustCellAt(at(0, 2))}.Cost())
	assert.Zero(t, search.Path(nil).Cost())
}

func TestValidate(t *testing.T) {
	g, err := terrain.Uniform(3, 3, terrain.Road)
	require.NoError(t, err)
	cells := func(cs ...terrain.Coord) search.Path {
		p := make(search.Path, len(cs))
		for i, c := range cs {
			p[i] = terrain.Cell{Coord: c, Kind: terrain.Road}
		}
		return p
	}

	require.NoError(t, search.Validate(g, cells(at(0, 0), at(0, 1), at(1, 1)), at(0, 0), at(1, 1)))

	bad := map[string]search.Path{
		"empty":     nil,
		"wrongHead": cells(at(0, 1), at(1, 1)),
		"wrongTail": cells(at(0, 0), at(0, 1)),
		"jump":      cells(at(0, 0), at(1, 1)),
		"diagonal":  cells(at(0, 0), at(0, 1), at(1, 2), at(1, 1)),
		"repeat":    cells(at(0, 0), at(0, 1), at(0, 0), at(1, 0), at(1, 1)),
		"outside":   cells(at(0, 0), at(-1, 0), at(-1, 1), at(0, 1), at(1, 1)),
	}
	for name, p := range bad {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, search.Validate(g, p, at(0, 0), at(1, 1)), search.ErrInvalidPath)
		})
	}
}
