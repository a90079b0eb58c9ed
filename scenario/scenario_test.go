package scenario_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailseek/fleet"
	"github.com/katalvlaran/trailseek/scenario"
	"github.com/katalvlaran/trailseek/search"
	"github.com/katalvlaran/trailseek/terrain"
)

func TestLoadFile(t *testing.T) {
	sc, err := scenario.LoadFile("testdata/ring.yaml")
	require.NoError(t, err)

	assert.Equal(t, 5, sc.Grid.Rows())
	assert.Equal(t, 5, sc.Grid.Cols())
	assert.Equal(t, terrain.Coord{Row: 2, Col: 4}, sc.Goal)
	assert.Equal(t, 100000, sc.MaxSteps)
	require.Len(t, sc.Actors, 5)

	want := []search.Kind{
		search.NaiveDirect, search.GreedyBacktrack, search.FrontierAverage,
		search.UniformCost, search.HeuristicGuided,
	}
	for i, a := range sc.Actors {
		assert.Equal(t, want[i], a.Strategy, a.Name)
		assert.Equal(t, terrain.Coord{Row: 2, Col: 0}, a.Position(), a.Name)
	}

	scout, ok := sc.Actor("scout")
	require.True(t, ok)
	assert.Equal(t, search.HeuristicGuided, scout.Strategy)
	_, ok = sc.Actor("ghost")
	assert.False(t, ok)

	require.NoError(t, fleet.PlanAll(context.Background(), sc.Grid, sc.Goal, sc.Actors,
		fleet.WithSearchOptions(sc.SearchOptions()...)))
	assert.Equal(t, 16, scout.Path().Cost())
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		msg  string
	}{
		{"Empty", ``, "empty document"},
		{"UnknownField", "map: [r]\ngoal: {row: 0, col: 0}\ncolour: red\nactors: [{name: Aki}]", "colour"},
		{"BadMap", "map: [rx]\ngoal: {row: 0, col: 0}\nactors: [{name: Aki}]", "unknown terrain kind"},
		{"NoMap", "goal: {row: 0, col: 0}\nactors: [{name: Aki}]", "at least one row"},
		{"GoalOutside", "map: [rr]\ngoal: {row: 3, col: 0}\nactors: [{name: Aki}]", "goal (3,0)"},
		{"NegativeSteps", "map: [rr]\ngoal: {row: 0, col: 1}\nmax_steps: -4\nactors: [{name: Aki}]", "max_steps"},
		{"NoActors", "map: [rr]\ngoal: {row: 0, col: 1}", "no actors"},
		{"Nameless", "map: [rr]\ngoal: {row: 0, col: 1}\nactors: [{strategy: uniform-cost}]", "no name"},
		{"Duplicate", "map: [rr]\ngoal: {row: 0, col: 1}\nactors: [{name: Aki}, {name: Aki}]", "duplicate"},
		{"UnknownStrategy", "map: [rr]\ngoal: {row: 0, col: 1}\nactors: [{name: bob}]", "unknown strategy"},
		{"StartOutside", "map: [rr]\ngoal: {row: 0, col: 1}\nactors: [{name: Aki, start: {row: 0, col: 9}}]", "start (0,9)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, scenario.ErrInvalid)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile("testdata/does-not-exist.yaml")
	require.Error(t, err)
	assert.NotErrorIs(t, err, scenario.ErrInvalid)
}
