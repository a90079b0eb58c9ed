package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailseek/terrain"
)

// TestCellStack_PopEmpty ensures exhausting the route is a defined failure.
func TestCellStack_PopEmpty(t *testing.T) {
	var s cellStack
	_, ok := s.peek()
	assert.False(t, ok)
	_, err := s.pop()
	assert.ErrorIs(t, err, ErrNoPath)

	c := terrain.Cell{Coord: terrain.Coord{Row: 1, Col: 2}, Kind: terrain.Mud}
	s.push(c)
	top, ok := s.peek()
	require.True(t, ok)
	assert.Equal(t, c, top)
	assert.Equal(t, Path{c}, s.path())

	got, err := s.pop()
	require.NoError(t, err)
	assert.Equal(t, c, got)
	_, err = s.pop()
	assert.ErrorIs(t, err, ErrNoPath)
}

func TestCheapest_FirstWinsTies(t *testing.T) {
	a := terrain.Cell{Coord: terrain.Coord{Row: 0}, Kind: terrain.Grass}
	b := terrain.Cell{Coord: terrain.Coord{Row: 1}, Kind: terrain.Road}
	c := terrain.Cell{Coord: terrain.Coord{Row: 2}, Kind: terrain.Road}
	assert.Equal(t, b, cheapest([]terrain.Cell{a, b, c}))
	assert.Equal(t, a, cheapest([]terrain.Cell{a}))
}

func TestNeighborAverage(t *testing.T) {
	g, err := terrain.ParseRows([]string{
		"rgm",
		"wsd",
	})
	require.NoError(t, err)
	// (0,1) neighbors: right mud 5, down stone 1000, left road 2 → 1007/3
	assert.Equal(t, 335, neighborAverage(g, g.MustCellAt(terrain.Coord{Col: 1})))

	single, err := terrain.Uniform(1, 1, terrain.Road)
	require.NoError(t, err)
	assert.Zero(t, neighborAverage(single, single.MustCellAt(terrain.Coord{})))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1, sign(5))
	assert.Equal(t, -1, sign(-3))
	assert.Equal(t, 0, sign(0))
}
