package terrain_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trailseek/terrain"
)

func TestParse(t *testing.T) {
	src := `
	    rgs
	    wdm

	`
	g, err := terrain.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]terrain.Kind{
		{terrain.Road, terrain.Grass, terrain.Stone},
		{terrain.Water, terrain.Dune, terrain.Mud},
	}, g.Kinds())
	assert.Equal(t, "rgs\nwdm\n", terrain.Format(g))

	again, err := terrain.Parse(strings.NewReader(terrain.Format(g)))
	require.NoError(t, err)
	assert.Equal(t, g.Kinds(), again.Kinds())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
		msg  string
	}{
		{"Empty", nil, terrain.ErrEmptyGrid, ""},
		{"BlankOnly", []string{"  ", ""}, terrain.ErrEmptyGrid, ""},
		{"Ragged", []string{"rr", "r"}, terrain.ErrNonRectangular, ""},
		{"UnknownLetter", []string{"rr", "rx"}, terrain.ErrUnknownKind, "terrain: unknown terrain kind: line 2: column 1: code 'x'"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := terrain.ParseRows(tc.rows)
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, err.Error())
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestParse_ReadError(t *testing.T) {
	_, err := terrain.Parse(failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}
