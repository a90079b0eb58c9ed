package terrain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse reads a textual map description: one grid row per line, one kind
// code per cell (see Kind.Code). Surrounding whitespace is trimmed and blank
// lines are skipped, so descriptions may be indented or padded.
//
// Example:
//
//	rrgs
//	gmws
//	rrrr
//
// Returns ErrUnknownKind (with line and column) for unrecognised letters,
// plus any error NewGrid reports for the resulting rows.
func Parse(r io.Reader) (*Grid, error) {
	var kinds [][]Kind
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row, col := parseRow(text)
		if col >= 0 {
			return nil, fmt.Errorf("%w: line %d: column %d: code %q", ErrUnknownKind, line, col, text[col])
		}
		kinds = append(kinds, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain: read map: %w", err)
	}

	return NewGrid(kinds)
}

// ParseRows is Parse over an in-memory slice of row strings.
func ParseRows(rows []string) (*Grid, error) {
	return Parse(strings.NewReader(strings.Join(rows, "\n")))
}

// parseRow decodes one map line. On an unknown code it returns the offending
// column, otherwise -1.
func parseRow(text string) ([]Kind, int) {
	row := make([]Kind, 0, len(text))
	for i := 0; i < len(text); i++ {
		k, err := ParseKind(text[i])
		if err != nil {
			return nil, i
		}
		row = append(row, k)
	}
	return row, -1
}

// Format renders g back into its textual map description, one line per row.
// Parse(Format(g)) yields a grid equal to g.
func Format(g *Grid) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteByte(g.cells[r*g.cols+c].Kind.Code())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
