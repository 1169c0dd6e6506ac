package grid

import (
	"fmt"
	"strings"
)

// Runes used by String and Parse.
const (
	WallRune = '#'
	OpenRune = ' '
	ExitRune = 'E'
)

// Rows renders the grid as one string per row using WallRune, OpenRune and
// ExitRune.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		b.Reset()
		for x := 0; x < g.width; x++ {
			switch g.cells[g.Index(x, y)] {
			case Open:
				b.WriteByte(OpenRune)
			case Exit:
				b.WriteByte(ExitRune)
			default:
				b.WriteByte(WallRune)
			}
		}
		rows[y] = b.String()
	}
	return rows
}

// String joins Rows with newlines.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Parse builds a Grid from rows produced by Rows. Besides the three
// canonical runes it accepts '.' as Open so that layouts survive editors
// which strip trailing spaces.
// Returns ErrMalformedLayout for ragged or unknown input, or
// ErrInvalidDimensions when the layout is not a valid maze size.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrMalformedLayout)
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedLayout, y, len(row), w)
		}
	}
	g, err := New(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < w; x++ {
			var c Cell
			switch row[x] {
			case WallRune:
				c = Wall
			case OpenRune, '.':
				c = Open
			case ExitRune:
				c = Exit
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformedLayout, row[x], x, y)
			}
			g.cells[g.Index(x, y)] = c
		}
	}
	return g, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(rows ...string) *Grid {
	g, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}
