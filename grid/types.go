package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a width or height that is non-positive,
	// even, or below MinSize.
	ErrInvalidDimensions = errors.New("grid: dimensions must be odd and at least 5")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrMalformedLayout indicates a textual layout that cannot be parsed.
	ErrMalformedLayout = errors.New("grid: malformed layout")
)

// MinSize is the smallest accepted width and height.
const MinSize = 5

// Cell is the state of one grid position.
type Cell uint8

const (
	// Wall is an uncarved position. It is the zero value, so a freshly
	// allocated grid is solid rock.
	Wall Cell = iota
	// Open is a carved, walkable position.
	Open
	// Exit marks the single goal cell written by endpoint placement.
	Exit
)

// String returns a lower-case name for the state.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Passable reports whether a walker may stand on this cell.
func (c Cell) Passable() bool {
	return c == Open || c == Exit
}

// Coord addresses a grid position.
type Coord struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Midpoint returns the position halfway between c and o. For two
// cell-adjacent coordinates this is the wall that separates them.
func (c Coord) Midpoint(o Coord) Coord {
	return Coord{X: (c.X + o.X) / 2, Y: (c.Y + o.Y) / 2}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Orthogonal lists the four unit offsets in the fixed order up, down, right,
// left. Generators shuffle copies of it; solvers walk it as is.
var Orthogonal = [4]Coord{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}

// Grid is a width×height array of cells stored row-major.
// The zero value is unusable; construct with New.
type Grid struct {
	width, height int
	cells         []Cell
}
