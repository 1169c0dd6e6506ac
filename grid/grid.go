package grid

import "fmt"

// ValidateDimensions reports whether width×height is an acceptable maze size:
// both odd and both at least MinSize. The returned error wraps
// ErrInvalidDimensions and names the offending values.
func ValidateDimensions(width, height int) error {
	if width < MinSize || height < MinSize || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// New allocates a width×height grid with every cell set to Wall.
// Dimensions are validated before any allocation happens.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns Width()*Height().
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// InInterior reports whether (x,y) lies strictly inside the outer border.
func (g *Grid) InInterior(x, y int) bool {
	return x > 0 && x < g.width-1 && y > 0 && y < g.height-1
}

// IsLattice reports whether (x,y) is an interior lattice cell, i.e. both
// coordinates odd.
func (g *Grid) IsLattice(x, y int) bool {
	return g.InInterior(x, y) && x%2 == 1 && y%2 == 1
}

// Index maps (x,y) to its row-major index y*Width + x.
// The caller must ensure the coordinate is in bounds.
func (g *Grid) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{X: idx % g.width, Y: idx / g.width}
}

// Get returns the cell at (x,y) or ErrOutOfBounds.
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Wall, fmt.Errorf("%w: get (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[g.Index(x, y)], nil
}

// Set stores state at (x,y) or returns ErrOutOfBounds.
func (g *Grid) Set(x, y int, state Cell) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: set (%d,%d) on %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[g.Index(x, y)] = state
	return nil
}

// Is reports whether (x,y) is in bounds and holds state.
// Out-of-bounds positions never match, which lets neighbour loops skip the
// separate bounds check.
func (g *Grid) Is(x, y int, state Cell) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)] == state
}

// Passable reports whether (x,y) is in bounds and not a Wall.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[g.Index(x, y)].Passable()
}

// Count returns how many cells hold state.
func (g *Grid) Count(state Cell) int {
	n := 0
	for _, c := range g.cells {
		if c == state {
			n++
		}
	}
	return n
}

// Find returns the first cell holding state in row-major order.
func (g *Grid) Find(state Cell) (Coord, bool) {
	for i, c := range g.cells {
		if c == state {
			return g.Coordinate(i), true
		}
	}
	return Coord{}, false
}

// Cells returns every coordinate holding state, in row-major order.
func (g *Grid) Cells(state Cell) []Coord {
	var out []Coord
	for i, c := range g.cells {
		if c == state {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// LatticeCells returns all interior lattice coordinates in row-major order,
// regardless of their state.
func (g *Grid) LatticeCells() []Coord {
	out := make([]Coord, 0, (g.width/2)*(g.height/2))
	for y := 1; y < g.height-1; y += 2 {
		for x := 1; x < g.width-1; x += 2 {
			out = append(out, Coord{X: x, Y: y})
		}
	}
	return out
}

// Fill sets every cell to state.
func (g *Grid) Fill(state Cell) {
	for i := range g.cells {
		g.cells[i] = state
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether g and o have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
