package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// IsPerfect checks that g is a perfect maze:
//  1. every interior lattice cell is passable (ErrUncoveredLattice),
//  2. all passable cells form one region (ErrDisconnected),
//  3. the passage graph has exactly cells-1 links, i.e. no loop (ErrCycle).
//
// Complexity: O(W×H).
func IsPerfect(g *grid.Grid) error {
	for _, c := range g.LatticeCells() {
		if !g.Passable(c.X, c.Y) {
			return fmt.Errorf("%w: %v", ErrUncoveredLattice, c)
		}
	}
	comps := g.Components()
	if len(comps) != 1 {
		return fmt.Errorf("%w: %d regions", ErrDisconnected, len(comps))
	}
	cells, links := len(comps[0]), g.Links()
	if links != cells-1 {
		return fmt.Errorf("%w: %d links over %d cells", ErrCycle, links, cells)
	}
	return nil
}
