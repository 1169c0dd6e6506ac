package generator

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// randomizedCarve is iterative depth-first carving with an explicit stack.
type randomizedCarve struct{}

// Carve pushes start, then repeatedly pops the top cell and, visiting its
// four cell-adjacent neighbours in a freshly shuffled order, opens every
// neighbour that is still Wall together with the wall between them and
// pushes it. The last neighbour pushed is explored first, which produces the
// long corridors typical of backtracking mazes.
//
// Complexity: O(W×H) time, O(W×H) stack in the worst case.
func (randomizedCarve) Carve(g *grid.Grid, start grid.Coord, r rng.Source) error {
	if err := requireLattice(g, start); err != nil {
		return err
	}
	if err := open(g, start); err != nil {
		return err
	}

	stack := []grid.Coord{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, d := range shuffledSteps(r) {
			next := cur.Add(d.X, d.Y)
			// odd lattice coordinates inside [0,W) never touch the border
			if !g.Is(next.X, next.Y, grid.Wall) {
				continue
			}
			if err := open(g, cur.Midpoint(next)); err != nil {
				return err
			}
			if err := open(g, next); err != nil {
				return err
			}
			stack = append(stack, next)
		}
	}
	return nil
}
