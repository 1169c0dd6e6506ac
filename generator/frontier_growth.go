package generator

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// frontierGrowth is randomized Prim's algorithm over wall positions: the
// maze grows one cell at a time from a random frontier wall, which gives
// short, evenly branched passages.
type frontierGrowth struct{}

// Carve snaps start to the lattice, opens it and seeds the frontier with its
// interior wall-adjacent positions.
//
// Loop while the frontier is non-empty:
//  1. Remove a uniformly random frontier wall.
//  2. Look at the two cells flanking it across its axis. Unless exactly one
//     of them is Open, discard the wall: it no longer separates the maze
//     from unvisited rock.
//  3. Open the wall and the far cell, then add the far cell's interior
//     wall-adjacent positions that are still Wall.
//
// Frontier entries may repeat; step 2 filters stale ones.
// Complexity: O(W×H) expected time, O(W×H) memory.
func (frontierGrowth) Carve(g *grid.Grid, start grid.Coord, r rng.Source) error {
	start = grid.Coord{X: (start.X/2)*2 + 1, Y: (start.Y/2)*2 + 1}
	if !g.IsLattice(start.X, start.Y) {
		return fmt.Errorf("%w: snapped start %v outside a %dx%d grid", ErrInvalidStart, start, g.Width(), g.Height())
	}
	if err := open(g, start); err != nil {
		return err
	}

	var frontier []grid.Coord
	push := func(c grid.Coord) {
		for _, d := range grid.Orthogonal {
			n := c.Add(d.X, d.Y)
			if g.InInterior(n.X, n.Y) && g.Is(n.X, n.Y, grid.Wall) {
				frontier = append(frontier, n)
			}
		}
	}
	push(start)

	for len(frontier) > 0 {
		i := r.Intn(len(frontier))
		wall := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// even x: the wall separates left/right cells; otherwise up/down
		var a, b grid.Coord
		if wall.X%2 == 0 {
			a, b = wall.Add(-1, 0), wall.Add(1, 0)
		} else {
			a, b = wall.Add(0, -1), wall.Add(0, 1)
		}

		aOpen, bOpen := g.Is(a.X, a.Y, grid.Open), g.Is(b.X, b.Y, grid.Open)
		if aOpen == bOpen {
			continue
		}
		far := b
		if bOpen {
			far = a
		}
		if !g.IsLattice(far.X, far.Y) {
			continue
		}

		if err := open(g, wall); err != nil {
			return err
		}
		if err := open(g, far); err != nil {
			return err
		}
		push(far)
	}
	return nil
}
