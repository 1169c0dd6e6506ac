package generator

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// queueCarve applies the randomizedCarve opening rule in FIFO order and
// only inside the outer border.
//
// It is not a textbook breadth-first maze: cells are opened the moment they
// are discovered, so the result is a bushy tree rooted at the start with
// many short dead ends. That shape is the point of this mode.
type queueCarve struct{}

// Carve enqueues start; each dequeued cell opens its still-Wall interior
// cell-adjacent neighbours, in shuffled order, and enqueues them.
// Complexity: O(W×H) time and memory.
func (queueCarve) Carve(g *grid.Grid, start grid.Coord, r rng.Source) error {
	if err := requireLattice(g, start); err != nil {
		return err
	}
	if err := open(g, start); err != nil {
		return err
	}

	queue := []grid.Coord{start}
	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		for _, d := range shuffledSteps(r) {
			next := cur.Add(d.X, d.Y)
			if !g.InInterior(next.X, next.Y) || !g.Is(next.X, next.Y, grid.Wall) {
				continue
			}
			if err := open(g, cur.Midpoint(next)); err != nil {
				return err
			}
			if err := open(g, next); err != nil {
				return err
			}
			queue = append(queue, next)
		}
	}
	return nil
}
