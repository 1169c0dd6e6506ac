package generator

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// Generator carves a perfect maze into an all-Wall grid.
//
// Implementations hold no state between calls: everything they need comes
// from the grid, the start coordinate and the random stream. On success the
// passable cells of g form a spanning tree of its lattice.
type Generator interface {
	Carve(g *grid.Grid, start grid.Coord, r rng.Source) error
}

// For returns the Generator implementing alg.
func For(alg Algorithm) (Generator, error) {
	switch alg {
	case RandomizedCarve:
		return randomizedCarve{}, nil
	case QueueCarve:
		return queueCarve{}, nil
	case EdgeSelection:
		return edgeSelection{}, nil
	case FrontierGrowth:
		return frontierGrowth{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
}

// Generate allocates a width×height grid and carves a maze into it with alg.
//
// Steps:
//  1. Resolve the Generator for alg (ErrUnknownAlgorithm) and check r.
//  2. Allocate the grid; grid.ErrInvalidDimensions is returned before any
//     allocation for even, non-positive or undersized dimensions.
//  3. Carve from opts.Start, drawing every random choice from r.
//
// r must be the caller's long-lived stream, not a fresh one per call, so
// that consecutive mazes differ.
//
// Complexity: O(W×H) time and memory for the carvers, O(W×H·α) for
// EdgeSelection.
func Generate(width, height int, alg Algorithm, r rng.Source, opts ...Option) (*grid.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	gen, err := For(alg)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNilSource
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, err
	}
	if err := gen.Carve(g, o.Start, r); err != nil {
		return nil, fmt.Errorf("generator: %s: %w", alg, err)
	}

	o.Logger.Debug("maze generated",
		"algorithm", alg.String(),
		"width", width,
		"height", height,
		"open", g.Count(grid.Open))
	return g, nil
}

// open carves c, propagating the grid's bounds error.
func open(g *grid.Grid, c grid.Coord) error {
	return g.Set(c.X, c.Y, grid.Open)
}

// requireLattice rejects starts the carvers cannot use.
func requireLattice(g *grid.Grid, c grid.Coord) error {
	if !g.IsLattice(c.X, c.Y) {
		return fmt.Errorf("%w: %v is not a lattice cell of a %dx%d grid", ErrInvalidStart, c, g.Width(), g.Height())
	}
	return nil
}

// shuffledSteps returns the four cell-adjacent offsets (±2) in a fresh
// random order.
func shuffledSteps(r rng.Source) [4]grid.Coord {
	steps := grid.Orthogonal
	for i := range steps {
		steps[i].X *= 2
		steps[i].Y *= 2
	}
	r.Shuffle(len(steps), func(i, j int) {
		steps[i], steps[j] = steps[j], steps[i]
	})
	return steps
}
