// Package generator carves perfect mazes into a grid.Grid.
//
// What:
//
//   - Four interchangeable algorithms behind one Generator interface,
//     selected by an Algorithm tag:
//     RandomizedCarve – stack-driven backtracking (long winding corridors)
//     QueueCarve      – the same opening rule in FIFO order, interior only
//     EdgeSelection   – Kruskal over a shuffled lattice edge list + union-find
//     FrontierGrowth  – Prim-style growth from a random frontier wall
//   - Generate(width, height, alg, r, opts...) allocates and carves in one call.
//
// Guarantee:
//
//	Every algorithm only ever opens a wall between a visited and an
//	unvisited lattice cell, so the passable cells always form a single tree
//	touching every lattice cell: exactly one simple path between any two.
//
// Determinism:
//
//	All random choices come from the rng.Source argument, in a fixed call
//	order. The same seed and parameters reproduce the same maze.
//
// Errors:
//
//   - grid.ErrInvalidDimensions: width/height even, non-positive or < 5.
//   - ErrUnknownAlgorithm:       alg has no implementation.
//   - ErrInvalidStart:           start is not a usable lattice cell.
//   - ErrNilSource:              no random stream given.
package generator
