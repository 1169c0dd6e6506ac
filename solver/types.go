// Package solver defines result types and sentinel errors for shortest-path
// queries over a grid.Grid.
package solver

import (
	"errors"

	"github.com/katalvlaran/lvmaze/grid"
)

// NoPath is returned by ShortestPathLength when no route exists.
const NoPath = -1

// Unvisited marks DistanceMap entries the search never reached.
const Unvisited = -1

var (
	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("solver: no path between endpoints")

	// ErrWallEndpoint indicates a source or target on a Wall cell.
	ErrWallEndpoint = errors.New("solver: endpoint is a wall")

	// ErrDisconnected indicates passable cells split into several regions.
	ErrDisconnected = errors.New("solver: passages are disconnected")

	// ErrCycle indicates the passage graph contains a loop.
	ErrCycle = errors.New("solver: passages contain a cycle")

	// ErrUncoveredLattice indicates an interior lattice cell left as Wall.
	ErrUncoveredLattice = errors.New("solver: lattice cell not carved")
)

// DistanceMap holds BFS step counts from one source over a grid's cells.
// Entries equal Unvisited where the search did not reach.
type DistanceMap struct {
	Source        grid.Coord
	width, height int
	dist          []int
}

// At returns the distance to c, or Unvisited for unreached or
// out-of-bounds cells.
func (m *DistanceMap) At(c grid.Coord) int {
	if c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return Unvisited
	}
	return m.dist[c.Y*m.width+c.X]
}

// Reached reports whether c has a distance.
func (m *DistanceMap) Reached(c grid.Coord) bool {
	return m.At(c) != Unvisited
}

// Farthest returns a reached cell with the greatest distance (the first in
// row-major order on ties) and that distance.
func (m *DistanceMap) Farthest() (grid.Coord, int) {
	best, bestIdx := Unvisited, -1
	for i, d := range m.dist {
		if d > best {
			best, bestIdx = d, i
		}
	}
	if bestIdx < 0 {
		return m.Source, Unvisited
	}
	return grid.Coord{X: bestIdx % m.width, Y: bestIdx / m.width}, best
}

// Count returns how many cells were reached.
func (m *DistanceMap) Count() int {
	n := 0
	for _, d := range m.dist {
		if d != Unvisited {
			n++
		}
	}
	return n
}
