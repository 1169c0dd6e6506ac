// Package solver runs breadth-first search over the passable cells of a
// grid.Grid to measure and reconstruct shortest routes.
//
// The search moves one step at a time in the four orthogonal directions and
// treats every non-Wall cell (Open or Exit) as walkable. Because generated
// mazes are trees, the BFS distance between entrance and exit is also the
// length of the unique route, which is used as the "ideal move count".
package solver

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// walker encapsulates mutable BFS state for one query.
type walker struct {
	g      *grid.Grid
	queue  []int
	dist   []int
	parent []int
}

func newWalker(g *grid.Grid, src grid.Coord) *walker {
	n := g.Len()
	w := &walker{
		g:      g,
		queue:  make([]int, 0, n),
		dist:   make([]int, n),
		parent: make([]int, n),
	}
	for i := range w.dist {
		w.dist[i] = Unvisited
		w.parent[i] = -1
	}
	s := g.Index(src.X, src.Y)
	w.dist[s] = 0
	w.queue = append(w.queue, s)
	return w
}

// run expands the frontier until it is exhausted or target is dequeued.
// A negative target explores everything reachable.
func (w *walker) run(target int) {
	for qi := 0; qi < len(w.queue); qi++ {
		u := w.queue[qi]
		if u == target {
			return
		}
		c := w.g.Coordinate(u)
		for _, d := range grid.Orthogonal {
			nx, ny := c.X+d.X, c.Y+d.Y
			if !w.g.Passable(nx, ny) {
				continue
			}
			v := w.g.Index(nx, ny)
			if w.dist[v] != Unvisited {
				continue
			}
			w.dist[v] = w.dist[u] + 1
			w.parent[v] = u
			w.queue = append(w.queue, v)
		}
	}
}

// checkEndpoint validates a query endpoint.
func checkEndpoint(g *grid.Grid, c grid.Coord) error {
	cell, err := g.Get(c.X, c.Y)
	if err != nil {
		return err
	}
	if !cell.Passable() {
		return fmt.Errorf("%w: %v", ErrWallEndpoint, c)
	}
	return nil
}

// ShortestPathLength returns the minimum number of unit steps from `from` to
// `to`, or NoPath when either endpoint is out of bounds or a Wall, or the
// target is unreachable. ShortestPathLength(g, a, a) is 0 for any passable a.
//
// The search stops as soon as the target is dequeued.
// Complexity: O(W×H) time and memory.
func ShortestPathLength(g *grid.Grid, from, to grid.Coord) int {
	if g == nil || checkEndpoint(g, from) != nil || checkEndpoint(g, to) != nil {
		return NoPath
	}
	w := newWalker(g, from)
	t := g.Index(to.X, to.Y)
	w.run(t)
	return w.dist[t]
}

// Distances computes the full distance map from `from`.
// Returns grid.ErrOutOfBounds or ErrWallEndpoint for an unusable source.
// Complexity: O(W×H) time and memory.
func Distances(g *grid.Grid, from grid.Coord) (*DistanceMap, error) {
	if err := checkEndpoint(g, from); err != nil {
		return nil, err
	}
	w := newWalker(g, from)
	w.run(-1)
	return &DistanceMap{
		Source: from,
		width:  g.Width(),
		height: g.Height(),
		dist:   w.dist,
	}, nil
}

// Path returns the cells of a shortest route from `from` to `to`, both
// included. Returns ErrNoPath when the target cannot be reached.
func Path(g *grid.Grid, from, to grid.Coord) ([]grid.Coord, error) {
	if err := checkEndpoint(g, from); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, to); err != nil {
		return nil, err
	}
	w := newWalker(g, from)
	t := g.Index(to.X, to.Y)
	w.run(t)
	if w.dist[t] == Unvisited {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	path := make([]grid.Coord, w.dist[t]+1)
	for at, i := t, len(path)-1; at >= 0; at, i = w.parent[at], i-1 {
		path[i] = g.Coordinate(at)
	}
	return path, nil
}
