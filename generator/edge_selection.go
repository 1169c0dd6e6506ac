package generator

import (
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// latticeEdge joins two cell-adjacent lattice cells.
type latticeEdge struct {
	a, b grid.Coord
}

// edgeSelection is Kruskal's algorithm with a uniformly shuffled edge order
// standing in for random weights.
type edgeSelection struct{}

// Carve ignores start.
//
// Steps:
//  1. Open every lattice cell; wall positions stay Wall.
//  2. Collect one edge per horizontally and per vertically adjacent lattice
//     pair and shuffle them.
//  3. Walk the shuffled edges: when the endpoints are in different sets,
//     union them and open the wall between; otherwise skip the edge.
//  4. Stop early once a single set remains.
//
// Complexity: O(E·α(V)) with E ≈ 2V, V = (W/2)·(H/2). Memory: O(V + E).
func (edgeSelection) Carve(g *grid.Grid, _ grid.Coord, r rng.Source) error {
	w, h := g.Width(), g.Height()
	cols := w / 2

	cells := g.LatticeCells()
	for _, c := range cells {
		if err := open(g, c); err != nil {
			return err
		}
	}

	edges := make([]latticeEdge, 0, 2*len(cells))
	for y := 1; y < h-1; y += 2 {
		for x := 1; x < w-2; x += 2 {
			edges = append(edges, latticeEdge{grid.Coord{X: x, Y: y}, grid.Coord{X: x + 2, Y: y}})
		}
	}
	for y := 1; y < h-2; y += 2 {
		for x := 1; x < w-1; x += 2 {
			edges = append(edges, latticeEdge{grid.Coord{X: x, Y: y}, grid.Coord{X: x, Y: y + 2}})
		}
	}
	rng.ShuffleSlice(r, edges)

	// lattice id of (x,y) is (y/2)*cols + x/2
	id := func(c grid.Coord) int { return (c.Y/2)*cols + c.X/2 }
	sets := unionfind.New(len(cells))

	for _, e := range edges {
		if sets.Sets() == 1 {
			break
		}
		if !sets.Union(id(e.a), id(e.b)) {
			continue
		}
		if err := open(g, e.a.Midpoint(e.b)); err != nil {
			return err
		}
	}
	return nil
}
