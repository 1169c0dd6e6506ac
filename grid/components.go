package grid

// Components finds all 4-connected regions of passable cells (Open or Exit).
// Returns a slice of components; each component is a slice of row-major
// cell indices in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// Use Coordinate(idx) to convert an index back to (x,y).
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int

	for i0, c := range g.cells {
		if !c.Passable() || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			for _, d := range Orthogonal {
				vx, vy := u.X+d.X, u.Y+d.Y
				if !g.Passable(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Links counts unordered pairs of orthogonally adjacent passable cells, i.e.
// the edge count of the passage graph. A perfect maze has exactly
// (passable cells) - 1 links.
// Complexity: O(W·H).
func (g *Grid) Links() int {
	n := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Passable(x, y) {
				continue
			}
			// right and down only, so each pair is counted once
			if g.Passable(x+1, y) {
				n++
			}
			if g.Passable(x, y+1) {
				n++
			}
		}
	}
	return n
}
