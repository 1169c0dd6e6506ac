package placement

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
)

// Place chooses an entrance and an exit on a generated maze and marks the
// exit cell grid.Exit.
//
// Steps:
//  1. Apply options (ErrOptionViolation) and turn any existing Exit marker
//     back into Open, so a grid never carries two exits.
//  2. Fail with ErrNoOpenCells if there is nowhere to stand.
//  3. Run the strategy. Collisions and exhausted scans are resolved with
//     deterministic fallbacks; Result.Fallback reports them and a warning
//     carrying ErrPlacementExhausted is logged.
//  4. Write grid.Exit at the chosen exit.
//
// Both returned coordinates address cells that were Open before the exit was
// marked. They are distinct unless the grid has a single open cell.
// r is only consumed by the Random strategy and may be nil otherwise.
func Place(g *grid.Grid, s Strategy, r rng.Source, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, fmt.Errorf("%w: nil grid", ErrNoOpenCells)
	}

	for _, c := range g.Cells(grid.Exit) {
		if err := g.Set(c.X, c.Y, grid.Open); err != nil {
			return Result{}, err
		}
	}
	if g.Count(grid.Open) == 0 {
		return Result{}, ErrNoOpenCells
	}

	var res Result
	switch s {
	case Random:
		if r == nil {
			return Result{}, ErrNilSource
		}
		res = placeRandom(g, r, o.MaxAttempts)
	case CornerToCorner:
		res = placeCorners(g)
	case SideToSide:
		res = placeSides(g)
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	if res.Fallback {
		o.Logger.Warn("endpoint placement fell back",
			"strategy", s.String(),
			"entrance", res.Entrance.String(),
			"exit", res.Exit.String(),
			"error", ErrPlacementExhausted)
	}
	if err := g.Set(res.Exit.X, res.Exit.Y, grid.Exit); err != nil {
		return Result{}, err
	}
	return res, nil
}

// placeRandom samples the entrance, then resamples the exit until it
// differs from the entrance. Each sample draws up to attempts interior
// positions looking for an Open one.
func placeRandom(g *grid.Grid, r rng.Source, attempts int) Result {
	var res Result

	entrance, ok := sampleOpen(g, r, attempts)
	if !ok {
		entrance, _ = firstOpen(g, nil)
		res.Fallback = true
	}
	res.Entrance = entrance

	found := false
	for i := 0; i < attempts && !found; i++ {
		c, ok := sampleOpen(g, r, attempts)
		if ok && c != entrance {
			res.Exit, found = c, true
		}
	}
	if !found {
		res.Exit = entrance
		res.Fallback = true
		resolveCollision(g, &res, entrance)
	}
	return res
}

// sampleOpen draws uniform interior positions until one is Open.
func sampleOpen(g *grid.Grid, r rng.Source, attempts int) (grid.Coord, bool) {
	for i := 0; i < attempts; i++ {
		c := grid.Coord{
			X: rng.Between(r, 1, g.Width()-2),
			Y: rng.Between(r, 1, g.Height()-2),
		}
		if g.Is(c.X, c.Y, grid.Open) {
			return c, true
		}
	}
	return grid.Coord{}, false
}

// placeCorners scans forward from the top-left interior corner for the
// entrance and backward from the bottom-right one for the exit. If both
// land on the same cell the exit moves to (W-4,H-4).
func placeCorners(g *grid.Grid) Result {
	var res Result
	w, h := g.Width(), g.Height()

	entrance, ok := scan(g, 1, 1, w-2, h-2, 1)
	if !ok {
		entrance, _ = firstOpen(g, nil)
		res.Fallback = true
	}
	exit, ok := scan(g, w-2, h-2, 1, 1, -1)
	if !ok {
		exit = entrance
		res.Fallback = true
	}
	res.Entrance, res.Exit = entrance, exit
	resolveCollision(g, &res, grid.Coord{X: w - 4, Y: h - 4})
	return res
}

// scan walks interior cells row by row from (x0,y0) towards (x1,y1) in
// direction dir (+1 forward, -1 backward) and returns the first Open one.
func scan(g *grid.Grid, x0, y0, x1, y1, dir int) (grid.Coord, bool) {
	for y := y0; y*dir <= y1*dir; y += dir {
		for x := x0; x*dir <= x1*dir; x += dir {
			if g.Is(x, y, grid.Open) {
				return grid.Coord{X: x, Y: y}, true
			}
		}
	}
	return grid.Coord{}, false
}

// placeSides scans the left and right interior columns downward from mid
// height, wrapping to the top row. A collision moves the exit to column W-4.
func placeSides(g *grid.Grid) Result {
	var res Result
	w := g.Width()

	entrance, ok := scanColumn(g, 1)
	if !ok {
		entrance, _ = firstOpen(g, nil)
		res.Fallback = true
	}
	exit, ok := scanColumn(g, w-2)
	if !ok {
		exit = entrance
		res.Fallback = true
	}
	res.Entrance, res.Exit = entrance, exit
	resolveCollision(g, &res, grid.Coord{X: w - 4, Y: exit.Y})
	return res
}

// scanColumn checks every interior row of column x once, starting at H/2.
func scanColumn(g *grid.Grid, x int) (grid.Coord, bool) {
	h := g.Height()
	y := h / 2
	for i := 0; i < h-2; i++ {
		if g.Is(x, y, grid.Open) {
			return grid.Coord{X: x, Y: y}, true
		}
		y++
		if y >= h-1 {
			y = 1
		}
	}
	return grid.Coord{}, false
}

// resolveCollision separates coinciding endpoints: first by moving the exit
// to shifted, then to the first other Open cell in row-major order. With a
// single open cell the endpoints stay equal and Fallback is set.
func resolveCollision(g *grid.Grid, res *Result, shifted grid.Coord) {
	if res.Exit != res.Entrance {
		return
	}
	if shifted != res.Entrance && g.Is(shifted.X, shifted.Y, grid.Open) {
		res.Exit = shifted
		return
	}
	res.Fallback = true
	if c, ok := firstOpen(g, &res.Entrance); ok {
		res.Exit = c
	}
}

// firstOpen returns the first Open cell in row-major order, skipping except
// when given.
func firstOpen(g *grid.Grid, except *grid.Coord) (grid.Coord, bool) {
	for _, c := range g.Cells(grid.Open) {
		if except != nil && c == *except {
			continue
		}
		return c, true
	}
	return grid.Coord{}, false
}
