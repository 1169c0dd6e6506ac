package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/solver"
)

// snake is a 7×7 perfect maze with a single winding corridor:
//
//	#######
//	#     #
//	##### #
//	#     #
//	# #####
//	#    E#
//	#######
func snake() *grid.Grid {
	return grid.MustParse(
		"#######",
		"#     #",
		"##### #",
		"#     #",
		"# #####",
		"#    E#",
		"#######",
	)
}

func TestShortestPathLength_Snake(t *testing.T) {
	g := snake()
	from, to := grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 5}
	// 4 right, 2 down, 4 left, 2 down, 4 right
	assert.Equal(t, 16, solver.ShortestPathLength(g, from, to))
}

func TestShortestPathLength_SelfIsZero(t *testing.T) {
	g := snake()
	for _, c := range g.Cells(grid.Open) {
		assert.Equal(t, 0, solver.ShortestPathLength(g, c, c), "d(%v,%v)", c, c)
	}
}

func TestShortestPathLength_Symmetric(t *testing.T) {
	g, err := generator.Generate(15, 11, generator.EdgeSelection, rng.New(42))
	require.NoError(t, err)
	open := g.Cells(grid.Open)
	for i := 0; i < len(open); i += 7 {
		for j := 0; j < len(open); j += 11 {
			a, b := open[i], open[j]
			ab := solver.ShortestPathLength(g, a, b)
			assert.GreaterOrEqual(t, ab, 0)
			assert.Equal(t, ab, solver.ShortestPathLength(g, b, a), "%v<->%v", a, b)
		}
	}
}

func TestShortestPathLength_NoPath(t *testing.T) {
	g := snake()
	open := grid.Coord{X: 1, Y: 1}

	cases := []struct {
		name     string
		from, to grid.Coord
	}{
		{"WallSource", grid.Coord{X: 0, Y: 0}, open},
		{"WallTarget", open, grid.Coord{X: 2, Y: 2}},
		{"OutOfBoundsSource", grid.Coord{X: -1, Y: 1}, open},
		{"OutOfBoundsTarget", open, grid.Coord{X: 1, Y: 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, solver.NoPath, solver.ShortestPathLength(g, tc.from, tc.to))
		})
	}
	assert.Equal(t, solver.NoPath, solver.ShortestPathLength(nil, open, open))
}

// TestShortestPathLength_Disconnected seals the corridor of the snake so its
// two ends become separate regions.
func TestShortestPathLength_Disconnected(t *testing.T) {
	g := snake()
	require.NoError(t, g.Set(5, 2, grid.Wall))
	assert.Equal(t, solver.NoPath, solver.ShortestPathLength(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 5}))
	assert.ErrorIs(t, solver.IsPerfect(g), solver.ErrDisconnected)
}

func TestDistances(t *testing.T) {
	g := snake()
	m, err := solver.Distances(g, grid.Coord{X: 1, Y: 1})
	require.NoError(t, err)

	assert.Equal(t, 17, m.Count(), "all corridor cells reached")
	far, d := m.Farthest()
	assert.Equal(t, grid.Coord{X: 5, Y: 5}, far)
	assert.Equal(t, 16, d)
	assert.Equal(t, solver.Unvisited, m.At(grid.Coord{X: 0, Y: 0}))
	assert.Equal(t, solver.Unvisited, m.At(grid.Coord{X: 99, Y: 0}))
	assert.True(t, m.Reached(grid.Coord{X: 1, Y: 3}))

	_, err = solver.Distances(g, grid.Coord{X: 0, Y: 0})
	assert.ErrorIs(t, err, solver.ErrWallEndpoint)
	_, err = solver.Distances(g, grid.Coord{X: 7, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestPath(t *testing.T) {
	g := snake()
	from, to := grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 5}
	p, err := solver.Path(g, from, to)
	require.NoError(t, err)
	require.Len(t, p, 17)
	assert.Equal(t, from, p[0])
	assert.Equal(t, to, p[len(p)-1])
	for i := 1; i < len(p); i++ {
		dx, dy := p[i].X-p[i-1].X, p[i].Y-p[i-1].Y
		assert.Equal(t, 1, dx*dx+dy*dy, "step %d is not a unit move", i)
		assert.True(t, g.Passable(p[i].X, p[i].Y))
	}

	require.NoError(t, g.Set(5, 2, grid.Wall))
	_, err = solver.Path(g, from, to)
	assert.ErrorIs(t, err, solver.ErrNoPath)
}

func TestIsPerfect(t *testing.T) {
	assert.NoError(t, solver.IsPerfect(snake()))

	loop := grid.MustParse(
		"#####",
		"#   #",
		"# # #",
		"#   #",
		"#####",
	)
	assert.ErrorIs(t, solver.IsPerfect(loop), solver.ErrCycle)

	uncovered := grid.MustParse(
		"#####",
		"#   #",
		"### #",
		"### #",
		"#####",
	)
	assert.ErrorIs(t, solver.IsPerfect(uncovered), solver.ErrUncoveredLattice)
}
