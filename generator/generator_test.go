package generator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/generator"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/rng"
	"github.com/katalvlaran/lvmaze/solver"
)

var sizes = [][2]int{
	{5, 5}, {5, 7}, {7, 5}, {9, 9}, {11, 11}, {15, 9}, {31, 15}, {41, 21}, {61, 31},
}

// TestGenerate_PerfectMaze checks the spanning-tree postcondition for every
// algorithm across a spread of sizes and seeds:
//   - every lattice cell is open,
//   - every open cell is a lattice cell or a wall between two lattice cells,
//   - one region, with exactly open-1 links.
func TestGenerate_PerfectMaze(t *testing.T) {
	for _, alg := range generator.Algorithms {
		for _, sz := range sizes {
			for seed := int64(1); seed <= 3; seed++ {
				name := fmt.Sprintf("%s/%dx%d/seed%d", alg, sz[0], sz[1], seed)
				t.Run(name, func(t *testing.T) {
					g, err := generator.Generate(sz[0], sz[1], alg, rng.New(seed))
					require.NoError(t, err)
					require.NoError(t, solver.IsPerfect(g))

					for _, c := range g.Cells(grid.Open) {
						oddX, oddY := c.X%2 == 1, c.Y%2 == 1
						assert.True(t, oddX || oddY, "%v is a pillar position", c)
						assert.True(t, g.InInterior(c.X, c.Y), "%v on the border", c)
					}

					lattice := len(g.LatticeCells())
					assert.Equal(t, 2*lattice-1, g.Count(grid.Open))
					assert.Zero(t, g.Count(grid.Exit))
				})
			}
		}
	}
}

// TestGenerate_EveryOpenCellReachable walks from the start with BFS.
func TestGenerate_EveryOpenCellReachable(t *testing.T) {
	r := rng.New(99)
	for _, alg := range generator.Algorithms {
		g, err := generator.Generate(21, 13, alg, r)
		require.NoError(t, err)
		m, err := solver.Distances(g, grid.Coord{X: 1, Y: 1})
		require.NoError(t, err)
		assert.Equal(t, g.Count(grid.Open), m.Count(), alg.String())
	}
}

// TestGenerate_SeedsDiffer guards against hidden fixed seeding.
func TestGenerate_SeedsDiffer(t *testing.T) {
	for _, alg := range generator.Algorithms {
		a, err := generator.Generate(21, 21, alg, rng.New(1))
		require.NoError(t, err)
		b, err := generator.Generate(21, 21, alg, rng.New(2))
		require.NoError(t, err)
		assert.False(t, a.Equal(b), "%s produced identical mazes for different seeds", alg)
	}
}

// TestGenerate_SharedStreamVaries reuses one stream, as a long-running
// process would, and expects consecutive mazes to differ.
func TestGenerate_SharedStreamVaries(t *testing.T) {
	r := rng.New(5)
	for _, alg := range generator.Algorithms {
		a, err := generator.Generate(21, 21, alg, r)
		require.NoError(t, err)
		b, err := generator.Generate(21, 21, alg, r)
		require.NoError(t, err)
		assert.False(t, a.Equal(b), alg.String())
	}
}

// TestGenerate_FixedSeedReproducible replays a 5×5 RandomizedCarve maze.
func TestGenerate_FixedSeedReproducible(t *testing.T) {
	first, err := generator.Generate(5, 5, generator.RandomizedCarve, rng.New(2024))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := generator.Generate(5, 5, generator.RandomizedCarve, rng.New(2024))
		require.NoError(t, err)
		assert.Equal(t, first.Rows(), again.Rows())
	}

	for _, alg := range generator.Algorithms {
		a, err := generator.Generate(25, 17, alg, rng.New(11))
		require.NoError(t, err)
		b, err := generator.Generate(25, 17, alg, rng.New(11))
		require.NoError(t, err)
		assert.True(t, a.Equal(b), alg.String())
	}
}

func TestGenerate_Errors(t *testing.T) {
	r := rng.New(1)

	for _, sz := range [][2]int{{4, 5}, {5, 4}, {3, 3}, {0, 7}, {-5, -5}} {
		_, err := generator.Generate(sz[0], sz[1], generator.RandomizedCarve, r)
		assert.ErrorIs(t, err, grid.ErrInvalidDimensions, "%v", sz)
	}

	_, err := generator.Generate(5, 5, generator.Algorithm(42), r)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	_, err = generator.Generate(5, 5, generator.QueueCarve, nil)
	assert.ErrorIs(t, err, generator.ErrNilSource)

	for _, alg := range []generator.Algorithm{generator.RandomizedCarve, generator.QueueCarve} {
		_, err = generator.Generate(7, 7, alg, r, generator.WithStart(grid.Coord{X: 2, Y: 1}))
		assert.ErrorIs(t, err, generator.ErrInvalidStart, alg.String())
	}
	_, err = generator.Generate(7, 7, generator.FrontierGrowth, r, generator.WithStart(grid.Coord{X: 6, Y: 6}))
	assert.ErrorIs(t, err, generator.ErrInvalidStart)
}

// TestGenerate_CustomStart checks that the carvers honour WithStart and that
// FrontierGrowth snaps even coordinates onto the lattice.
func TestGenerate_CustomStart(t *testing.T) {
	for _, alg := range generator.Algorithms {
		g, err := generator.Generate(11, 9, alg, rng.New(3), generator.WithStart(grid.Coord{X: 5, Y: 3}))
		require.NoError(t, err)
		assert.NoError(t, solver.IsPerfect(g), alg.String())
	}
	g, err := generator.Generate(11, 9, generator.FrontierGrowth, rng.New(3), generator.WithStart(grid.Coord{X: 4, Y: 4}))
	require.NoError(t, err)
	assert.NoError(t, solver.IsPerfect(g))
}

func TestAlgorithmNames(t *testing.T) {
	for _, alg := range generator.Algorithms {
		got, err := generator.ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)

		text, err := alg.MarshalText()
		require.NoError(t, err)
		var back generator.Algorithm
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, alg, back)
	}

	got, err := generator.ParseAlgorithm(" Edge_Selection ")
	require.NoError(t, err)
	assert.Equal(t, generator.EdgeSelection, got)

	_, err = generator.ParseAlgorithm("wilson")
	assert.True(t, errors.Is(err, generator.ErrUnknownAlgorithm))
	assert.Equal(t, "Algorithm(9)", generator.Algorithm(9).String())
}

// countingSource wraps a stream and counts draws, to prove that every
// algorithm consumes randomness from the caller's stream.
type countingSource struct {
	rng.Source
	calls int
}

func (c *countingSource) Intn(n int) int {
	c.calls++
	return c.Source.Intn(n)
}

func (c *countingSource) Shuffle(n int, swap func(i, j int)) {
	c.calls++
	c.Source.Shuffle(n, swap)
}

func TestGenerate_DrawsFromCallerStream(t *testing.T) {
	for _, alg := range generator.Algorithms {
		src := &countingSource{Source: rng.New(1)}
		_, err := generator.Generate(9, 9, alg, src)
		require.NoError(t, err)
		assert.Positive(t, src.calls, alg.String())
	}
}
