package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/render"
)

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

var (
	entrance = grid.Coord{X: 1, Y: 1}
	exit     = grid.Coord{X: 5, Y: 5}
)

// centre returns the pixel in the middle of cell (x, y).
func centre(x, y, cell int) (int, int) {
	return x*cell + cell/2, y*cell + cell/2
}

func TestRender_Bounds(t *testing.T) {
	img, err := render.Render(snake(), entrance, exit, render.WithCellPixels(8))
	require.NoError(t, err)
	assert.Equal(t, 56, img.Bounds().Dx())
	assert.Equal(t, 56, img.Bounds().Dy())
}

func TestRender_CellColors(t *testing.T) {
	p := render.DefaultPalette()
	img, err := render.Render(snake(), entrance, exit, render.WithCellPixels(8))
	require.NoError(t, err)

	tests := map[string]struct {
		x, y int
		want color.RGBA
	}{
		"corner wall":   {0, 0, p.Wall},
		"inner wall":    {2, 2, p.Wall},
		"open corridor": {3, 1, p.Open},
		"open bend":     {1, 4, p.Open},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			px, py := centre(tc.x, tc.y, 8)
			assert.Equal(t, tc.want, img.RGBAAt(px, py))
		})
	}
}

func TestRender_Route(t *testing.T) {
	p := render.DefaultPalette()
	g := grid.MustParse(
		"#######",
		"#     #",
		"# ### #",
		"#    E#",
		"#######",
	)
	img, err := render.Render(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 5, Y: 3},
		render.WithCellPixels(8), render.WithRoute(true))
	require.NoError(t, err)

	// Both branches of the loop are six steps long; BFS prefers up, down,
	// right, left in that order, so the route goes down the left side first.
	px, py := centre(1, 2, 8)
	assert.Equal(t, p.Route, img.RGBAAt(px, py))
	px, py = centre(3, 3, 8)
	assert.Equal(t, p.Route, img.RGBAAt(px, py))
	px, py = centre(3, 1, 8)
	assert.Equal(t, p.Open, img.RGBAAt(px, py))
}

func TestRender_CustomPalette(t *testing.T) {
	p := render.DefaultPalette()
	p.Wall.R, p.Wall.G = 90, 10
	img, err := render.Render(snake(), entrance, exit, render.WithCellPixels(6), render.WithPalette(p))
	require.NoError(t, err)
	assert.Equal(t, p.Wall, img.RGBAAt(0, 0))
}

func TestRender_Errors(t *testing.T) {
	_, err := render.Render(nil, entrance, exit)
	assert.ErrorIs(t, err, render.ErrInvalidImage)

	_, err = render.Render(snake(), entrance, exit, render.WithCellPixels(render.MinCellPixels-1))
	assert.ErrorIs(t, err, render.ErrInvalidImage)

	_, err = render.Render(snake(), grid.Coord{X: 9, Y: 1}, exit)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestRender_Unreachable(t *testing.T) {
	g := grid.MustParse(
		"#####",
		"# # #",
		"# #E#",
		"# # #",
		"#####",
	)
	_, err := render.Render(g, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 3, Y: 2}, render.WithRoute(true))
	assert.NoError(t, err)
}

func TestWritePNG_Decodes(t *testing.T) {
	img, err := render.Render(snake(), entrance, exit)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, img))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())

	path := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, render.SavePNG(path, img))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
