package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/solver"
)

// ErrInvalidImage indicates a missing grid or an unusable cell size.
var ErrInvalidImage = errors.New("render: invalid image request")

const (
	// DefaultCellPixels is the edge length of one grid cell in the output.
	DefaultCellPixels = 12
	// MinCellPixels is the smallest cell that still leaves room for arrows.
	MinCellPixels = 4
)

// Palette colors the cell states and overlays.
type Palette struct {
	Wall     color.RGBA
	Open     color.RGBA
	Exit     color.RGBA
	Route    color.RGBA
	Entrance color.RGBA
	Goal     color.RGBA
}

// DefaultPalette draws black walls on white, in the same spirit as a
// printed maze.
func DefaultPalette() Palette {
	return Palette{
		Wall:     color.RGBA{0, 0, 0, 255},
		Open:     color.RGBA{255, 255, 255, 255},
		Exit:     color.RGBA{200, 215, 255, 255},
		Route:    color.RGBA{255, 220, 120, 255},
		Entrance: color.RGBA{40, 180, 70, 255},
		Goal:     color.RGBA{100, 120, 255, 255},
	}
}

// Option configures Render.
type Option func(*options)

type options struct {
	cell    int
	palette Palette
	route   bool
}

// WithCellPixels sets the edge length of one cell.
func WithCellPixels(px int) Option {
	return func(o *options) { o.cell = px }
}

// WithPalette replaces the default colors.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithRoute shades the shortest route from entrance to exit.
func WithRoute(on bool) Option {
	return func(o *options) { o.route = on }
}

// mazeImage satisfies image.Image by delegating each pixel to the cell it
// falls into.
type mazeImage struct {
	g       *grid.Grid
	cell    int
	palette Palette
	onRoute []bool
}

func (m *mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *mazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.g.Width()*m.cell, m.g.Height()*m.cell)
}

func (m *mazeImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	cx, cy := x/m.cell, y/m.cell
	idx := m.g.Index(cx, cy)
	if m.onRoute != nil && m.onRoute[idx] {
		return m.palette.Route
	}
	switch {
	case m.g.Is(cx, cy, grid.Open):
		return m.palette.Open
	case m.g.Is(cx, cy, grid.Exit):
		return m.palette.Exit
	}
	return m.palette.Wall
}

// Render rasterizes g with an arrow leaving the entrance and an arrow
// arriving at the exit. Both arrows follow the shortest route; when there is
// none they point right.
func Render(g *grid.Grid, entrance, exit grid.Coord, opts ...Option) (*image.RGBA, error) {
	o := options{cell: DefaultCellPixels, palette: DefaultPalette()}
	for _, opt := range opts {
		opt(&o)
	}
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidImage)
	}
	if o.cell < MinCellPixels {
		return nil, fmt.Errorf("%w: cell size %d below %d", ErrInvalidImage, o.cell, MinCellPixels)
	}
	for _, c := range []grid.Coord{entrance, exit} {
		if !g.InBounds(c.X, c.Y) {
			return nil, fmt.Errorf("render %v: %w", c, grid.ErrOutOfBounds)
		}
	}

	base := &mazeImage{g: g, cell: o.cell, palette: o.palette}
	// An unreachable exit still renders, just without route or orientation.
	route, _ := solver.Path(g, entrance, exit)
	if o.route && route != nil {
		base.onRoute = make([]bool, g.Len())
		for _, c := range route {
			base.onRoute[g.Index(c.X, c.Y)] = true
		}
	}

	start, end := right, right
	if len(route) > 1 {
		start = heading(route[0], route[1])
		end = heading(route[len(route)-2], route[len(route)-1])
	}

	decorated := image_utils.NewCompositeImage()
	if err := decorated.AddImage(image_utils.ToRGBA(base), image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("render base maze: %w", err)
	}
	arrow := outlinedArrow(start, o.palette.Entrance, o.cell)
	if err := decorated.AddImage(arrow, image.Pt(entrance.X*o.cell, entrance.Y*o.cell)); err != nil {
		return nil, fmt.Errorf("render entrance arrow: %w", err)
	}
	arrow = outlinedArrow(end, o.palette.Goal, o.cell)
	if err := decorated.AddImage(arrow, image.Pt(exit.X*o.cell, exit.Y*o.cell)); err != nil {
		return nil, fmt.Errorf("render exit arrow: %w", err)
	}
	return image_utils.ToRGBA(decorated), nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes img to path, replacing any existing file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
