package render

import (
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/lvmaze/grid"
)

type direction int

const (
	up direction = iota
	down
	left
	right
)

// heading returns the direction of the unit step from a to b.
func heading(a, b grid.Coord) direction {
	switch {
	case b.Y < a.Y:
		return up
	case b.Y > a.Y:
		return down
	case b.X < a.X:
		return left
	}
	return right
}

func arrowFor(d direction, c color.Color) image.Image {
	switch d {
	case up:
		return image_utils.UpArrow(c)
	case down:
		return image_utils.DownArrow(c)
	case left:
		return image_utils.LeftArrow(c)
	}
	return image_utils.RightArrow(c)
}

// outlinedArrow returns a size×size arrow in c with a white core.
func outlinedArrow(d direction, c color.Color, size int) *image.RGBA {
	outer := image_utils.ResizeImage(arrowFor(d, c), size, size)
	inner := image_utils.ResizeImage(arrowFor(d, color.White), size/2, size/2)
	composite := image_utils.NewCompositeImage()
	composite.AddImage(outer, image.Pt(0, 0))
	composite.AddImage(inner, image.Pt(size/4, size/4))
	return image_utils.ToRGBA(composite)
}
