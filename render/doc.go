// Package render rasterizes a maze grid to an image.
//
// Every grid cell becomes a square of solid color. The entrance and exit
// carry outlined arrows drawn with github.com/yalue/image_utils, oriented
// along the shortest route, and the route itself can be shaded:
//
//	img, err := render.Render(g, entrance, exit, render.WithRoute(true))
//	if err != nil { … }
//	err = render.SavePNG("maze.png", img)
package render
