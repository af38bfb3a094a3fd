// pkg/render/color.go
package render

import (
	"image/color"

	"colored-points/internal/raster"

	"github.com/hajimehoshi/ebiten/v2"
)

// DarkenColor уменьшает яркость цвета вдвое
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// paintVertices задаёт всем вершинам один цвет (прямая альфа)
func paintVertices(vs []ebiten.Vertex, c raster.Color) {
	for i := range vs {
		vs[i].ColorR = c.R
		vs[i].ColorG = c.G
		vs[i].ColorB = c.B
		vs[i].ColorA = c.A
	}
}
