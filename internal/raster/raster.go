// internal/raster/raster.go
package raster

import (
	"image/color"

	"colored-points/pkg/geom"

	"github.com/chewxy/math32"
)

// Primitive — способ группировки вершин при отрисовке
type Primitive int

const (
	Points Primitive = iota
	Triangles
	TriangleFan
)

func (p Primitive) String() string {
	switch p {
	case Points:
		return "points"
	case Triangles:
		return "triangles"
	case TriangleFan:
		return "triangle_fan"
	}
	return "unknown"
}

// Color — цвет в диапазоне [0, 1] на канал.
// Значения за пределами диапазона принимаются, результат на экране не определён.
type Color struct {
	R, G, B, A float32
}

// Rasterizer — граница растеризации, всё что ядру нужно от графики.
type Rasterizer interface {
	// SubmitVertices отправляет вершины в NDC. pointDiameter учитывается только для Points.
	SubmitVertices(kind Primitive, vertices []geom.Vec2, c Color, pointDiameter float32)
	ClearSurface()
	SurfaceSize() (width, height int)
}

// TriangleCount возвращает число треугольников для заданного набора вершин
func TriangleCount(kind Primitive, vertexCount int) int {
	switch kind {
	case Triangles:
		return vertexCount / 3
	case TriangleFan:
		return geom.FanTriangleCount(vertexCount)
	}
	return 0
}

// ToRGBA переводит цвет в color.RGBA (предумноженный альфой, как принято в image/color).
// Каналы вне [0, 1] обрезаются.
func (c Color) ToRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
