// internal/shape/variants.go
package shape

import (
	"colored-points/internal/raster"
	"colored-points/pkg/geom"
)

// PointShape — одиночная точка, size задаёт диаметр в пикселях
type PointShape struct {
	base
}

func (s *PointShape) Kind() Kind { return Point }

func (s *PointShape) Render(r raster.Rasterizer) {
	r.SubmitVertices(raster.Points, []geom.Vec2{s.position}, s.color, s.size)
}

// TriangleShape — закрашенный треугольник, size — масштаб ребра в NDC
type TriangleShape struct {
	base
}

func (s *TriangleShape) Kind() Kind { return Triangle }

func (s *TriangleShape) Render(r raster.Rasterizer) {
	vs := geom.TrianglePrimitive(s.position, s.size)
	r.SubmitVertices(raster.Triangles, vs[:], s.color, 0)
}

// CircleShape — правильный многоугольник из segments треугольников, size — радиус в NDC
type CircleShape struct {
	base
	segments int
}

func (s *CircleShape) Kind() Kind { return Circle }

// Segments возвращает число сегментов, захваченное при создании
func (s *CircleShape) Segments() int { return s.segments }

func (s *CircleShape) Render(r raster.Rasterizer) {
	fan := geom.CirclePrimitive(s.position, s.size, s.segments)
	if len(fan) == 0 {
		return
	}
	r.SubmitVertices(raster.TriangleFan, fan, s.color, 0)
}
