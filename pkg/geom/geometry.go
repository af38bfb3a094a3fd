// pkg/geom/geometry.go
package geom

import "github.com/chewxy/math32"

// Vec2 — точка в нормализованных координатах устройства
type Vec2 struct {
	X, Y float32
}

// Add возвращает сумму векторов
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub возвращает разность векторов
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len возвращает длину вектора
func (v Vec2) Len() float32 {
	return math32.Hypot(v.X, v.Y)
}

// TrianglePrimitive строит равнобедренный треугольник вокруг center.
// Вершины: левая, правая, вершина сверху.
func TrianglePrimitive(center Vec2, edgeScale float32) [3]Vec2 {
	d := edgeScale
	return [3]Vec2{
		{X: center.X - d, Y: center.Y - d},
		{X: center.X + d, Y: center.Y - d},
		{X: center.X, Y: center.Y + d},
	}
}

// CirclePrimitive возвращает веер треугольников, аппроксимирующий круг:
// [center, v0, v1, ..., vn], где vn совпадает с v0.
// Веер описывает ровно segments треугольников (center, vi, vi+1).
// Нижняя граница для segments здесь не применяется, при segments <= 0 результат пустой.
func CirclePrimitive(center Vec2, radius float32, segments int) []Vec2 {
	if segments <= 0 {
		return nil
	}
	fan := make([]Vec2, 0, segments+2)
	fan = append(fan, center)
	step := 2 * math32.Pi / float32(segments)
	for i := 0; i <= segments; i++ {
		// Замыкаем веер точной копией первой вершины, чтобы не было щели из-за округления
		if i == segments {
			fan = append(fan, fan[1])
			break
		}
		angle := step * float32(i)
		fan = append(fan, Vec2{
			X: center.X + radius*math32.Cos(angle),
			Y: center.Y + radius*math32.Sin(angle),
		})
	}
	return fan
}

// FanTriangleCount — число треугольников в веере из n вершин
func FanTriangleCount(n int) int {
	if n < 3 {
		return 0
	}
	return n - 2
}

// FanToTriangles разворачивает веер в явный список треугольников по 3 вершины
func FanToTriangles(fan []Vec2) []Vec2 {
	count := FanTriangleCount(len(fan))
	if count == 0 {
		return nil
	}
	tris := make([]Vec2, 0, count*3)
	for i := 1; i <= count; i++ {
		tris = append(tris, fan[0], fan[i], fan[i+1])
	}
	return tris
}
