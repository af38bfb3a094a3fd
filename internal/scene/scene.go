// internal/scene/scene.go
package scene

import "colored-points/internal/shape"

// Scene — упорядоченный список фигур. Порядок добавления = порядок отрисовки.
// Сцена принадлежит одной сессии, блокировок нет.
type Scene struct {
	shapes []shape.Shape
}

// New создаёт пустую сцену
func New() *Scene {
	return &Scene{}
}

// Append добавляет фигуру в конец
func (s *Scene) Append(sh shape.Shape) {
	s.shapes = append(s.shapes, sh)
}

// Clear опустошает сцену
func (s *Scene) Clear() {
	s.shapes = nil
}

// Len возвращает число фигур
func (s *Scene) Len() int {
	return len(s.shapes)
}

// Shapes возвращает копию списка фигур
func (s *Scene) Shapes() []shape.Shape {
	out := make([]shape.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Each обходит фигуры в порядке добавления
func (s *Scene) Each(fn func(i int, sh shape.Shape)) {
	for i, sh := range s.shapes {
		fn(i, sh)
	}
}
