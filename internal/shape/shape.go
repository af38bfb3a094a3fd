// internal/shape/shape.go
package shape

import (
	"errors"
	"fmt"
	"strings"

	"colored-points/internal/raster"
	"colored-points/pkg/geom"
)

// ErrUnknownKind возвращается для вида фигуры вне {Point, Triangle, Circle}
var ErrUnknownKind = errors.New("unknown shape kind")

// Kind — вид фигуры
type Kind int

const (
	Point Kind = iota
	Triangle
	Circle
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case Triangle:
		return "triangle"
	case Circle:
		return "circle"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind разбирает имя вида фигуры без учёта регистра
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "point":
		return Point, nil
	case "triangle":
		return Triangle, nil
	case "circle":
		return Circle, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Shape — фигура, которая умеет отрисовать себя.
// Все поля задаются при создании и больше не меняются.
type Shape interface {
	Kind() Kind
	Position() geom.Vec2
	Color() raster.Color
	Size() float32
	// Render каждый раз заново отправляет свои вершины растеризатору
	Render(r raster.Rasterizer)
}

// base — общие для всех вариантов поля
type base struct {
	position geom.Vec2
	color    raster.Color
	size     float32
}

func (b base) Position() geom.Vec2  { return b.position }
func (b base) Color() raster.Color { return b.color }
func (b base) Size() float32        { return b.size }

// Params — значения инструмента, захваченные в момент создания фигуры
type Params struct {
	Kind     Kind
	Position geom.Vec2
	Color    raster.Color
	Size     float32
	Segments int // только для Circle
}

// New создаёт вариант фигуры по виду из Params
func New(p Params) (Shape, error) {
	b := base{position: p.Position, color: p.Color, size: p.Size}
	switch p.Kind {
	case Point:
		return &PointShape{base: b}, nil
	case Triangle:
		return &TriangleShape{base: b}, nil
	case Circle:
		return &CircleShape{base: b, segments: p.Segments}, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(p.Kind))
}
