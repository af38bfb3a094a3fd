// internal/input/controller.go
package input

import (
	"fmt"
	"image"

	"colored-points/internal/event"
	"colored-points/internal/logging"
	"colored-points/internal/session"
	"colored-points/internal/shape"
	"colored-points/internal/utils"
	"colored-points/pkg/geom"
)

// PointerEvent — нажатие или перетаскивание в пикселях окна.
// Surface — прямоугольник холста внутри окна.
type PointerEvent struct {
	X, Y    float64
	Surface image.Rectangle
}

// Controller превращает события указателя в фигуры сцены
type Controller struct {
	session    *session.Session
	dispatcher *event.Dispatcher
}

// NewController создаёт контроллер для сессии
func NewController(s *session.Session, dispatcher *event.Dispatcher) *Controller {
	return &Controller{session: s, dispatcher: dispatcher}
}

// ToNDC переводит координаты события в NDC холста
func ToNDC(ev PointerEvent) geom.Vec2 {
	return utils.ScreenToNDC(ev.X, ev.Y, ev.Surface)
}

// OnPointerDown создаёт одну фигуру в точке нажатия
func (c *Controller) OnPointerDown(ev PointerEvent) error {
	return c.place(ev)
}

// OnPointerDrag вызывается повторно, пока основная кнопка зажата — рисование протягиванием
func (c *Controller) OnPointerDrag(ev PointerEvent) error {
	return c.place(ev)
}

func (c *Controller) place(ev PointerEvent) error {
	if ev.Surface.Empty() {
		return fmt.Errorf("pointer event on empty surface %v", ev.Surface)
	}
	tool := c.session.Tool.Snapshot()
	params := shape.Params{
		Kind:     tool.Kind,
		Position: ToNDC(ev),
		Color:    tool.Color,
		Size:     tool.Size,
		Segments: tool.Segments,
	}
	// Для точки размер в NDC переводим в диаметр в пикселях
	if tool.Kind == shape.Point {
		params.Size = tool.Size * float32(ev.Surface.Dx()) / 2
	}

	sh, err := shape.New(params)
	if err != nil {
		return fmt.Errorf("failed to create shape: %w", err)
	}
	c.session.Scene.Append(sh)
	logging.Logger().Debug("shape added",
		"kind", sh.Kind().String(),
		"x", params.Position.X,
		"y", params.Position.Y,
		"shapes", c.session.Scene.Len())
	c.dispatcher.Emit(event.ShapeAdded, sh)
	return nil
}
