// internal/app/app.go
package app

import (
	"fmt"
	"log/slog"

	"colored-points/internal/defs"
	"colored-points/internal/event"
	"colored-points/internal/input"
	"colored-points/internal/logging"
	"colored-points/internal/raster"
	"colored-points/internal/session"
	"colored-points/internal/shape"
	"colored-points/internal/system"
)

// ToolChange — данные события ToolChanged
type ToolChange struct {
	Field string
	Value any
}

// App связывает сессию, диспетчер, систему отрисовки и контроллер ввода.
// Всё вызывается из одного потока (Update у ebiten).
type App struct {
	Session         *session.Session
	EventDispatcher *event.Dispatcher
	RenderSystem    *system.RenderSystem
	Input           *input.Controller
	log             *slog.Logger
}

// New собирает приложение вокруг растеризатора и готовой картинки
func New(s *session.Session, r raster.Rasterizer, artwork *defs.Artwork) (*App, error) {
	if s == nil {
		return nil, fmt.Errorf("session cannot be nil")
	}
	if r == nil {
		return nil, fmt.Errorf("rasterizer cannot be nil")
	}
	dispatcher := event.NewDispatcher()
	a := &App{
		Session:         s,
		EventDispatcher: dispatcher,
		RenderSystem:    system.NewRenderSystem(s.Scene, r, artwork, dispatcher),
		Input:           input.NewController(s, dispatcher),
		log:             logging.Logger().With("session", s.ID.String()),
	}
	dispatcher.Subscribe(event.ToolChanged, event.ListenerFunc(a.onToolChanged))
	return a, nil
}

// Start подключает вывод метрик и рисует стартовое состояние — пустую поверхность
func (a *App) Start(reporter system.FrameReporter) {
	a.RenderSystem.SetReporter(reporter)
	a.RenderSystem.RedrawAll()
	a.log.Info("session started")
}

func (a *App) onToolChanged(e event.Event) {
	if change, ok := e.Data.(ToolChange); ok {
		a.log.Debug("tool changed", "field", change.Field, "value", change.Value)
	}
}

// SetKind выбирает вид фигуры
func (a *App) SetKind(k shape.Kind) {
	if err := a.Session.Tool.SetKind(k); err != nil {
		a.log.Warn("tool kind rejected", "error", err)
		return
	}
	a.EventDispatcher.Emit(event.ToolChanged, ToolChange{Field: "kind", Value: k.String()})
}

// SetColorChannel задаёт один канал цвета
func (a *App) SetColorChannel(index int, value float32) {
	if err := a.Session.Tool.SetColorChannel(index, value); err != nil {
		a.log.Warn("color channel rejected", "error", err)
		return
	}
	a.EventDispatcher.Emit(event.ToolChanged, ToolChange{Field: fmt.Sprintf("color[%d]", index), Value: value})
}

// SetSize задаёт размер фигуры
func (a *App) SetSize(v float32) {
	a.Session.Tool.SetSize(v)
	a.EventDispatcher.Emit(event.ToolChanged, ToolChange{Field: "size", Value: a.Session.Tool.Snapshot().Size})
}

// SetSegmentCount задаёт число сегментов круга
func (a *App) SetSegmentCount(n int) {
	a.Session.Tool.SetSegmentCount(n)
	a.EventDispatcher.Emit(event.ToolChanged, ToolChange{Field: "segments", Value: a.Session.Tool.Snapshot().Segments})
}

// ClearScene очищает сцену и перерисовывает поверхность
func (a *App) ClearScene() {
	n := a.Session.Scene.Len()
	a.Session.Scene.Clear()
	a.log.Info("scene cleared", "shapes", n)
	a.EventDispatcher.Emit(event.SceneCleared, nil)
}

// PaintComposite рисует готовую картинку в обход сцены
func (a *App) PaintComposite() {
	a.EventDispatcher.Emit(event.CompositeRequested, nil)
}

// PointerDown — нажатие на холсте
func (a *App) PointerDown(ev input.PointerEvent) {
	if err := a.Input.OnPointerDown(ev); err != nil {
		a.log.Warn("pointer down ignored", "error", err)
	}
}

// PointerDrag — движение с зажатой кнопкой
func (a *App) PointerDrag(ev input.PointerEvent) {
	if err := a.Input.OnPointerDrag(ev); err != nil {
		a.log.Warn("pointer drag ignored", "error", err)
	}
}
