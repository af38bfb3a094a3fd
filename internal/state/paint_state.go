// internal/state/paint_state.go
package state

import (
	"image"

	"colored-points/internal/app"
	"colored-points/internal/config"
	"colored-points/internal/input"
	"colored-points/internal/shape"
	"colored-points/internal/ui"
	"colored-points/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PaintState — основной режим: холст и панель инструментов
type PaintState struct {
	sm         *StateMachine
	app        *app.App
	canvas     *render.Canvas
	canvasRect image.Rectangle
	toolbar    *ui.Toolbar
	menu       func() State
	lastCursor image.Point
	touchID    ebiten.TouchID
	touching   bool
}

// NewPaintState собирает режим рисования. menu может быть nil — тогда Esc ничего не делает.
func NewPaintState(sm *StateMachine, a *app.App, canvas *render.Canvas, menu func() State) *PaintState {
	w, h := canvas.SurfaceSize()
	canvasRect := image.Rect(0, 0, w, h)
	toolbar := ui.NewToolbar(a, image.Rect(0, h, w, h+config.PanelHeight))
	a.Start(toolbar.Stats)
	return &PaintState{
		sm:         sm,
		app:        a,
		canvas:     canvas,
		canvasRect: canvasRect,
		toolbar:    toolbar,
		menu:       menu,
	}
}

func (p *PaintState) Enter() {}

func (p *PaintState) Update(deltaTime float64) {
	if p.handleKeys() {
		return
	}
	p.handleMouse()
	p.handleTouch()
}

// handleKeys обрабатывает горячие клавиши, true — состояние сменилось
func (p *PaintState) handleKeys() bool {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		p.app.SetKind(shape.Point)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		p.app.SetKind(shape.Triangle)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		p.app.SetKind(shape.Circle)
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace), inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		p.app.ClearScene()
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		p.app.PaintComposite()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if p.menu != nil {
			p.sm.SetState(p.menu())
			return true
		}
	}
	return false
}

func (p *PaintState) handleMouse() {
	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	moved := cursor != p.lastCursor
	p.lastCursor = cursor

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if p.toolbar.Contains(x, y) {
			p.toolbar.Press(x, y)
		} else if cursor.In(p.canvasRect) {
			p.app.PointerDown(p.pointer(x, y))
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if p.toolbar.Dragging() {
			p.toolbar.Drag(x)
		} else if moved && cursor.In(p.canvasRect) {
			// Рисование протягиванием: новая фигура на каждое движение с зажатой кнопкой
			p.app.PointerDrag(p.pointer(x, y))
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.toolbar.Release()
	}
}

// handleTouch — то же для первого касания на сенсорном экране
func (p *PaintState) handleTouch() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if p.touching {
			break
		}
		x, y := ebiten.TouchPosition(id)
		if p.toolbar.Contains(x, y) {
			p.toolbar.Press(x, y)
		} else if image.Pt(x, y).In(p.canvasRect) {
			p.app.PointerDown(p.pointer(x, y))
		}
		p.touchID, p.touching = id, true
		p.lastCursor = image.Pt(x, y)
	}
	if !p.touching {
		return
	}
	if inpututil.IsTouchJustReleased(p.touchID) {
		p.toolbar.Release()
		p.touching = false
		return
	}
	x, y := ebiten.TouchPosition(p.touchID)
	pt := image.Pt(x, y)
	if pt == p.lastCursor {
		return
	}
	p.lastCursor = pt
	if p.toolbar.Dragging() {
		p.toolbar.Drag(x)
	} else if pt.In(p.canvasRect) {
		p.app.PointerDrag(p.pointer(x, y))
	}
}

func (p *PaintState) pointer(x, y int) input.PointerEvent {
	return input.PointerEvent{X: float64(x), Y: float64(y), Surface: p.canvasRect}
}

func (p *PaintState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	p.canvas.Draw(screen, float64(p.canvasRect.Min.X), float64(p.canvasRect.Min.Y))
	p.toolbar.Draw(screen, p.lastCursor.X, p.lastCursor.Y)
}

func (p *PaintState) Exit() {
	p.toolbar.Release()
}
