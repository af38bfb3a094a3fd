// internal/ui/toolbar.go
package ui

import (
	"fmt"
	"image"

	"colored-points/internal/app"
	"colored-points/internal/config"
	"colored-points/internal/shape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Toolbar — панель под холстом: кнопки режимов, ползунки и строка метрик
type Toolbar struct {
	Rect    image.Rectangle
	Stats   *StatsLabel
	Face    font.Face
	buttons []*Button
	sliders []*Slider
	active  *Slider // Захваченный ползунок
}

// NewToolbar раскладывает элементы внутри rect и связывает их с приложением
func NewToolbar(a *app.App, rect image.Rectangle) *Toolbar {
	tb := &Toolbar{Rect: rect, Face: DefaultFace}
	tool := a.Session.Tool.Snapshot()

	x := rect.Min.X + config.PanelPadding
	y := rect.Min.Y + config.PanelPadding
	addButton := func(label string, onClick func(), active func() bool) {
		b := NewButton(image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight), label, onClick)
		b.Active = active
		tb.buttons = append(tb.buttons, b)
		x += config.ButtonWidth + config.ButtonSpacing
	}
	kindButton := func(label string, k shape.Kind) {
		addButton(label, func() { a.SetKind(k) }, func() bool { return a.Session.Tool.Snapshot().Kind == k })
	}
	kindButton("Point", shape.Point)
	kindButton("Triangle", shape.Triangle)
	kindButton("Circle", shape.Circle)
	addButton("Clear", a.ClearScene, nil)
	addButton("Dog", a.PaintComposite, nil)

	x = rect.Min.X + config.PanelPadding
	y += config.ButtonHeight + config.PanelPadding
	addSlider := func(label string, min, max, value, step float64, onRelease func(float64)) *Slider {
		s := NewSlider(image.Rect(x, y, x+config.SliderWidth, y+config.SliderHeight), label, min, max, value, onRelease)
		s.Step = step
		tb.sliders = append(tb.sliders, s)
		y += config.SliderSpacing
		return s
	}

	// Цвет задаётся в процентах, 0..100
	channels := []struct {
		label string
		value float32
	}{{"Red", tool.Color.R}, {"Green", tool.Color.G}, {"Blue", tool.Color.B}}
	for i, ch := range channels {
		s := addSlider(ch.label, 0, 100, float64(ch.value)*100, 1, func(v float64) {
			a.SetColorChannel(i, float32(v/100))
		})
		s.Format = func(v float64) string { return fmt.Sprintf("%.0f", v) }
	}
	tb.sliders[0].Tint.G, tb.sliders[0].Tint.B = 80, 80
	tb.sliders[1].Tint.R, tb.sliders[1].Tint.B = 80, 80
	tb.sliders[2].Tint.R, tb.sliders[2].Tint.G = 80, 80

	size := addSlider("Size", config.MinSize, config.MaxSize, float64(tool.Size), 0.005, func(v float64) {
		a.SetSize(float32(v))
	})
	size.Format = func(v float64) string { return fmt.Sprintf("%.3f", v) }

	segments := addSlider("Segments", config.MinSegments, config.MaxSegments, float64(tool.Segments), 1, func(v float64) {
		a.SetSegmentCount(int(v + 0.5))
	})
	segments.Format = func(v float64) string { return fmt.Sprintf("%.0f", v) }

	tb.Stats = NewStatsLabel(rect.Min.X+config.PanelPadding, y)
	return tb
}

// Contains проверяет, попадает ли точка на панель
func (t *Toolbar) Contains(x, y int) bool {
	return image.Pt(x, y).In(t.Rect)
}

// Press обрабатывает нажатие на панели, возвращает true, если что-то сработало
func (t *Toolbar) Press(x, y int) bool {
	for _, b := range t.buttons {
		if b.Contains(x, y) {
			b.Click()
			return true
		}
	}
	for _, s := range t.sliders {
		if s.Contains(x, y) {
			t.active = s
			s.Press(x)
			return true
		}
	}
	return false
}

// Drag двигает захваченный ползунок
func (t *Toolbar) Drag(x int) {
	if t.active != nil {
		t.active.Move(x)
	}
}

// Release отпускает ползунок, значение уходит в инструмент
func (t *Toolbar) Release() {
	if t.active != nil {
		t.active.Release()
		t.active = nil
	}
}

// Dragging сообщает, держит ли пользователь ползунок
func (t *Toolbar) Dragging() bool {
	return t.active != nil
}

func (t *Toolbar) Draw(screen *ebiten.Image, cursorX, cursorY int) {
	vector.DrawFilledRect(screen, float32(t.Rect.Min.X), float32(t.Rect.Min.Y),
		float32(t.Rect.Dx()), float32(t.Rect.Dy()), config.PanelColor, false)
	for _, b := range t.buttons {
		b.Draw(screen, t.Face, b.Contains(cursorX, cursorY))
	}
	for _, s := range t.sliders {
		s.Draw(screen, t.Face)
	}
	t.Stats.Draw(screen, t.Face)
}
