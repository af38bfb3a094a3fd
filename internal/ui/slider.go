// internal/ui/slider.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"colored-points/internal/config"
	"colored-points/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Slider — ползунок. Значение двигается вслед за курсором,
// но в инструмент попадает только при отпускании кнопки.
type Slider struct {
	Rect      image.Rectangle
	Label     string
	Min, Max  float64
	Step      float64 // 0 — без округления
	Value     float64
	Format    func(v float64) string
	OnRelease func(v float64)
	Tint      color.RGBA

	dragging bool
}

// NewSlider создаёт ползунок с начальным значением value
func NewSlider(rect image.Rectangle, label string, min, max, value float64, onRelease func(float64)) *Slider {
	return &Slider{
		Rect:      rect,
		Label:     label,
		Min:       min,
		Max:       max,
		Value:     utils.Clamp(value, min, max),
		OnRelease: onRelease,
		Tint:      config.SliderKnob,
	}
}

// Contains проверяет попадание в область ползунка
func (s *Slider) Contains(x, y int) bool {
	return image.Pt(x, y).In(s.Rect)
}

// Dragging сообщает, захвачен ли ползунок
func (s *Slider) Dragging() bool {
	return s.dragging
}

// Press захватывает ползунок и сразу переносит значение под курсор
func (s *Slider) Press(x int) {
	s.dragging = true
	s.Move(x)
}

// Move обновляет значение, пока ползунок захвачен
func (s *Slider) Move(x int) {
	if !s.dragging {
		return
	}
	t := utils.InverseLerp(float64(s.Rect.Min.X), float64(s.Rect.Max.X), float64(x))
	v := utils.Lerp(s.Min, s.Max, utils.Clamp(t, 0, 1))
	if s.Step > 0 {
		v = s.Min + float64(int((v-s.Min)/s.Step+0.5))*s.Step
	}
	s.Value = utils.Clamp(v, s.Min, s.Max)
}

// Release отпускает ползунок и передаёт значение дальше
func (s *Slider) Release() {
	if !s.dragging {
		return
	}
	s.dragging = false
	if s.OnRelease != nil {
		s.OnRelease(s.Value)
	}
}

func (s *Slider) text() string {
	if s.Format != nil {
		return fmt.Sprintf("%s: %s", s.Label, s.Format(s.Value))
	}
	return fmt.Sprintf("%s: %.2f", s.Label, s.Value)
}

// Draw отрисовывает дорожку, ручку и подпись справа
func (s *Slider) Draw(screen *ebiten.Image, face font.Face) {
	x, y := float32(s.Rect.Min.X), float32(s.Rect.Min.Y)
	w, h := float32(s.Rect.Dx()), float32(s.Rect.Dy())
	vector.DrawFilledRect(screen, x, y+h/2-2, w, 4, config.SliderTrack, false)

	t := float32(utils.InverseLerp(s.Min, s.Max, s.Value))
	vector.DrawFilledCircle(screen, x+t*w, y+h/2, h/2, s.Tint, true)
	if s.dragging {
		vector.StrokeCircle(screen, x+t*w, y+h/2, h/2+2, config.StrokeWidth, config.TextLightColor, true)
	}

	drawLabel(screen, s.text(), face, s.Rect.Max.X+config.PanelPadding, s.Rect.Min.Y, config.TextLightColor)
}
