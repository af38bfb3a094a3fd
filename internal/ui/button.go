// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"colored-points/internal/config"
	"colored-points/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button — кликабельная кнопка панели инструментов
type Button struct {
	Rect          image.Rectangle
	Label         string
	OnClick       func()
	Active        func() bool // Подсветка выбранного режима, может быть nil
	LastClickTime time.Time
}

// NewButton создаёт кнопку
func NewButton(rect image.Rectangle, label string, onClick func()) *Button {
	return &Button{Rect: rect, Label: label, OnClick: onClick}
}

// Contains проверяет, попадает ли точка в кнопку
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Click вызывает обработчик и запускает анимацию нажатия
func (b *Button) Click() {
	b.LastClickTime = time.Now()
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Draw отрисовывает кнопку
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	var bg color.RGBA
	switch {
	case b.Active != nil && b.Active():
		bg = config.ButtonActive
	case hovered:
		bg = config.ButtonHover
	default:
		bg = config.ButtonColor
	}

	// Короткая «вспышка» после нажатия, затухает экспоненциально
	elapsed := time.Since(b.LastClickTime).Seconds()
	inset := float32(2 * math.Exp(-elapsed*config.ClickPulseRate))

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x+inset, y+inset, w-2*inset, h-2*inset, bg, false)
	vector.StrokeRect(screen, x, y, w, h, config.StrokeWidth, render.DarkenColor(bg), false)

	drawCentered(screen, b.Label, face, b.Rect, config.TextLightColor)
}
