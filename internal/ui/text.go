// internal/ui/text.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — моноширинный шрифт без загрузки файлов
var DefaultFace font.Face = basicfont.Face7x13

// drawCentered рисует строку по центру прямоугольника
func drawCentered(screen *ebiten.Image, s string, face font.Face, r image.Rectangle, clr color.Color) {
	bounds := text.BoundString(face, s)
	// text.Draw принимает базовую линию, bounds.Min.Y отрицателен
	x := r.Min.X + (r.Dx()-bounds.Dx())/2 - bounds.Min.X
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, s, face, x, y, clr)
}

// drawLabel рисует строку, (x, y) — левый верхний угол текста
func drawLabel(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, s, face, x, y+ascent, clr)
}
