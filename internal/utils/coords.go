// internal/utils/coords.go
package utils

import (
	"image"

	"colored-points/pkg/geom"
)

// ScreenToNDC переводит пиксельные координаты окна в NDC поверхности rect.
// Ось Y инвертируется: на экране вниз, в NDC вверх.
// Левый верхний угол rect -> (-1, 1), центр -> (0, 0), правый нижний -> (1, -1).
func ScreenToNDC(px, py float64, rect image.Rectangle) geom.Vec2 {
	halfW := float64(rect.Dx()) / 2
	halfH := float64(rect.Dy()) / 2
	x := ((px - float64(rect.Min.X)) - halfW) / halfW
	y := (halfH - (py - float64(rect.Min.Y))) / halfH
	return geom.Vec2{X: float32(x), Y: float32(y)}
}

// NDCToScreen — обратное преобразование в пиксели поверхности размером width x height
func NDCToScreen(v geom.Vec2, width, height int) (float32, float32) {
	halfW := float32(width) / 2
	halfH := float32(height) / 2
	return halfW + v.X*halfW, halfH - v.Y*halfH
}
