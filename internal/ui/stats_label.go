// internal/ui/stats_label.go
package ui

import (
	"fmt"
	"math"

	"colored-points/internal/config"
	"colored-points/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// StatsLabel показывает метрики последней перерисовки
type StatsLabel struct {
	X, Y int
	text string
}

var _ system.FrameReporter = (*StatsLabel)(nil)

func NewStatsLabel(x, y int) *StatsLabel {
	return &StatsLabel{X: x, Y: y}
}

func (l *StatsLabel) ReportFrame(stats system.FrameStats) {
	l.text = fmt.Sprintf("Number of Dots: %d | MS: %d | FPS: %g",
		stats.Shapes, int(math.Floor(stats.Millis())), stats.FPS())
}

// Text возвращает текущую строку
func (l *StatsLabel) Text() string {
	return l.text
}

func (l *StatsLabel) Draw(screen *ebiten.Image, face font.Face) {
	drawLabel(screen, l.text, face, l.X, l.Y, config.TextLightColor)
}
