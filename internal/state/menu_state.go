// internal/state/menu_state.go
package state

import (
	"colored-points/internal/config"
	"colored-points/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

var helpLines = []string{
	"Colored Points",
	"",
	"Click or drag on the canvas to paint.",
	"P / T / C   point, triangle, circle",
	"Backspace   clear the canvas",
	"D           paint the dog",
	"Esc         back to this screen",
	"",
	"Press Space to start",
}

// MenuState — экран с подсказкой по управлению
type MenuState struct {
	sm   *StateMachine
	next func() State // Состояние рисования, создаётся лениво
}

func NewMenuState(sm *StateMachine, next func() State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next())
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)
	face := ui.DefaultFace
	lineHeight := face.Metrics().Height.Ceil() + 4
	b := screen.Bounds()
	y := b.Min.Y + (b.Dy()-lineHeight*len(helpLines))/2
	for _, line := range helpLines {
		bounds := text.BoundString(face, line)
		x := b.Min.X + (b.Dx()-bounds.Dx())/2
		text.Draw(screen, line, face, x, y+face.Metrics().Ascent.Ceil(), config.TextLightColor)
		y += lineHeight
	}
}

func (m *MenuState) Exit() {}
