// cmd/paint/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"colored-points/internal/app"
	"colored-points/internal/config"
	"colored-points/internal/defs"
	"colored-points/internal/logging"
	"colored-points/internal/session"
	"colored-points/internal/state"
	"colored-points/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxDeltaTime = 0.06

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > maxDeltaTime {
		deltaTime = maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func loadArtwork(path string) (*defs.Artwork, error) {
	if path == "" {
		return defs.DefaultArtwork()
	}
	return defs.LoadArtwork(path)
}

func main() {
	settings, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		slog.Error("parse log level", "error", err)
		os.Exit(1)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	log := logging.Logger()

	artwork, err := loadArtwork(settings.ArtworkPath)
	if err != nil {
		log.Error("load artwork", "error", err)
		os.Exit(1)
	}

	canvas, err := render.NewCanvas(settings.CanvasWidth, settings.CanvasHeight, config.BackgroundColor)
	if err != nil {
		log.Error("create canvas", "error", err)
		os.Exit(1)
	}

	paintApp, err := app.New(session.New(), canvas, artwork)
	if err != nil {
		log.Error("create app", "error", err)
		os.Exit(1)
	}

	sm := state.NewStateMachine()
	var menu *state.MenuState
	paint := state.NewPaintState(sm, paintApp, canvas, func() state.State { return menu })
	menu = state.NewMenuState(sm, func() state.State { return paint })
	if settings.StartInMenu {
		sm.SetState(menu)
	} else {
		sm.SetState(paint)
	}

	width, height := settings.WindowSize()
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          width,
		height:         height,
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Colored Points")
	if err := ebiten.RunGame(game); err != nil {
		log.Error("run", "error", err)
		os.Exit(1)
	}
}
