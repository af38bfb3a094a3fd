// internal/config/config.go
package config

import (
	"fmt"
	"image/color"

	"github.com/kelseyhightower/envconfig"
)

const (
	CanvasWidth  = 400
	CanvasHeight = 400
	PanelHeight  = 230 // Панель инструментов под холстом

	// Параметры инструмента по умолчанию
	DefaultSize     = 0.05 // NDC; точка 0.05 => 10px на холсте 400
	DefaultSegments = 10

	MinSize     = 0.005
	MaxSize     = 0.25
	MinSegments = 3
	MaxSegments = 100

	ButtonWidth   = 68
	ButtonHeight  = 24
	ButtonSpacing = 8
	SliderWidth   = 240
	SliderHeight  = 14
	SliderSpacing = 26
	PanelPadding  = 10

	ClickPulseRate = 8.0 // Скорость затухания анимации нажатия
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	PanelColor      = color.RGBA{30, 30, 40, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 235}
	ButtonActive    = color.RGBA{220, 60, 60, 220}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	SliderTrack     = color.RGBA{90, 90, 110, 255}
	SliderKnob      = color.RGBA{240, 240, 240, 255}
	StrokeWidth     = float32(1.0)

	// Начальный цвет инструмента — белый
	DefaultColor = [3]float32{1, 1, 1}
)

// Settings — параметры, которые можно переопределить через окружение (PAINT_*)
type Settings struct {
	CanvasWidth  int    `envconfig:"CANVAS_WIDTH" default:"400"`
	CanvasHeight int    `envconfig:"CANVAS_HEIGHT" default:"400"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	StartInMenu  bool   `envconfig:"START_IN_MENU" default:"false"`
	ArtworkPath  string `envconfig:"ARTWORK_PATH"` // Пусто — встроенная картинка
}

// WindowSize возвращает размер окна: холст плюс панель
func (s *Settings) WindowSize() (int, int) {
	return s.CanvasWidth, s.CanvasHeight + PanelHeight
}

// Load читает настройки из окружения
func Load() (*Settings, error) {
	var s Settings
	if err := envconfig.Process("PAINT", &s); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	if s.CanvasWidth <= 0 || s.CanvasHeight <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", s.CanvasWidth, s.CanvasHeight)
	}
	// Панель должна поместиться по ширине
	if s.CanvasWidth < SliderWidth+2*PanelPadding {
		return nil, fmt.Errorf("canvas width %d is too narrow for the tool panel", s.CanvasWidth)
	}
	return &s, nil
}
