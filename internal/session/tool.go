// internal/session/tool.go
package session

import (
	"fmt"

	"colored-points/internal/config"
	"colored-points/internal/raster"
	"colored-points/internal/shape"
	"colored-points/internal/utils"
)

// ToolState — текущие настройки инструмента.
// Каждое поле меняется независимо, последнее записанное значение побеждает.
type ToolState struct {
	kind     shape.Kind
	color    [3]float32 // альфа всегда 1
	size     float32
	segments int
}

// Tool — снимок ToolState по значению
type Tool struct {
	Kind     shape.Kind
	Color    raster.Color
	Size     float32
	Segments int
}

// NewToolState создаёт инструмент с настройками по умолчанию
func NewToolState() *ToolState {
	return &ToolState{
		kind:     shape.Point,
		color:    config.DefaultColor,
		size:     config.DefaultSize,
		segments: config.DefaultSegments,
	}
}

// SetKind выбирает вид фигуры
func (t *ToolState) SetKind(k shape.Kind) error {
	if k != shape.Point && k != shape.Triangle && k != shape.Circle {
		return fmt.Errorf("%w: %d", shape.ErrUnknownKind, int(k))
	}
	t.kind = k
	return nil
}

// SetColorChannel задаёт канал 0..2 (r, g, b), значение приводится к [0, 1]
func (t *ToolState) SetColorChannel(index int, value float32) error {
	if index < 0 || index >= len(t.color) {
		return fmt.Errorf("color channel %d out of range", index)
	}
	t.color[index] = float32(utils.Clamp(float64(value), 0, 1))
	return nil
}

// SetSize задаёт размер в NDC, приводится к [MinSize, MaxSize]
func (t *ToolState) SetSize(v float32) {
	t.size = float32(utils.Clamp(float64(v), config.MinSize, config.MaxSize))
}

// SetSegmentCount задаёт число сегментов круга, приводится к [MinSegments, MaxSegments]
func (t *ToolState) SetSegmentCount(n int) {
	t.segments = utils.ClampInt(n, config.MinSegments, config.MaxSegments)
}

// Snapshot возвращает копию текущих настроек
func (t *ToolState) Snapshot() Tool {
	return Tool{
		Kind:     t.kind,
		Color:    raster.Color{R: t.color[0], G: t.color[1], B: t.color[2], A: 1},
		Size:     t.size,
		Segments: t.segments,
	}
}
