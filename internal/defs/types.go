// internal/defs/types.go
package defs

import (
	"colored-points/internal/raster"
	"colored-points/pkg/geom"
)

// ArtTriangle — один треугольник готовой картинки
type ArtTriangle struct {
	Part     string // body, head, ear... только для логов
	Color    raster.Color
	Vertices [3]geom.Vec2
}

// Artwork — фиксированная картинка из треугольников, рисуется в обход сцены
type Artwork struct {
	Name      string
	Triangles []ArtTriangle
}

// rawArtwork — формат файла с картинкой
type rawArtwork struct {
	Name      string               `yaml:"name"`
	Palette   map[string][]float32 `yaml:"palette"`
	Triangles []rawTriangle        `yaml:"triangles"`
}

type rawTriangle struct {
	Part     string    `yaml:"part"`
	Color    string    `yaml:"color"`
	Vertices []float32 `yaml:"vertices"`
}
