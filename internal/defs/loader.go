// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"colored-points/internal/logging"
	"colored-points/internal/raster"
	"colored-points/pkg/geom"

	"gopkg.in/yaml.v3"
)

//go:embed dog.yaml
var dogYAML []byte

var (
	ErrUnknownColor = errors.New("unknown palette color")
	ErrBadTriangle  = errors.New("triangle needs exactly 6 coordinates")
	ErrBadColor     = errors.New("palette color needs 3 or 4 channels")
)

// DefaultArtwork возвращает встроенную картинку с собакой
func DefaultArtwork() (*Artwork, error) {
	return ParseArtwork(dogYAML)
}

// LoadArtwork читает картинку из YAML-файла
func LoadArtwork(path string) (*Artwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artwork file: %w", err)
	}
	art, err := ParseArtwork(data)
	if err != nil {
		return nil, fmt.Errorf("artwork %s: %w", path, err)
	}
	return art, nil
}

// ParseArtwork разбирает картинку и проверяет ссылки на палитру
func ParseArtwork(data []byte) (*Artwork, error) {
	var raw rawArtwork
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artwork: %w", err)
	}

	palette := make(map[string]raster.Color, len(raw.Palette))
	for name, ch := range raw.Palette {
		switch len(ch) {
		case 3:
			palette[name] = raster.Color{R: ch[0], G: ch[1], B: ch[2], A: 1}
		case 4:
			palette[name] = raster.Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}
		default:
			return nil, fmt.Errorf("%w: %s has %d", ErrBadColor, name, len(ch))
		}
	}

	art := &Artwork{Name: raw.Name, Triangles: make([]ArtTriangle, 0, len(raw.Triangles))}
	for i, t := range raw.Triangles {
		c, ok := palette[t.Color]
		if !ok {
			return nil, fmt.Errorf("%w: triangle %d (%s) uses %q", ErrUnknownColor, i, t.Part, t.Color)
		}
		if len(t.Vertices) != 6 {
			return nil, fmt.Errorf("%w: triangle %d (%s) has %d", ErrBadTriangle, i, t.Part, len(t.Vertices))
		}
		tri := ArtTriangle{Part: t.Part, Color: c}
		for j := 0; j < 3; j++ {
			tri.Vertices[j] = geom.Vec2{X: t.Vertices[2*j], Y: t.Vertices[2*j+1]}
		}
		art.Triangles = append(art.Triangles, tri)
	}

	logging.Logger().Debug("artwork loaded", "name", art.Name, "triangles", len(art.Triangles))
	return art, nil
}
