package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, CanvasWidth, s.CanvasWidth)
	assert.Equal(t, CanvasHeight, s.CanvasHeight)
	assert.Equal(t, "info", s.LogLevel)
	assert.False(t, s.StartInMenu)
	assert.Empty(t, s.ArtworkPath)

	w, h := s.WindowSize()
	assert.Equal(t, CanvasWidth, w)
	assert.Equal(t, CanvasHeight+PanelHeight, h)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PAINT_CANVAS_WIDTH", "600")
	t.Setenv("PAINT_CANVAS_HEIGHT", "300")
	t.Setenv("PAINT_LOG_LEVEL", "debug")
	t.Setenv("PAINT_START_IN_MENU", "true")
	t.Setenv("PAINT_ARTWORK_PATH", "/tmp/dog.yaml")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 600, s.CanvasWidth)
	assert.Equal(t, 300, s.CanvasHeight)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.StartInMenu)
	assert.Equal(t, "/tmp/dog.yaml", s.ArtworkPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("PAINT_CANVAS_WIDTH", "wide")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("PAINT_CANVAS_WIDTH", "-1")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("PAINT_CANVAS_WIDTH", "100")
	_, err = Load()
	assert.Error(t, err)
}
