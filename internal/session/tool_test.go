package session

import (
	"testing"

	"colored-points/internal/config"
	"colored-points/internal/raster"
	"colored-points/internal/shape"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := New()
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 0, s.Scene.Len())

	tool := s.Tool.Snapshot()
	assert.Equal(t, shape.Point, tool.Kind)
	assert.Equal(t, raster.Color{R: 1, G: 1, B: 1, A: 1}, tool.Color)
	assert.Equal(t, float32(config.DefaultSize), tool.Size)
	assert.Equal(t, config.DefaultSegments, tool.Segments)

	assert.NotEqual(t, s.ID, New().ID)
}

func TestToolSetters(t *testing.T) {
	ts := NewToolState()
	require.NoError(t, ts.SetKind(shape.Circle))
	require.NoError(t, ts.SetColorChannel(0, 1))
	require.NoError(t, ts.SetColorChannel(1, 0.25))
	require.NoError(t, ts.SetColorChannel(2, 0))
	ts.SetSize(0.2)
	ts.SetSegmentCount(8)

	assert.Equal(t, Tool{
		Kind:     shape.Circle,
		Color:    raster.Color{R: 1, G: 0.25, B: 0, A: 1},
		Size:     0.2,
		Segments: 8,
	}, ts.Snapshot())
}

func TestToolClamping(t *testing.T) {
	ts := NewToolState()
	ts.SetSegmentCount(0)
	assert.Equal(t, config.MinSegments, ts.Snapshot().Segments)
	ts.SetSegmentCount(100000)
	assert.Equal(t, config.MaxSegments, ts.Snapshot().Segments)

	ts.SetSize(-3)
	assert.Equal(t, float32(config.MinSize), ts.Snapshot().Size)
	ts.SetSize(10)
	assert.Equal(t, float32(config.MaxSize), ts.Snapshot().Size)

	require.NoError(t, ts.SetColorChannel(1, 2))
	assert.Equal(t, float32(1), ts.Snapshot().Color.G)
}

func TestToolRejectsBadInput(t *testing.T) {
	ts := NewToolState()
	assert.ErrorIs(t, ts.SetKind(shape.Kind(9)), shape.ErrUnknownKind)
	assert.Error(t, ts.SetColorChannel(3, 1))
	assert.Error(t, ts.SetColorChannel(-1, 1))
	// прежние значения не тронуты
	assert.Equal(t, shape.Point, ts.Snapshot().Kind)
}

func TestSnapshotIsValue(t *testing.T) {
	ts := NewToolState()
	snap := ts.Snapshot()
	require.NoError(t, ts.SetColorChannel(0, 0))
	ts.SetSegmentCount(50)
	assert.Equal(t, float32(1), snap.Color.R)
	assert.Equal(t, config.DefaultSegments, snap.Segments)
}
