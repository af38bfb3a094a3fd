package input

import (
	"image"
	"testing"

	"colored-points/internal/config"
	"colored-points/internal/defs"
	"colored-points/internal/event"
	"colored-points/internal/raster"
	"colored-points/internal/session"
	"colored-points/internal/shape"
	"colored-points/internal/system"
	"colored-points/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var canvas = image.Rect(0, 0, 400, 400)

type rig struct {
	session *session.Session
	ctrl    *Controller
	rec     *raster.Recorder
	render  *system.RenderSystem
}

func newRig(t *testing.T) *rig {
	t.Helper()
	art, err := defs.DefaultArtwork()
	require.NoError(t, err)
	s := session.New()
	d := event.NewDispatcher()
	rec := raster.NewRecorder(canvas.Dx(), canvas.Dy())
	rs := system.NewRenderSystem(s.Scene, rec, art, d)
	return &rig{session: s, ctrl: NewController(s, d), rec: rec, render: rs}
}

func TestToNDC(t *testing.T) {
	assert.Equal(t, geom.Vec2{X: 0, Y: 0}, ToNDC(PointerEvent{X: 200, Y: 200, Surface: canvas}))
	assert.Equal(t, geom.Vec2{X: -1, Y: 1}, ToNDC(PointerEvent{X: 0, Y: 0, Surface: canvas}))
	assert.Equal(t, geom.Vec2{X: 1, Y: -1}, ToNDC(PointerEvent{X: 400, Y: 400, Surface: canvas}))
}

func TestRedCircleEndToEnd(t *testing.T) {
	r := newRig(t)
	tool := r.session.Tool
	require.NoError(t, tool.SetKind(shape.Circle))
	require.NoError(t, tool.SetColorChannel(0, 1))
	require.NoError(t, tool.SetColorChannel(1, 0))
	require.NoError(t, tool.SetColorChannel(2, 0))
	tool.SetSize(0.2)
	tool.SetSegmentCount(8)

	require.NoError(t, r.ctrl.OnPointerDown(PointerEvent{X: 200, Y: 200, Surface: canvas}))
	assert.Equal(t, 1, r.session.Scene.Len())

	assert.Equal(t, 8, r.rec.VisibleTriangles())
	for _, sub := range r.rec.Visible() {
		assert.Equal(t, raster.Color{R: 1, A: 1}, sub.Color)
		for _, v := range geom.FanToTriangles(sub.Vertices) {
			assert.LessOrEqual(t, v.Len(), float32(0.2)+1e-5)
		}
	}
	assert.Equal(t, 1, r.render.LastFrame().Shapes)
}

func TestCircleCapturesSegmentsAtCreation(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.session.Tool.SetKind(shape.Circle))
	r.session.Tool.SetSegmentCount(6)
	require.NoError(t, r.ctrl.OnPointerDown(PointerEvent{X: 100, Y: 100, Surface: canvas}))

	r.session.Tool.SetSegmentCount(40)
	r.session.Tool.SetSize(0.01)
	r.render.RedrawAll()

	require.Len(t, r.rec.Visible(), 1)
	assert.Equal(t, 6, r.rec.VisibleTriangles())
	assert.Equal(t, float32(config.DefaultSize), r.session.Scene.Shapes()[0].Size())
}

func TestPointDiameterInPixels(t *testing.T) {
	r := newRig(t)
	r.session.Tool.SetSize(0.05)
	require.NoError(t, r.ctrl.OnPointerDown(PointerEvent{X: 10, Y: 10, Surface: canvas}))

	sub := r.rec.Visible()[0]
	assert.Equal(t, raster.Points, sub.Kind)
	assert.InDelta(t, 10, sub.PointDiameter, 1e-4)
	assert.InDelta(t, -0.95, sub.Vertices[0].X, 1e-6)
	assert.InDelta(t, 0.95, sub.Vertices[0].Y, 1e-6)
}

func TestDragPaintsManyShapes(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.session.Tool.SetKind(shape.Triangle))

	require.NoError(t, r.ctrl.OnPointerDown(PointerEvent{X: 100, Y: 200, Surface: canvas}))
	for x := 110.0; x <= 150; x += 10 {
		require.NoError(t, r.ctrl.OnPointerDrag(PointerEvent{X: x, Y: 200, Surface: canvas}))
	}
	assert.Equal(t, 6, r.session.Scene.Len())

	// порядок отрисовки совпадает с порядком добавления
	vis := r.rec.Visible()
	require.Len(t, vis, 6)
	for i := 1; i < len(vis); i++ {
		assert.Less(t, vis[i-1].Vertices[2].X, vis[i].Vertices[2].X)
	}
}

func TestToolChangesDoNotAffectExistingShapes(t *testing.T) {
	r := newRig(t)
	require.NoError(t, r.ctrl.OnPointerDown(PointerEvent{X: 200, Y: 200, Surface: canvas}))
	require.NoError(t, r.session.Tool.SetColorChannel(0, 0))
	require.NoError(t, r.session.Tool.SetKind(shape.Circle))
	r.render.RedrawAll()

	sub := r.rec.Visible()[0]
	assert.Equal(t, raster.Points, sub.Kind)
	assert.Equal(t, float32(1), sub.Color.R)
}

func TestEmptySurfaceRejected(t *testing.T) {
	r := newRig(t)
	err := r.ctrl.OnPointerDown(PointerEvent{X: 1, Y: 1})
	assert.Error(t, err)
	assert.Equal(t, 0, r.session.Scene.Len())
}
