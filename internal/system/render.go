// internal/system/render.go
package system

import (
	"math"
	"time"

	"colored-points/internal/defs"
	"colored-points/internal/event"
	"colored-points/internal/logging"
	"colored-points/internal/raster"
	"colored-points/internal/scene"
	"colored-points/internal/shape"
)

// FrameStats — замер одной перерисовки
type FrameStats struct {
	Shapes  int
	Elapsed time.Duration
}

// Millis возвращает длительность в миллисекундах
func (f FrameStats) Millis() float64 {
	return float64(f.Elapsed) / float64(time.Millisecond)
}

// FPS — оценка по одному кадру: floor(10000/ms)/10. Без сглаживания.
// Нулевая длительность даёт 0.
func (f FrameStats) FPS() float64 {
	ms := f.Millis()
	if ms <= 0 {
		return 0
	}
	return math.Floor(10000/ms) / 10
}

// FrameReporter — куда выводятся метрики кадра. Ядро их обратно не читает.
type FrameReporter interface {
	ReportFrame(stats FrameStats)
}

// RenderSystem перерисовывает сцену целиком по запросу
type RenderSystem struct {
	scene      *scene.Scene
	rasterizer raster.Rasterizer
	reporter   FrameReporter
	artwork    *defs.Artwork
	now        func() time.Time
	last       FrameStats
}

// NewRenderSystem создаёт систему и подписывает её на события сцены
func NewRenderSystem(sc *scene.Scene, r raster.Rasterizer, artwork *defs.Artwork, dispatcher *event.Dispatcher) *RenderSystem {
	rs := &RenderSystem{
		scene:      sc,
		rasterizer: r,
		artwork:    artwork,
		now:        time.Now,
	}
	if dispatcher != nil {
		dispatcher.Subscribe(event.ShapeAdded, rs)
		dispatcher.Subscribe(event.SceneCleared, rs)
		dispatcher.Subscribe(event.CompositeRequested, rs)
	}
	return rs
}

// SetReporter подключает вывод метрик
func (s *RenderSystem) SetReporter(r FrameReporter) {
	s.reporter = r
}

// LastFrame возвращает метрики последней перерисовки сцены
func (s *RenderSystem) LastFrame() FrameStats {
	return s.last
}

func (s *RenderSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.ShapeAdded, event.SceneCleared:
		s.RedrawAll()
	case event.CompositeRequested:
		s.PaintComposite()
	}
}

// RedrawAll очищает поверхность и рисует все фигуры в порядке добавления
func (s *RenderSystem) RedrawAll() {
	start := s.now()
	s.rasterizer.ClearSurface()
	s.scene.Each(func(_ int, sh shape.Shape) {
		sh.Render(s.rasterizer)
	})
	s.last = FrameStats{Shapes: s.scene.Len(), Elapsed: s.now().Sub(start)}
	s.report(s.last)
}

// PaintComposite рисует готовую картинку поверх очищенной поверхности.
// Сцена не меняется, следующая RedrawAll закроет картинку.
func (s *RenderSystem) PaintComposite() {
	s.rasterizer.ClearSurface()
	if s.artwork == nil {
		logging.Logger().Warn("no artwork to paint")
		return
	}
	for _, tri := range s.artwork.Triangles {
		s.rasterizer.SubmitVertices(raster.Triangles, tri.Vertices[:], tri.Color, 0)
	}
	logging.Logger().Debug("artwork painted", "name", s.artwork.Name, "triangles", len(s.artwork.Triangles))
}

func (s *RenderSystem) report(stats FrameStats) {
	logging.Logger().Debug("frame", "shapes", stats.Shapes, "ms", stats.Millis(), "fps", stats.FPS())
	if s.reporter == nil {
		logging.Logger().Warn("failed to get frame stats display")
		return
	}
	s.reporter.ReportFrame(stats)
}
