// internal/raster/recorder.go
package raster

import "colored-points/pkg/geom"

// Submission — одна записанная отправка вершин
type Submission struct {
	Kind          Primitive
	Vertices      []geom.Vec2
	Color         Color
	PointDiameter float32
}

// Triangles возвращает число треугольников в отправке
func (s Submission) Triangles() int {
	return TriangleCount(s.Kind, len(s.Vertices))
}

// Recorder запоминает все вызовы растеризатора по порядку.
// Используется в тестах и при запуске без окна.
type Recorder struct {
	Width, Height int
	Submissions   []Submission
	Clears        int
	sinceClear    int // индекс первой отправки после последней очистки
}

// NewRecorder создаёт Recorder с заданным размером поверхности
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) SubmitVertices(kind Primitive, vertices []geom.Vec2, c Color, pointDiameter float32) {
	vs := make([]geom.Vec2, len(vertices))
	copy(vs, vertices)
	r.Submissions = append(r.Submissions, Submission{
		Kind:          kind,
		Vertices:      vs,
		Color:         c,
		PointDiameter: pointDiameter,
	})
}

func (r *Recorder) ClearSurface() {
	r.Clears++
	r.sinceClear = len(r.Submissions)
}

func (r *Recorder) SurfaceSize() (int, int) {
	return r.Width, r.Height
}

// Visible возвращает отправки после последней очистки — то, что сейчас на поверхности
func (r *Recorder) Visible() []Submission {
	return r.Submissions[r.sinceClear:]
}

// VisibleTriangles — сумма треугольников на поверхности
func (r *Recorder) VisibleTriangles() int {
	total := 0
	for _, s := range r.Visible() {
		total += s.Triangles()
	}
	return total
}

// Reset забывает всю историю вызовов
func (r *Recorder) Reset() {
	r.Submissions = nil
	r.Clears = 0
	r.sinceClear = 0
}
