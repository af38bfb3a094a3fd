// pkg/render/canvas.go
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"colored-points/internal/raster"
	"colored-points/internal/utils"
	"colored-points/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrInvalidSurface — холст нельзя создать с таким размером
var ErrInvalidSurface = errors.New("invalid surface size")

// Canvas — растеризатор поверх отдельного изображения.
// Содержимое сохраняется между кадрами и меняется только при перерисовке,
// каждый кадр холст просто копируется на экран.
type Canvas struct {
	image      *ebiten.Image
	whiteSub   *ebiten.Image // центральный пиксель белого 3x3, без подмешивания краёв
	background color.Color
	vs         []ebiten.Vertex
	is         []uint16
}

var _ raster.Rasterizer = (*Canvas)(nil)

// NewCanvas создаёт холст width x height
func NewCanvas(width, height int, background color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSurface, width, height)
	}
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)

	c := &Canvas{
		image:      ebiten.NewImage(width, height),
		whiteSub:   whiteImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		background: background,
		vs:         make([]ebiten.Vertex, 0, 64),
		is:         make([]uint16, 0, 96),
	}
	c.ClearSurface()
	return c, nil
}

func (c *Canvas) SurfaceSize() (int, int) {
	b := c.image.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) ClearSurface() {
	c.image.Fill(c.background)
}

func (c *Canvas) SubmitVertices(kind raster.Primitive, vertices []geom.Vec2, col raster.Color, pointDiameter float32) {
	switch kind {
	case raster.Points:
		c.drawPoints(vertices, col, pointDiameter)
	case raster.Triangles:
		c.drawIndexed(vertices, col, false)
	case raster.TriangleFan:
		c.drawIndexed(vertices, col, true)
	}
}

// drawPoints рисует точки квадратами, как gl.POINTS
func (c *Canvas) drawPoints(vertices []geom.Vec2, col raster.Color, diameter float32) {
	if diameter <= 0 {
		return
	}
	w, h := c.SurfaceSize()
	rgba := col.ToRGBA()
	for _, v := range vertices {
		x, y := utils.NDCToScreen(v, w, h)
		vector.DrawFilledRect(c.image, x-diameter/2, y-diameter/2, diameter, diameter, rgba, false)
	}
}

func (c *Canvas) drawIndexed(vertices []geom.Vec2, col raster.Color, fan bool) {
	count := raster.TriangleCount(raster.Triangles, len(vertices))
	if fan {
		count = raster.TriangleCount(raster.TriangleFan, len(vertices))
	}
	if count == 0 {
		return
	}
	w, h := c.SurfaceSize()

	c.vs = c.vs[:0]
	for _, v := range vertices {
		x, y := utils.NDCToScreen(v, w, h)
		c.vs = append(c.vs, ebiten.Vertex{DstX: x, DstY: y, SrcX: 1, SrcY: 1})
	}
	paintVertices(c.vs, col)

	c.is = c.is[:0]
	for i := 0; i < count; i++ {
		if fan {
			c.is = append(c.is, 0, uint16(i+1), uint16(i+2))
		} else {
			c.is = append(c.is, uint16(3*i), uint16(3*i+1), uint16(3*i+2))
		}
	}
	c.image.DrawTriangles(c.vs, c.is, c.whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw копирует холст на экран в точку (x, y)
func (c *Canvas) Draw(screen *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(c.image, op)
}
