package scene

import (
	"testing"

	"colored-points/internal/shape"
	"colored-points/pkg/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T, x float32) shape.Shape {
	t.Helper()
	s, err := shape.New(shape.Params{Kind: shape.Point, Position: geom.Vec2{X: x}, Size: 5})
	require.NoError(t, err)
	return s
}

func TestSceneLengthTracksActions(t *testing.T) {
	// +1 за каждое действие, 0 — очистка
	actions := []int{1, 1, 1, 0, 1, 1, 0, 0, 1}
	sc := New()
	want := 0
	for i, a := range actions {
		if a == 0 {
			sc.Clear()
			want = 0
		} else {
			sc.Append(mustShape(t, float32(i)))
			want++
		}
		assert.Equal(t, want, sc.Len(), "after action %d", i)
	}
}

func TestSceneInsertionOrder(t *testing.T) {
	sc := New()
	for i := 0; i < 5; i++ {
		sc.Append(mustShape(t, float32(i)))
	}

	var seen []float32
	sc.Each(func(i int, sh shape.Shape) {
		assert.Equal(t, float32(i), sh.Position().X)
		seen = append(seen, sh.Position().X)
	})
	assert.Equal(t, []float32{0, 1, 2, 3, 4}, seen)
}

func TestSceneShapesIsCopy(t *testing.T) {
	sc := New()
	sc.Append(mustShape(t, 1))
	list := sc.Shapes()
	list[0] = nil
	assert.NotNil(t, sc.Shapes()[0])

	sc.Clear()
	assert.Empty(t, sc.Shapes())
	assert.Equal(t, 0, sc.Len())
}
