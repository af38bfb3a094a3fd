package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func TestTrianglePrimitive(t *testing.T) {
	got := TrianglePrimitive(Vec2{X: 0.5, Y: -0.5}, 0.1)
	want := [3]Vec2{
		{X: 0.4, Y: -0.6},
		{X: 0.6, Y: -0.6},
		{X: 0.5, Y: -0.4},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("TrianglePrimitive mismatch (-want +got):\n%s", diff)
	}

	// левая и правая вершины симметричны относительно центра
	assert.InDelta(t, got[0].Sub(got[2]).Len(), got[1].Sub(got[2]).Len(), tol)
}

func TestCirclePrimitiveFourSegments(t *testing.T) {
	fan := CirclePrimitive(Vec2{}, 1, 4)
	require.Len(t, fan, 6)
	assert.Equal(t, 4, FanTriangleCount(len(fan)))

	want := []Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 1, Y: 0},
	}
	if diff := cmp.Diff(want, fan, cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("CirclePrimitive mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, fan[1], fan[len(fan)-1], "fan must close on the first rim vertex")
}

func TestCirclePrimitiveRadius(t *testing.T) {
	center := Vec2{X: -0.3, Y: 0.25}
	for _, n := range []int{3, 8, 10, 64} {
		fan := CirclePrimitive(center, 0.2, n)
		require.Len(t, fan, n+2)
		assert.Equal(t, center, fan[0])
		for _, v := range fan[1:] {
			assert.InDelta(t, 0.2, v.Sub(center).Len(), 1e-5)
		}
	}
}

func TestCirclePrimitiveDegenerate(t *testing.T) {
	assert.Empty(t, CirclePrimitive(Vec2{}, 1, 0))
	assert.Empty(t, CirclePrimitive(Vec2{}, 1, -5))

	one := CirclePrimitive(Vec2{}, 1, 1)
	require.Len(t, one, 3)
	assert.Equal(t, 1, FanTriangleCount(len(one)))
	assert.Equal(t, one[1], one[2])
}

func TestCirclePrimitiveDeterministic(t *testing.T) {
	a := CirclePrimitive(Vec2{X: 0.1, Y: 0.2}, 0.3, 17)
	b := CirclePrimitive(Vec2{X: 0.1, Y: 0.2}, 0.3, 17)
	assert.Equal(t, a, b)
}

func TestFanToTriangles(t *testing.T) {
	fan := CirclePrimitive(Vec2{}, 1, 4)
	tris := FanToTriangles(fan)
	require.Len(t, tris, 12)
	for i := 0; i < len(tris); i += 3 {
		assert.Equal(t, Vec2{}, tris[i], "every triangle starts at the center")
	}
	assert.Equal(t, fan[4], tris[10])
	assert.Equal(t, fan[5], tris[11])

	assert.Nil(t, FanToTriangles(fan[:2]))
	assert.Equal(t, 0, FanTriangleCount(0))
}
