package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorClamp(t *testing.T) {
	c := Color{R: -1, G: 2, B: 0.5, A: 1.5}.Clamp()
	require.Equal(t, Color{R: 0, G: 1, B: 0.5, A: 1}, c)
}

func TestDistancePointToSegmentEndpoints(t *testing.T) {
	// Degenerate segment collapses to point distance.
	d := DistancePointToSegment(Point{3, 4}, Point{0, 0}, Point{0, 0})
	assert.InDelta(t, 5.0, d, eps)
}

func TestDistancePointToSegmentMidpoint(t *testing.T) {
	d := DistancePointToSegment(Point{5, 5}, Point{0, 0}, Point{10, 0})
	assert.InDelta(t, 5.0, d, eps)
}

func TestPointInTriangle(t *testing.T) {
	a := PointF{0, 0}
	b := PointF{10, 0}
	c := PointF{0, 10}
	assert.True(t, PointInTriangle(PointF{1, 1}, a, b, c))
	assert.False(t, PointInTriangle(PointF{9, 9}, a, b, c))
}

func TestRectContains(t *testing.T) {
	r := Rect{Point{0, 0}, Point{10, 10}}
	assert.True(t, r.Contains(Point{5, 5}))
	assert.False(t, r.Contains(Point{10, 10}))
}
