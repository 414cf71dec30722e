package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayscriber/wayscriber/internal/geom"
)

func TestNextIdMonotonicNonZero(t *testing.T) {
	a := NextId()
	b := NextId()
	assert.NotZero(t, a)
	assert.Greater(t, uint64(b), uint64(a))
}

func TestCloneDeepCopiesPoints(t *testing.T) {
	d := DrawnShape{Id: NextId(), Shape: Shape{Kind: KindFreehand, Points: []geom.Point{{X: 1, Y: 2}}}}
	clone := d.Clone()
	clone.Shape.Points[0].X = 99
	assert.Equal(t, 1, d.Shape.Points[0].X)
}
