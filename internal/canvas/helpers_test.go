package canvas

import (
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/shape"
)

func geom0() geom.Color { return geom.Color{} }

func dummyShape() shape.DrawnShape {
	return shape.DrawnShape{Id: shape.NextId(), Shape: shape.Shape{Kind: shape.KindRect}}
}
