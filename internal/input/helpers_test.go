package input

import "github.com/wayscriber/wayscriber/internal/geom"

func geomPoint(x, y int) geom.Point { return geom.Point{X: x, Y: y} }
