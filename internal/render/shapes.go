package render

import (
	"math"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/raster"
	"github.com/wayscriber/wayscriber/internal/shape"
)

// DrawShape rasterizes one committed or provisional shape into ctx.
// There is no eraser shape kind: nothing here paints a masking fill.
func DrawShape(ctx *raster.Context, s shape.Shape) {
	switch s.Kind {
	case shape.KindFreehand:
		drawPolyline(ctx, s.Points, s.Thickness, s.Color)
	case shape.KindLine:
		ctx.StrokeLine(s.Start, s.End, s.Thickness, s.Color)
	case shape.KindRect:
		r := rectFrom(s.Start, s.End)
		if s.Filled {
			ctx.FillRect(r, s.Color)
		} else {
			ctx.StrokeRect(r, s.Thickness, s.Color)
		}
	case shape.KindEllipse:
		r := rectFrom(s.Start, s.End)
		if s.Filled {
			fillEllipse(ctx, r, s.Color)
		} else {
			ctx.StrokeEllipse(r, s.Thickness, s.Color)
		}
	case shape.KindArrow:
		drawArrow(ctx, s)
	case shape.KindStepMarker:
		drawStepMarker(ctx, s)
	case shape.KindText, shape.KindStickyNote:
		// Text layout/rasterization is driven by the render orchestrator
		// directly (it owns the font.Face cache); shapes.go only handles
		// the sticky-note background fill here.
		if s.Kind == shape.KindStickyNote {
			ctx.FillRect(geom.Rect{Min: s.Position, Max: geom.Point{X: s.Position.X + s.Size.X, Y: s.Position.Y + s.Size.Y}}, s.Color)
		}
	}
}

func drawPolyline(ctx *raster.Context, pts []geom.Point, thickness float64, col geom.Color) {
	for i := 1; i < len(pts); i++ {
		ctx.StrokeLine(pts[i-1], pts[i], thickness, col)
	}
}

func rectFrom(a, b geom.Point) geom.Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return geom.Rect{Min: geom.Point{X: minX, Y: minY}, Max: geom.Point{X: maxX, Y: maxY}}
}

func fillEllipse(ctx *raster.Context, r geom.Rect, col geom.Color) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		dy := (float64(y) - cy) / ry
		if dy*dy > 1 {
			continue
		}
		dx := rx * math.Sqrt(1-dy*dy)
		ctx.FillRect(geom.Rect{Min: geom.Point{X: int(cx - dx), Y: y}, Max: geom.Point{X: int(cx + dx), Y: y + 1}}, col)
	}
}

// drawArrow paints the shaft plus a two-wing arrowhead per
// ArrowLength/ArrowAngle, and the label near the head when set.
func drawArrow(ctx *raster.Context, s shape.Shape) {
	ctx.StrokeLine(s.Start, s.End, s.Thickness, s.Color)
	dx := float64(s.End.X - s.Start.X)
	dy := float64(s.End.Y - s.Start.Y)
	angle := math.Atan2(dy, dx)
	headAngle := s.ArrowAngle * math.Pi / 180
	for _, sign := range [2]float64{1, -1} {
		wingAngle := angle + math.Pi - sign*headAngle
		wing := geom.Point{
			X: s.End.X + int(s.ArrowLength*math.Cos(wingAngle)),
			Y: s.End.Y + int(s.ArrowLength*math.Sin(wingAngle)),
		}
		ctx.StrokeLine(s.End, wing, s.Thickness, s.Color)
	}
}

func drawStepMarker(ctx *raster.Context, s shape.Shape) {
	r := float64(s.ArrowLength)
	if r <= 0 {
		r = 12
	}
	bounds := geom.Rect{
		Min: geom.Point{X: s.Start.X - int(r), Y: s.Start.Y - int(r)},
		Max: geom.Point{X: s.Start.X + int(r), Y: s.Start.Y + int(r)},
	}
	fillEllipse(ctx, bounds, s.Color)
}
