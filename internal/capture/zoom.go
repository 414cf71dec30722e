package capture

import "github.com/wayscriber/wayscriber/internal/geom"

const (
	MinZoomScale = 1.0
	MaxZoomScale = 8.0
)

// ZoomView is the pan/lock zoom state layered over a frozen capture,
// per spec.md §4.G.
type ZoomView struct {
	Active     bool
	Locked     bool
	Scale      float64
	ViewOffset geom.PointF
	Step       float64
}

// NewZoomView returns an inactive zoom view at 1x with the given
// per-step scale multiplier.
func NewZoomView(step float64) ZoomView {
	return ZoomView{Scale: MinZoomScale, Step: step}
}

func clampZoom(v float64) float64 {
	if v < MinZoomScale {
		return MinZoomScale
	}
	if v > MaxZoomScale {
		return MaxZoomScale
	}
	return v
}

// ZoomIn multiplies the scale by Step, clamped to [1.0, 8.0].
func (z *ZoomView) ZoomIn() {
	z.Scale = clampZoom(z.Scale * z.Step)
}

// ZoomOut divides the scale by Step, clamped to [1.0, 8.0].
func (z *ZoomView) ZoomOut() {
	z.Scale = clampZoom(z.Scale / z.Step)
}

// Recompute updates ViewOffset so cursor maps to the same zoomed-world
// point (grab-pan), a no-op while Locked.
func (z *ZoomView) Recompute(cursor geom.PointF, worldUnderCursor geom.PointF) {
	if z.Locked {
		return
	}
	z.ViewOffset = geom.PointF{
		X: worldUnderCursor.X - cursor.X/z.Scale,
		Y: worldUnderCursor.Y - cursor.Y/z.Scale,
	}
}

// ToWorld inverse-maps a screen point through the current zoom
// transform (scale then translate) for pointer hit-testing.
func (z *ZoomView) ToWorld(screen geom.PointF) geom.PointF {
	return geom.PointF{X: screen.X/z.Scale + z.ViewOffset.X, Y: screen.Y/z.Scale + z.ViewOffset.Y}
}

// ToScreen forward-maps a world point through the zoom transform.
func (z *ZoomView) ToScreen(world geom.PointF) geom.PointF {
	return geom.PointF{X: (world.X - z.ViewOffset.X) * z.Scale, Y: (world.Y - z.ViewOffset.Y) * z.Scale}
}
