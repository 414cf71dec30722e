// Package geom provides the color and geometry primitives shared across
// the drawing, input, and rendering layers.
package geom

import "math"

// Color is a non-premultiplied RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// Clamp returns c with every component clamped to [0,1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B), clamp01(c.A)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Point is an integer screen-space coordinate.
type Point struct {
	X, Y int
}

// PointF is a floating-point coordinate used for hit-test math.
type PointF struct {
	X, Y float64
}

// Rect is an axis-aligned integer rectangle, half-open on Max.
type Rect struct {
	Min, Max Point
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// eps is the tolerance used by the hit-test helpers below.
const eps = 1e-6

// DistancePointToSegment returns the distance from point to the segment
// [start,end].
func DistancePointToSegment(point, start, end Point) float64 {
	px, py := float64(point.X), float64(point.Y)
	x1, y1 := float64(start.X), float64(start.Y)
	x2, y2 := float64(end.X), float64(end.Y)
	vx, vy := x2-x1, y2-y1
	lenSq := vx*vx + vy*vy
	if math.Abs(lenSq) < eps {
		return math.Hypot(px-x1, py-y1)
	}
	t := ((px-x1)*vx + (py-y1)*vy) / lenSq
	t = clampF(t, 0, 1)
	projX, projY := x1+t*vx, y1+t*vy
	return math.Hypot(px-projX, py-projY)
}

// DistancePointToPoint returns the Euclidean distance between a and b.
func DistancePointToPoint(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Hypot(dx, dy)
}

// PointInTriangle reports whether p lies within triangle (a,b,c) using
// barycentric coordinates.
func PointInTriangle(p, a, b, c PointF) bool {
	v0 := PointF{c.X - a.X, c.Y - a.Y}
	v1 := PointF{b.X - a.X, b.Y - a.Y}
	v2 := PointF{p.X - a.X, p.Y - a.Y}

	dot00 := v0.X*v0.X + v0.Y*v0.Y
	dot01 := v0.X*v1.X + v0.Y*v1.Y
	dot02 := v0.X*v2.X + v0.Y*v2.Y
	dot11 := v1.X*v1.X + v1.Y*v1.Y
	dot12 := v1.X*v2.X + v1.Y*v2.Y

	denom := dot00*dot11 - dot01*dot01
	if math.Abs(denom) < eps {
		return false
	}
	invDenom := 1.0 / denom
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return u >= -eps && v >= -eps && (u+v) <= 1.0+eps
}

// ToPoint rounds a PointF to the nearest integer Point.
func ToPoint(p PointF) Point {
	return Point{int(math.Round(p.X)), int(math.Round(p.Y))}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
