// Package raster is a small software 2D drawing context used by the
// render orchestrator to rasterize shapes, toolbar chrome, and text
// directly into an *image.RGBA backing buffer — no GPU involved, per
// the software-raster-only constraint.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/wayscriber/wayscriber/internal/geom"
)

// subImage offsets a draw.Image to a sub-rectangle without copying
// pixels, the same trick the teacher's popup menu used to draw into
// one tile of a larger shm-backed surface.
type subImage struct {
	Src  draw.Image
	Rect image.Rectangle
}

func (si *subImage) At(x, y int) color.Color {
	if x < 0 || x >= si.Rect.Dx() || y < 0 || y >= si.Rect.Dy() {
		return color.RGBA{}
	}
	return si.Src.At(si.Rect.Min.X+x, si.Rect.Min.Y+y)
}

func (si *subImage) Set(x, y int, c color.Color) {
	if x < 0 || x >= si.Rect.Dx() || y < 0 || y >= si.Rect.Dy() {
		return
	}
	si.Src.Set(si.Rect.Min.X+x, si.Rect.Min.Y+y, c)
}

func (si *subImage) Bounds() image.Rectangle { return image.Rect(0, 0, si.Rect.Dx(), si.Rect.Dy()) }
func (si *subImage) ColorModel() color.Model { return si.Src.ColorModel() }

// Context wraps an *image.RGBA destination surface with the small set
// of drawing primitives the render orchestrator needs.
type Context struct {
	Dst *image.RGBA
}

// NewContext returns a Context drawing into an image of size w,h.
func NewContext(w, h int) *Context {
	return &Context{Dst: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Tile returns a new Context holding a copy of the pixels of r in c.
// Drawing into the tile does not change c.
func (c *Context) Tile(r geom.Rect) *Context {
	sub := &subImage{Src: c.Dst, Rect: image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)}
	tileImg := image.NewRGBA(sub.Bounds())
	draw.Draw(tileImg, tileImg.Bounds(), sub, image.Point{}, draw.Src)
	return &Context{Dst: tileImg}
}

func toNRGBA(c geom.Color) color.NRGBA {
	clamp := func(v float64) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(math.Round(v * 255))
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// Clear fills the whole context with c.
func (c *Context) Clear(col geom.Color) {
	draw.Draw(c.Dst, c.Dst.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, draw.Src)
}

// DrawImage alpha-composites src at origin, used for pre-rasterized
// toolbar icons (menu.go's drawItem does the same src-over blit for a
// loaded/resized icon onto the menu surface).
func (c *Context) DrawImage(origin geom.Point, src image.Image) {
	b := src.Bounds()
	dstRect := image.Rect(origin.X, origin.Y, origin.X+b.Dx(), origin.Y+b.Dy())
	draw.Draw(c.Dst, dstRect, src, b.Min, draw.Over)
}

// FillRect alpha-blends col into r.
func (c *Context) FillRect(r geom.Rect, col geom.Color) {
	rect := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y).Intersect(c.Dst.Bounds())
	draw.Draw(c.Dst, rect, image.NewUniform(toNRGBA(col)), image.Point{}, draw.Over)
}

// StrokeLine draws a single-pixel-thick line from a to b using
// Bresenham's algorithm, composited with col at thickness using
// successive offset passes (a raster-only approximation of a stroked
// line, adequate for the freehand/line/arrow shapes since GPU path
// stroking is out of scope).
func (c *Context) StrokeLine(a, b geom.Point, thickness float64, col geom.Color) {
	half := int(math.Ceil(thickness / 2))
	if half < 1 {
		half = 1
	}
	for dx := -half; dx <= half; dx++ {
		for dy := -half; dy <= half; dy++ {
			if float64(dx*dx+dy*dy) > thickness*thickness/4 {
				continue
			}
			c.bresenham(geom.Point{X: a.X + dx, Y: a.Y + dy}, geom.Point{X: b.X + dx, Y: b.Y + dy}, col)
		}
	}
}

func (c *Context) bresenham(a, b geom.Point, col geom.Color) {
	x0, y0, x1, y1 := a.X, a.Y, b.X, b.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	nc := toNRGBA(col)
	for {
		if image.Pt(x0, y0).In(c.Dst.Bounds()) {
			blendPixel(c.Dst, x0, y0, nc)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func blendPixel(dst *image.RGBA, x, y int, c color.NRGBA) {
	if c.A == 255 {
		dst.SetNRGBA(x, y, c)
		return
	}
	bg := dst.NRGBAAt(x, y)
	a := float64(c.A) / 255.0
	blend := func(fg, bg uint8) uint8 {
		return uint8(float64(fg)*a + float64(bg)*(1-a))
	}
	dst.SetNRGBA(x, y, color.NRGBA{
		R: blend(c.R, bg.R),
		G: blend(c.G, bg.G),
		B: blend(c.B, bg.B),
		A: 255,
	})
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// StrokeRect draws the four edges of r.
func (c *Context) StrokeRect(r geom.Rect, thickness float64, col geom.Color) {
	corners := [4]geom.Point{{r.Min.X, r.Min.Y}, {r.Max.X, r.Min.Y}, {r.Max.X, r.Max.Y}, {r.Min.X, r.Max.Y}}
	for i := 0; i < 4; i++ {
		c.StrokeLine(corners[i], corners[(i+1)%4], thickness, col)
	}
}

// StrokeEllipse draws an ellipse inscribed in r, sampled parametrically
// at 128 points joined by short line segments.
func (c *Context) StrokeEllipse(r geom.Rect, thickness float64, col geom.Color) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	const steps = 128
	prev := ellipsePoint(cx, cy, rx, ry, 0)
	for i := 1; i <= steps; i++ {
		theta := 2 * math.Pi * float64(i) / steps
		next := ellipsePoint(cx, cy, rx, ry, theta)
		c.StrokeLine(prev, next, thickness, col)
		prev = next
	}
}

func ellipsePoint(cx, cy, rx, ry, theta float64) geom.Point {
	return geom.Point{X: int(math.Round(cx + rx*math.Cos(theta))), Y: int(math.Round(cy + ry*math.Sin(theta)))}
}
