// Package render is the frame orchestrator: it owns no policy of its
// own, reading a ToolbarSnapshot and input.State each frame and
// painting strictly in the ten-step order spec.md §4.J specifies.
package render

import (
	"time"

	"golang.org/x/image/font"

	"github.com/wayscriber/wayscriber/internal/capture"
	"github.com/wayscriber/wayscriber/internal/frame"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
	"github.com/wayscriber/wayscriber/internal/raster"
	"github.com/wayscriber/wayscriber/internal/shape"
	"github.com/wayscriber/wayscriber/internal/toolbar"
)

// Overlay is everything the orchestrator needs to paint a frame that
// is not already carried by input.State: the screen-space widgets
// (toolbar, help, context menu) reduced to draw calls by their own
// packages. The font for text shapes is Orchestrator.Face.
type Overlay struct {
	TopLayout    toolbar.Layout
	TopRegions   []toolbar.HitRegion
	SideLayout   toolbar.Layout
	SideRegions  []toolbar.HitRegion
	HelpSections []toolbar.HelpSection
	ShowHelp     bool
}

// Orchestrator paints one frame into a raster.Context. It exposes no
// policy: every visibility decision comes from the passed-in
// snapshots.
type Orchestrator struct {
	Face font.Face
}

// Paint runs the full ten-step sequence from spec.md §4.J.
func (o *Orchestrator) Paint(ctx *raster.Context, st *input.State, capturePipe *capture.Pipeline, ov Overlay, now time.Time) {
	// Step 1: clear, then frozen background if active.
	ctx.Clear(geom.Color{})
	if capturePipe != nil && capturePipe.Active() && capturePipe.Frozen != nil {
		o.paintFrozen(ctx, capturePipe)
	}

	// Step 2: scale/zoom transforms are applied by the caller choosing
	// the coordinate space shapes are already expressed in (the
	// orchestrator receives already-transformed geometry); nothing to
	// do here beyond documenting the ordering point.

	// Step 3: committed shapes in z-order.
	f := activeFrame(st)
	if f != nil {
		for _, ds := range f.Shapes {
			DrawShape(ctx, ds.Shape)
			if ds.Shape.Kind == shape.KindText || ds.Shape.Kind == shape.KindStickyNote {
				o.paintText(ctx, ds.Shape)
			}
		}
	}

	// Step 4: selection halos and text-resize handle.
	o.paintSelectionHalos(ctx, st, f)

	// Step 5: eraser hover halo(s) in Stroke mode.
	if st.Tool == input.ToolEraser && st.EraserMode == input.EraserStroke {
		o.paintEraserHover(ctx, st)
	}

	// Step 6: provisional shape.
	if st.Drawing.Kind == input.StateDrawing && st.Drawing.Current != nil {
		DrawShape(ctx, *st.Drawing.Current)
	}

	// Step 7: text-input caret with blink phase.
	if st.Drawing.Kind == input.StateTextInput {
		o.paintCaret(ctx, st, now)
	}

	// Step 8: click-highlight ring, alpha interpolated over lifetime.
	o.paintClickHighlights(ctx, st, now)

	// Step 9: screen-space overlays (status bar/toasts/help/context
	// menu/properties/toolbars) painted after any zoom transform would
	// have been restored.
	if ov.ShowHelp {
		o.paintHelp(ctx, ov.HelpSections)
	}
	if st.ShowToolbar {
		o.paintPanel(ctx, ov.TopLayout, geom.Point{})
		o.paintPanel(ctx, ov.SideLayout, geom.Point{})
	}

	// Step 10 (submit-with-damage) is the caller's responsibility —
	// the orchestrator only produces pixels, never touches the
	// compositor connection.
}

func activeFrame(st *input.State) *frame.Frame {
	if st.Canvas == nil {
		return nil
	}
	b := st.Canvas.Active()
	if b == nil {
		return nil
	}
	return b.ActiveFrame()
}

func (o *Orchestrator) paintFrozen(ctx *raster.Context, capturePipe *capture.Pipeline) {
	img := capturePipe.Frozen.ToRGBA()
	bounds := ctx.Dst.Bounds()
	for y := 0; y < img.Bounds().Dy() && y < bounds.Dy(); y++ {
		for x := 0; x < img.Bounds().Dx() && x < bounds.Dx(); x++ {
			ctx.Dst.Set(x, y, img.At(x, y))
		}
	}
}

// paintText renders a Text or StickyNote shape's label at its stored
// position using the orchestrator's font face, skipped entirely when
// no face has been loaded (e.g. headless tests).
func (o *Orchestrator) paintText(ctx *raster.Context, s shape.Shape) {
	if o.Face == nil || s.Text == "" {
		return
	}
	origin := s.Position
	if s.Kind == shape.KindStickyNote {
		origin = geom.Point{X: s.Position.X + 4, Y: s.Position.Y + int(s.FontSize)}
	}
	ctx.DrawText(o.Face, origin, s.Text, s.Color)
}

func (o *Orchestrator) paintSelectionHalos(ctx *raster.Context, st *input.State, f *frame.Frame) {
	if f == nil || len(st.Selection) == 0 {
		return
	}
	selected := map[shape.Id]bool{}
	for _, id := range st.Selection {
		selected[id] = true
	}
	for _, ds := range f.Shapes {
		if !selected[ds.Id] {
			continue
		}
		ctx.StrokeRect(shapeBounds(ds.Shape), 1, geom.Color{R: 0.2, G: 0.6, B: 1, A: 0.9})
	}
}

func (o *Orchestrator) paintEraserHover(ctx *raster.Context, st *input.State) {
	ctx.StrokeEllipse(geom.Rect{Min: st.Drawing.Anchor, Max: geom.Point{X: st.Drawing.Anchor.X + 10, Y: st.Drawing.Anchor.Y + 10}}, 1, geom.Color{R: 1, G: 1, B: 1, A: 0.4})
}

func (o *Orchestrator) paintCaret(ctx *raster.Context, st *input.State, now time.Time) {
	if (now.UnixMilli()/500)%2 != 0 {
		return
	}
	if st.Drawing.TextShape == nil {
		return
	}
	p := st.Drawing.TextShape.Position
	ctx.StrokeLine(p, geom.Point{X: p.X, Y: p.Y + int(st.FontSize)}, 1, st.Color)
}

func (o *Orchestrator) paintClickHighlights(ctx *raster.Context, st *input.State, now time.Time) {
	for _, h := range st.ClickHighlights() {
		if h.Duration <= 0 {
			continue
		}
		elapsed := now.Sub(h.Timestamp)
		if elapsed < 0 || elapsed >= h.Duration {
			continue
		}
		col := h.Color
		col.A *= 1 - float64(elapsed)/float64(h.Duration)
		ctx.StrokeEllipse(geom.Rect{Min: geom.Point{X: h.At.X - 8, Y: h.At.Y - 8}, Max: geom.Point{X: h.At.X + 8, Y: h.At.Y + 8}}, 2, col)
	}
}

func (o *Orchestrator) paintHelp(ctx *raster.Context, sections []toolbar.HelpSection) {
	y := 20
	for _, s := range sections {
		if o.Face != nil {
			ctx.DrawText(o.Face, geom.Point{X: 20, Y: y}, s.Title, geom.Color{R: 1, G: 1, B: 1, A: 1})
		}
		y += 20
		for range s.Rows {
			y += 16
		}
	}
}

func (o *Orchestrator) paintPanel(ctx *raster.Context, l toolbar.Layout, origin geom.Point) {
	ctx.FillRect(geom.Rect{Min: origin, Max: geom.Point{X: origin.X + l.Width, Y: origin.Y + l.Height}}, geom.Color{R: 0.1, G: 0.1, B: 0.1, A: 0.85})

	y := origin.Y + 1
	if l.Overflowing {
		y += 16
	}
	for _, row := range l.Rows {
		if row.Icon != nil {
			ctx.DrawImage(geom.Point{X: origin.X + 6, Y: y + (row.Height-row.Icon.Bounds().Dy())/2}, row.Icon)
		}
		if o.Face != nil && row.Label != "" {
			textX := origin.X + 6
			if row.Icon != nil {
				textX += row.Icon.Bounds().Dx() + 6
			}
			ctx.DrawText(o.Face, geom.Point{X: textX, Y: y + row.Height/2 + 4}, row.Label, geom.Color{R: 1, G: 1, B: 1, A: 1})
		}
		y += row.Height
	}
}

// shapeBounds computes an axis-aligned bounding box for s, used for
// the selection halo; it does not need to be pixel-exact since the
// halo is a visual affordance, not a hit-test (hit-testing lives in
// internal/geom's distance helpers instead).
func shapeBounds(s shape.Shape) geom.Rect {
	switch s.Kind {
	case shape.KindFreehand:
		if len(s.Points) == 0 {
			return geom.Rect{}
		}
		r := geom.Rect{Min: s.Points[0], Max: s.Points[0]}
		for _, p := range s.Points[1:] {
			r = expand(r, p)
		}
		return inflate(r, int(s.Thickness))
	case shape.KindLine, shape.KindRect, shape.KindEllipse, shape.KindArrow:
		r := geom.Rect{Min: s.Start, Max: s.Start}
		r = expand(r, s.End)
		return inflate(r, int(s.Thickness)+2)
	case shape.KindStepMarker:
		radius := int(s.ArrowLength)
		if radius <= 0 {
			radius = 12
		}
		return geom.Rect{Min: geom.Point{X: s.Start.X - radius, Y: s.Start.Y - radius}, Max: geom.Point{X: s.Start.X + radius, Y: s.Start.Y + radius}}
	case shape.KindText:
		return geom.Rect{Min: s.Position, Max: geom.Point{X: s.Position.X + 200, Y: s.Position.Y + int(s.FontSize)}}
	case shape.KindStickyNote:
		return geom.Rect{Min: s.Position, Max: geom.Point{X: s.Position.X + s.Size.X, Y: s.Position.Y + s.Size.Y}}
	default:
		return geom.Rect{}
	}
}

func expand(r geom.Rect, p geom.Point) geom.Rect {
	if p.X < r.Min.X {
		r.Min.X = p.X
	}
	if p.Y < r.Min.Y {
		r.Min.Y = p.Y
	}
	if p.X > r.Max.X {
		r.Max.X = p.X
	}
	if p.Y > r.Max.Y {
		r.Max.Y = p.Y
	}
	return r
}

func inflate(r geom.Rect, by int) geom.Rect {
	return geom.Rect{Min: geom.Point{X: r.Min.X - by, Y: r.Min.Y - by}, Max: geom.Point{X: r.Max.X + by, Y: r.Max.Y + by}}
}
