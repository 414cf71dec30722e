package input

import (
	"github.com/wayscriber/wayscriber/internal/frame"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/shape"
)

// BeginDraw starts a provisional shape for the current Tool at p,
// entering StateDrawing. Meta-tools (Selection) are not shapes and are
// left to the caller (marquee-select / move-selection are driven by
// their own DrawingStateKind, not this path).
func (s *State) BeginDraw(p geom.Point) {
	tool := s.Tool
	if tool == ToolFreehand {
		tool = ResolveToolFromModifiers(tool, s.ModCtrl, s.ModShift, s.ModTab)
	}
	if tool == ToolText || tool == ToolStickyNote {
		s.beginTextInput(tool, p)
		return
	}
	k := kindForTool(tool)
	if k < 0 {
		return
	}
	sh := shape.Shape{Kind: k, Start: p, End: p, Thickness: s.Thickness, Color: s.Color, ArrowLength: 20, ArrowAngle: 30}
	if k == shape.KindFreehand {
		sh.Points = []geom.Point{p}
	}
	s.Drawing = DrawingState{Kind: StateDrawing, Current: &sh, Anchor: p}
}

// UpdateDraw extends the in-progress shape toward p.
func (s *State) UpdateDraw(p geom.Point) {
	if s.Drawing.Kind != StateDrawing || s.Drawing.Current == nil {
		return
	}
	cur := s.Drawing.Current
	cur.End = p
	if cur.Kind == shape.KindFreehand {
		cur.Points = append(cur.Points, p)
	}
}

// CommitDraw appends the in-progress shape to the active frame's
// committed shapes and returns to StateIdle. A zero-length stroke
// (Start == End with no intermediate points) is discarded rather than
// committed, matching the "accidental click draws nothing" edge case.
func (s *State) CommitDraw() {
	defer func() { s.Drawing = DrawingState{} }()
	if s.Drawing.Kind != StateDrawing || s.Drawing.Current == nil {
		return
	}
	cur := *s.Drawing.Current
	if cur.Kind != shape.KindFreehand && cur.Start == cur.End {
		return
	}
	if cur.Kind == shape.KindFreehand && len(cur.Points) < 2 {
		return
	}
	if s.Canvas == nil {
		return
	}
	b := s.Canvas.Active()
	if b == nil {
		return
	}
	f := b.ActiveFrame()
	id := shape.NextId()
	ds := shape.DrawnShape{Id: id, Shape: cur}
	f.Push(frame.UndoAction{
		Kind:   frame.ActionCreate,
		Shapes: []frame.IndexedShape{{Index: len(f.Shapes), Shape: ds}},
	})
}

// beginTextInput starts a new TextInput gesture at p. A click while
// already in TextInput commits the text entered so far before opening
// the new one, matching "another click outside the caret commits the
// current text as a Text shape" (spec.md §4.D).
func (s *State) beginTextInput(tool Tool, p geom.Point) {
	if s.Drawing.Kind == StateTextInput {
		s.CommitTextInput()
	}
	k := shape.KindText
	if tool == ToolStickyNote {
		k = shape.KindStickyNote
	}
	ts := shape.Shape{Kind: k, Position: p, FontSize: s.FontSize, Color: s.Color}
	s.Drawing = DrawingState{Kind: StateTextInput, TextShape: &ts}
}

// CommitTextInput finalizes the buffered text into a committed shape
// and pushes a Create UndoAction. An empty buffer commits nothing,
// matching the Escape empty-text-cancel edge case (spec.md §4.D).
func (s *State) CommitTextInput() {
	defer func() { s.Drawing = DrawingState{} }()
	if s.Drawing.Kind != StateTextInput || s.Drawing.TextShape == nil {
		return
	}
	text := s.Drawing.TextBufferString()
	if text == "" || s.Canvas == nil {
		return
	}
	b := s.Canvas.Active()
	if b == nil {
		return
	}
	f := b.ActiveFrame()
	sh := *s.Drawing.TextShape
	sh.Text = text
	ds := shape.DrawnShape{Id: shape.NextId(), Shape: sh}
	f.Push(frame.UndoAction{
		Kind:   frame.ActionCreate,
		Shapes: []frame.IndexedShape{{Index: len(f.Shapes), Shape: ds}},
	})
}

// kindForTool maps a Tool to the shape.Kind it draws, or -1 for
// meta-tools that do not produce a shape directly (Selection, Eraser,
// Text, StickyNote — the latter two enter StateTextInput instead).
func kindForTool(t Tool) shape.Kind {
	switch t {
	case ToolFreehand:
		return shape.KindFreehand
	case ToolLine:
		return shape.KindLine
	case ToolRect:
		return shape.KindRect
	case ToolEllipse:
		return shape.KindEllipse
	case ToolArrow:
		return shape.KindArrow
	case ToolStepMarker:
		return shape.KindStepMarker
	case ToolHighlight:
		return shape.KindFreehand
	default:
		return -1
	}
}
