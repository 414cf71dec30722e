package input

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/wayscriber/wayscriber/internal/canvas"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/shape"
)

// Tool selects which shape kind (or meta-operation) the next draw
// gesture produces.
type Tool int

const (
	ToolSelection Tool = iota
	ToolFreehand
	ToolLine
	ToolRect
	ToolEllipse
	ToolArrow
	ToolEraser
	ToolHighlight
	ToolStepMarker
	ToolText
	ToolStickyNote
)

// EraserMode selects the eraser's Brush or Stroke mode;
// ActionToggleEraserMode flips between them. No gesture acts on it:
// BeginDraw starts nothing for ToolEraser.
type EraserMode int

const (
	EraserBrush EraserMode = iota
	EraserStroke
)

// DrawingStateKind tags the DrawingState variant currently active.
type DrawingStateKind int

const (
	StateIdle DrawingStateKind = iota
	StateDrawing
	StateTextInput
	StateResizingText
	StateMovingSelection
	StateMarqueeSelecting
)

// DrawingState is the input state machine's current interaction mode.
type DrawingState struct {
	Kind DrawingStateKind

	// Drawing
	Current *shape.Shape
	Anchor  geom.Point

	// TextInput, ResizingText
	TextBuffer []rune
	TextShape  *shape.Shape

	// MovingSelection
	DragStart geom.Point
	DragLast  geom.Point

	// MarqueeSelecting
	MarqueeStart geom.Point
	MarqueeEnd   geom.Point
}

// MaxTextBufferRunes bounds the text tool's input buffer.
const MaxTextBufferRunes = 10000

// ClickHighlight is one entry in the click-highlight ring buffer: a
// flash shown briefly at the cursor position on click, when enabled.
// Timestamp/Duration let advance(now) expire entries and the
// orchestrator interpolate alpha over the flash's lifetime.
type ClickHighlight struct {
	At        geom.Point
	Color     geom.Color
	PenColor  bool
	Timestamp time.Time
	Duration  time.Duration
}

const clickHighlightRingSize = 16

// DefaultClickHighlightDuration is the flash lifetime used until a
// config option supplies one (spec.md §4.D: "configured with radius,
// outline thickness, duration...").
const DefaultClickHighlightDuration = 400 * time.Millisecond

// State aggregates everything the input layer needs: the active tool
// and its parameters, the current DrawingState, selection, and the
// click-highlight ring, plus a reference to the CanvasSet it edits.
type State struct {
	Tool       Tool
	EraserMode EraserMode
	Color      geom.Color
	Thickness  float64
	FontSize   float64

	ModCtrl, ModShift, ModAlt, ModTab bool

	Drawing DrawingState

	Selection []shape.Id

	ShowHelp        bool
	ShowQuickHelp   bool
	ShowToolbar     bool
	ShowClickHighlight bool
	PresenterMode   bool

	clickRing      [clickHighlightRingSize]ClickHighlight
	clickRingNext  int
	clickRingCount int

	Canvas *canvas.CanvasSet
}

// NewState returns a State editing cs with the freehand tool, opaque
// red, minimum thickness, a 16pt font, and the toolbar visible (help
// hidden).
func NewState(cs *canvas.CanvasSet) *State {
	return &State{
		Tool:        ToolFreehand,
		Color:       geom.Color{R: 1, A: 1},
		Thickness:   MinThickness,
		FontSize:    16,
		ShowToolbar: true,
		Canvas:      cs,
	}
}

// Clamp ranges for tool parameters (spec.md §8 boundary behaviors).
const (
	MinThickness = 1.0
	MaxThickness = 40.0

	MinFontSize = 8.0
	MaxFontSize = 72.0

	MinArrowLength = 5.0
	MaxArrowLength = 50.0

	MinArrowAngle = 15.0
	MaxArrowAngle = 60.0

	MinHistoryDelayMs = 50
	MaxHistoryDelayMs = 5000

	MinCustomSteps = 1
	MaxCustomSteps = 500

	MinBufferCount = 2
	MaxBufferCount = 4

	MinUIAnimationFps = 0
	MaxUIAnimationFps = 240
)

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetThickness clamps and sets the pen thickness.
func (s *State) SetThickness(v float64) { s.Thickness = clampF(v, MinThickness, MaxThickness) }

// SetFontSize clamps and sets the text font size.
func (s *State) SetFontSize(v float64) { s.FontSize = clampF(v, MinFontSize, MaxFontSize) }

// ResolveToolFromModifiers applies the press-time modifier latching
// rule: Shift chooses Line, Ctrl chooses Rect, Tab chooses Ellipse, and
// Ctrl+Shift chooses Arrow, overriding the persistently selected tool
// for the duration of a single gesture only. Evaluated once, at press
// time.
func ResolveToolFromModifiers(base Tool, ctrl, shift, tab bool) Tool {
	switch {
	case ctrl && shift:
		return ToolArrow
	case ctrl:
		return ToolRect
	case shift:
		return ToolLine
	case tab:
		return ToolEllipse
	default:
		return base
	}
}

// PushClickHighlight records a click-highlight flash, evicting the
// oldest entry once the ring is full.
func (s *State) PushClickHighlight(h ClickHighlight) {
	s.clickRing[s.clickRingNext] = h
	s.clickRingNext = (s.clickRingNext + 1) % clickHighlightRingSize
	if s.clickRingCount < clickHighlightRingSize {
		s.clickRingCount++
	}
}

// ClickHighlights returns the currently buffered highlights, oldest
// first.
func (s *State) ClickHighlights() []ClickHighlight {
	out := make([]ClickHighlight, 0, s.clickRingCount)
	start := (s.clickRingNext - s.clickRingCount + clickHighlightRingSize) % clickHighlightRingSize
	for i := 0; i < s.clickRingCount; i++ {
		out = append(out, s.clickRing[(start+i)%clickHighlightRingSize])
	}
	return out
}

// NewClickHighlight builds a ring entry for a left-press at p using
// the pen color (spec.md §4.D "use pen color" mode) at a fixed flash
// alpha, timestamped at now.
func (s *State) NewClickHighlight(p geom.Point, now time.Time) ClickHighlight {
	col := s.Color
	col.A = 0.6
	return ClickHighlight{
		At:        p,
		Color:     col,
		PenColor:  true,
		Timestamp: now,
		Duration:  DefaultClickHighlightDuration,
	}
}

// AdvanceClickHighlights drops ring entries older than their Duration
// and reports whether any highlight remains live, matching spec.md
// §4.D's "advance(now) removes expired entries and signals redraw
// while any remain".
func (s *State) AdvanceClickHighlights(now time.Time) bool {
	live := make([]ClickHighlight, 0, s.clickRingCount)
	for _, h := range s.ClickHighlights() {
		if now.Sub(h.Timestamp) < h.Duration {
			live = append(live, h)
		}
	}
	s.clickRingNext, s.clickRingCount = 0, 0
	for _, h := range live {
		s.PushClickHighlight(h)
	}
	return len(live) > 0
}

// SetSelection replaces the selection outright.
func (s *State) SetSelection(ids []shape.Id) { s.Selection = append([]shape.Id(nil), ids...) }

// AddSelection adds id to the selection if not already present.
func (s *State) AddSelection(id shape.Id) {
	for _, existing := range s.Selection {
		if existing == id {
			return
		}
	}
	s.Selection = append(s.Selection, id)
}

// ClearSelection empties the selection.
func (s *State) ClearSelection() { s.Selection = nil }

// TextBufferAppend appends r to the active text buffer, enforcing the
// rune cap.
func (d *DrawingState) TextBufferAppend(r rune) bool {
	if len(d.TextBuffer) >= MaxTextBufferRunes {
		return false
	}
	d.TextBuffer = append(d.TextBuffer, r)
	return true
}

// TextBufferBackspace removes the last grapheme cluster (base rune plus
// any trailing combining marks), using the same normalization boundary
// logic x/text's norm package exposes, so a combining accent typed
// after its base character is deleted together with it rather than
// leaving an orphaned mark.
func (d *DrawingState) TextBufferBackspace() bool {
	if len(d.TextBuffer) == 0 {
		return false
	}
	n := len(d.TextBuffer)
	cut := n - 1
	for cut > 0 && isCombiningMark(d.TextBuffer[cut]) {
		cut--
	}
	d.TextBuffer = d.TextBuffer[:cut]
	return true
}

// isCombiningMark reports whether r is a non-starter (combining
// class != 0) per Unicode normalization, using x/text's canonical
// combining class data rather than a hand-rolled mark table.
func isCombiningMark(r rune) bool {
	var buf [4]byte
	n := utf8.EncodeRune(buf[:], r)
	return norm.NFC.Properties(buf[:n]).CCC() != 0
}

// TextBufferString renders the buffer as a string.
func (d *DrawingState) TextBufferString() string {
	var b strings.Builder
	b.Grow(len(d.TextBuffer))
	for _, r := range d.TextBuffer {
		b.WriteRune(r)
	}
	return b.String()
}
