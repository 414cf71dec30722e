package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wayscriber/wayscriber/internal/canvas"
)

func TestResolveToolFromModifiers(t *testing.T) {
	assert.Equal(t, ToolLine, ResolveToolFromModifiers(ToolFreehand, false, true, false))
	assert.Equal(t, ToolRect, ResolveToolFromModifiers(ToolFreehand, true, false, false))
	assert.Equal(t, ToolEllipse, ResolveToolFromModifiers(ToolFreehand, false, false, true))
	assert.Equal(t, ToolArrow, ResolveToolFromModifiers(ToolFreehand, true, true, false))
	assert.Equal(t, ToolFreehand, ResolveToolFromModifiers(ToolFreehand, false, false, false))
}

func TestThicknessClampsToRange(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(0))
	s.SetThickness(-5)
	assert.Equal(t, MinThickness, s.Thickness)
	s.SetThickness(1000)
	assert.Equal(t, MaxThickness, s.Thickness)
}

func TestTextBufferCapEnforced(t *testing.T) {
	d := &DrawingState{}
	for i := 0; i < MaxTextBufferRunes; i++ {
		assert.True(t, d.TextBufferAppend('a'))
	}
	assert.False(t, d.TextBufferAppend('a'))
	assert.Len(t, d.TextBuffer, MaxTextBufferRunes)
}

func TestClickHighlightRingEvictsOldest(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(0))
	for i := 0; i < clickHighlightRingSize+3; i++ {
		s.PushClickHighlight(ClickHighlight{At: geomPoint(i, i)})
	}
	highlights := s.ClickHighlights()
	assert.Len(t, highlights, clickHighlightRingSize)
	assert.Equal(t, 3, highlights[0].At.X)
}

func TestAdvanceClickHighlightsDropsExpiredAndReportsRemaining(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(0))
	start := time.Unix(0, 0)
	s.PushClickHighlight(ClickHighlight{At: geomPoint(1, 1), Timestamp: start, Duration: 100 * time.Millisecond})
	s.PushClickHighlight(ClickHighlight{At: geomPoint(2, 2), Timestamp: start.Add(90 * time.Millisecond), Duration: 100 * time.Millisecond})

	remaining := s.AdvanceClickHighlights(start.Add(150 * time.Millisecond))
	assert.True(t, remaining)
	highlights := s.ClickHighlights()
	assert.Len(t, highlights, 1)
	assert.Equal(t, 2, highlights[0].At.X)

	remaining = s.AdvanceClickHighlights(start.Add(500 * time.Millisecond))
	assert.False(t, remaining)
	assert.Empty(t, s.ClickHighlights())
}

func TestNewClickHighlightUsesPenColorAndConfiguredDuration(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(0))
	s.Color.R = 0.5
	now := time.Unix(1, 0)
	h := s.NewClickHighlight(geomPoint(3, 4), now)
	assert.True(t, h.PenColor)
	assert.Equal(t, 0.5, h.Color.R)
	assert.Equal(t, now, h.Timestamp)
	assert.Equal(t, DefaultClickHighlightDuration, h.Duration)
}
