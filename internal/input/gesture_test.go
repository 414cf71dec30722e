package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wayscriber/wayscriber/internal/canvas"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/shape"
)

func TestBeginUpdateCommitDrawAppendsShape(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolLine
	s.BeginDraw(geom.Point{X: 1, Y: 1})
	assert.Equal(t, StateDrawing, s.Drawing.Kind)
	s.UpdateDraw(geom.Point{X: 10, Y: 10})
	s.CommitDraw()
	assert.Equal(t, StateIdle, s.Drawing.Kind)
	f := s.Canvas.Active().ActiveFrame()
	assert.Len(t, f.Shapes, 1)
	assert.Equal(t, shape.KindLine, f.Shapes[0].Shape.Kind)
	assert.Equal(t, geom.Point{X: 10, Y: 10}, f.Shapes[0].Shape.End)
}

func TestCommitDrawPushesUndoableCreateAction(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolFreehand
	s.BeginDraw(geom.Point{X: 1, Y: 1})
	s.UpdateDraw(geom.Point{X: 5, Y: 5})
	s.CommitDraw()
	f := s.Canvas.Active().ActiveFrame()
	assert.Len(t, f.Shapes, 1)
	assert.Len(t, f.Undo, 1)
	f.Undo1()
	assert.Empty(t, f.Shapes)
	f.Redo1()
	assert.Len(t, f.Shapes, 1)
}

func TestBeginDrawAppliesModifierOverrideOnlyForFreehandTool(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolFreehand
	s.ModShift = true
	s.BeginDraw(geom.Point{X: 1, Y: 1})
	assert.Equal(t, shape.KindLine, s.Drawing.Current.Kind)

	s2 := NewState(canvas.NewCanvasSet(4))
	s2.Tool = ToolRect
	s2.ModShift = true
	s2.BeginDraw(geom.Point{X: 1, Y: 1})
	assert.Equal(t, shape.KindRect, s2.Drawing.Current.Kind)
}

func TestCommitDrawDiscardsZeroLengthStroke(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolRect
	s.BeginDraw(geom.Point{X: 5, Y: 5})
	s.CommitDraw()
	f := s.Canvas.Active().ActiveFrame()
	assert.Empty(t, f.Shapes)
}

func TestBeginDrawIgnoresSelectionTool(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolSelection
	s.BeginDraw(geom.Point{X: 1, Y: 1})
	assert.Equal(t, StateIdle, s.Drawing.Kind)
}

func TestBeginDrawEntersTextInputForTextTool(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolText
	s.BeginDraw(geom.Point{X: 3, Y: 4})
	assert.Equal(t, StateTextInput, s.Drawing.Kind)
	if assert.NotNil(t, s.Drawing.TextShape) {
		assert.Equal(t, shape.KindText, s.Drawing.TextShape.Kind)
	}
}

func TestCommitTextInputPushesUndoableCreateAction(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolText
	s.BeginDraw(geom.Point{X: 3, Y: 4})
	s.Drawing.TextBufferAppend('h')
	s.Drawing.TextBufferAppend('i')
	s.CommitTextInput()
	assert.Equal(t, StateIdle, s.Drawing.Kind)
	f := s.Canvas.Active().ActiveFrame()
	assert.Len(t, f.Shapes, 1)
	assert.Equal(t, "hi", f.Shapes[0].Shape.Text)
	assert.Len(t, f.Undo, 1)
	f.Undo1()
	assert.Empty(t, f.Shapes)
}

func TestCommitTextInputDiscardsEmptyBuffer(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolText
	s.BeginDraw(geom.Point{X: 3, Y: 4})
	s.CommitTextInput()
	f := s.Canvas.Active().ActiveFrame()
	assert.Empty(t, f.Shapes)
}

func TestBeginDrawWhileInTextInputCommitsPriorTextFirst(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolText
	s.BeginDraw(geom.Point{X: 1, Y: 1})
	s.Drawing.TextBufferAppend('x')
	s.BeginDraw(geom.Point{X: 9, Y: 9})
	f := s.Canvas.Active().ActiveFrame()
	assert.Len(t, f.Shapes, 1)
	assert.Equal(t, "x", f.Shapes[0].Shape.Text)
	assert.Equal(t, StateTextInput, s.Drawing.Kind)
	assert.Equal(t, geom.Point{X: 9, Y: 9}, s.Drawing.TextShape.Position)
}

func TestCommitFreehandRequiresAtLeastTwoPoints(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Tool = ToolFreehand
	s.BeginDraw(geom.Point{X: 1, Y: 1})
	s.CommitDraw()
	f := s.Canvas.Active().ActiveFrame()
	assert.Empty(t, f.Shapes)
}
