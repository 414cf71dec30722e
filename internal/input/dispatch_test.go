package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wayscriber/wayscriber/internal/canvas"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/shape"
)

func TestDispatchExitRequestsExit(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	assert.True(t, s.Dispatch(ActionExit))
}

func TestDispatchSelectToolSwitchesTool(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	assert.False(t, s.Dispatch(ActionSelectRectTool))
	assert.Equal(t, ToolRect, s.Tool)
}

func TestDispatchIncreaseThicknessClamps(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	s.Thickness = MaxThickness
	s.Dispatch(ActionIncreaseThickness)
	assert.Equal(t, MaxThickness, s.Thickness)
}

func TestDispatchDeleteSelectionRemovesShapes(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	f := s.Canvas.Active().ActiveFrame()
	id := shape.NextId()
	f.Shapes = append(f.Shapes, shape.DrawnShape{Id: id, Shape: shape.Shape{Kind: shape.KindLine, Start: geom.Point{}, End: geom.Point{X: 1, Y: 1}}})
	s.SetSelection([]shape.Id{id})
	s.Dispatch(ActionDeleteSelection)
	assert.Empty(t, f.Shapes)
	assert.Empty(t, s.Selection)
	assert.Len(t, f.Undo, 1)
}

func TestDispatchDeleteSelectionIsUndoable(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	f := s.Canvas.Active().ActiveFrame()
	idA := shape.NextId()
	idB := shape.NextId()
	f.Shapes = append(f.Shapes,
		shape.DrawnShape{Id: idA, Shape: shape.Shape{Kind: shape.KindLine}},
		shape.DrawnShape{Id: idB, Shape: shape.Shape{Kind: shape.KindLine}},
	)
	s.SetSelection([]shape.Id{idA, idB})
	s.Dispatch(ActionDeleteSelection)
	assert.Empty(t, f.Shapes)
	f.Undo1()
	assert.Len(t, f.Shapes, 2)
}

func TestDispatchDeleteSelectionUndoRestoresMultiShapeOrder(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	f := s.Canvas.Active().ActiveFrame()
	ids := make([]shape.Id, 4)
	for i := range ids {
		ids[i] = shape.NextId()
		f.Shapes = append(f.Shapes, shape.DrawnShape{Id: ids[i], Shape: shape.Shape{Kind: shape.KindLine}})
	}
	// Delete the two adjacent middle shapes; undo must put both back
	// between the outer two, in their original order.
	s.SetSelection([]shape.Id{ids[1], ids[2]})
	s.Dispatch(ActionDeleteSelection)
	assert.Equal(t, []shape.Id{ids[0], ids[3]}, idsOf(f.Shapes))
	f.Undo1()
	assert.Equal(t, ids, idsOf(f.Shapes))
}

func idsOf(shapes []shape.DrawnShape) []shape.Id {
	out := make([]shape.Id, len(shapes))
	for i, ds := range shapes {
		out[i] = ds.Id
	}
	return out
}

func TestDispatchSelectAllSkipsLockedShapes(t *testing.T) {
	s := NewState(canvas.NewCanvasSet(4))
	f := s.Canvas.Active().ActiveFrame()
	unlocked := shape.NextId()
	locked := shape.NextId()
	f.Shapes = append(f.Shapes,
		shape.DrawnShape{Id: unlocked, Shape: shape.Shape{Kind: shape.KindLine}},
		shape.DrawnShape{Id: locked, Shape: shape.Shape{Kind: shape.KindLine}, Locked: true},
	)
	s.Dispatch(ActionSelectAll)
	assert.Equal(t, []shape.Id{unlocked}, s.Selection)
}
