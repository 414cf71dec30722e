package frame

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wayscriber/wayscriber/internal/shape"
)

func mkShape(id shape.Id) shape.DrawnShape {
	return shape.DrawnShape{Id: id, Shape: shape.Shape{Kind: shape.KindRect}}
}

func TestCreateApplyInverseRoundTrip(t *testing.T) {
	f := New()
	a := UndoAction{Kind: ActionCreate, Shapes: []IndexedShape{{Index: 0, Shape: mkShape(1)}}}
	f.Push(a)
	require.Len(t, f.Shapes, 1)
	require.True(t, f.Undo1())
	require.Empty(t, f.Shapes)
	require.True(t, f.Redo1())
	require.Len(t, f.Shapes, 1)
}

func TestDeleteApplyInverseRestoresIndex(t *testing.T) {
	f := New()
	f.Shapes = []shape.DrawnShape{mkShape(1), mkShape(2), mkShape(3)}
	del := UndoAction{Kind: ActionDelete, Shapes: []IndexedShape{{Index: 1, Shape: mkShape(2)}}}
	f.Push(del)
	require.Len(t, f.Shapes, 2)
	require.True(t, f.Undo1())
	require.Len(t, f.Shapes, 3)
	require.Equal(t, shape.Id(2), f.Shapes[1].Id)
}

func TestCreateMultiShapeAppliesPriorOffset(t *testing.T) {
	f := New()
	f.Shapes = []shape.DrawnShape{mkShape(1), mkShape(2)}
	// Both new shapes were recorded at their pre-insert index 1 (between
	// the two existing shapes); the second insert must land one past the
	// first, at index 1+1=2, not index 1 again.
	create := UndoAction{Kind: ActionCreate, Shapes: []IndexedShape{
		{Index: 1, Shape: mkShape(3)},
		{Index: 1, Shape: mkShape(4)},
	}}
	f.Push(create)
	require.Equal(t, []shape.Id{1, 3, 4, 2}, idsOf(f.Shapes))
	require.True(t, f.Undo1())
	require.Equal(t, []shape.Id{1, 2}, idsOf(f.Shapes))
}

func TestDeleteInverseMultiShapeAppliesPriorOffsetAndClamps(t *testing.T) {
	f := New()
	f.Shapes = []shape.DrawnShape{mkShape(1), mkShape(4)}
	del := UndoAction{Kind: ActionDelete, Shapes: []IndexedShape{
		{Index: 1, Shape: mkShape(2)},
		{Index: 1, Shape: mkShape(3)},
	}}
	f.Push(del)
	require.Equal(t, []shape.Id{1, 4}, idsOf(f.Shapes))
	require.True(t, f.Undo1())
	require.Equal(t, []shape.Id{1, 2, 3, 4}, idsOf(f.Shapes))
}

func idsOf(shapes []shape.DrawnShape) []shape.Id {
	ids := make([]shape.Id, len(shapes))
	for i, s := range shapes {
		ids[i] = s.Id
	}
	return ids
}

func TestModifyRoundTrip(t *testing.T) {
	f := New()
	f.Shapes = []shape.DrawnShape{mkShape(1)}
	before := f.Shapes[0]
	after := before
	after.Locked = true
	f.Push(UndoAction{Kind: ActionModify, ShapeId: 1, Before: before, After: after})
	require.True(t, f.Shapes[0].Locked)
	require.True(t, f.Undo1())
	require.False(t, f.Shapes[0].Locked)
}

func TestReorderMoveForward(t *testing.T) {
	f := New()
	f.Shapes = []shape.DrawnShape{mkShape(1), mkShape(2), mkShape(3)}
	f.Push(UndoAction{Kind: ActionReorder, ShapeId: 1, FromIndex: 0, ToIndex: 2})
	// Moving forward decrements the target after removal: id 1 lands at
	// index 1, ahead of the shape that was at index 2.
	ids := []shape.Id{f.Shapes[0].Id, f.Shapes[1].Id, f.Shapes[2].Id}
	require.Equal(t, []shape.Id{2, 1, 3}, ids)
	require.True(t, f.Undo1())
	ids = []shape.Id{f.Shapes[0].Id, f.Shapes[1].Id, f.Shapes[2].Id}
	require.Equal(t, []shape.Id{1, 2, 3}, ids)
}

func TestCompoundAppliesChildrenInOrderInverseReversed(t *testing.T) {
	f := New()
	compound := UndoAction{
		Kind: ActionCompound,
		Children: []UndoAction{
			{Kind: ActionCreate, Shapes: []IndexedShape{{Index: 0, Shape: mkShape(1)}}},
			{Kind: ActionCreate, Shapes: []IndexedShape{{Index: 1, Shape: mkShape(2)}}},
		},
	}
	f.Push(compound)
	require.Len(t, f.Shapes, 2)
	require.True(t, f.Undo1())
	require.Empty(t, f.Shapes)
}

func TestCompoundDepthBound(t *testing.T) {
	leaf := UndoAction{Kind: ActionCreate}
	a := leaf
	for i := 0; i < MaxCompoundDepth+2; i++ {
		a = UndoAction{Kind: ActionCompound, Children: []UndoAction{a}}
	}
	require.Greater(t, a.Depth(), MaxCompoundDepth)
}

func TestPruneForRemovedShapesDropsStaleEntries(t *testing.T) {
	f := New()
	f.Undo = []UndoAction{
		{Kind: ActionModify, ShapeId: 5},
		{Kind: ActionModify, ShapeId: 6},
	}
	n := f.PruneForRemovedShapes(map[shape.Id]bool{5: true})
	require.Equal(t, 1, n)
	require.Len(t, f.Undo, 1)
	require.Equal(t, shape.Id(6), f.Undo[0].ShapeId)
}

func TestClampStackDropsOldest(t *testing.T) {
	stack := []UndoAction{{ShapeId: 1}, {ShapeId: 2}, {ShapeId: 3}}
	n := ClampStack(&stack, 2)
	require.Equal(t, 1, n)
	require.Equal(t, []UndoAction{{ShapeId: 2}, {ShapeId: 3}}, stack)
}
