package canvas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeletePageClearsLastPage(t *testing.T) {
	b := NewBoardState(NewBoardSpec("a", geom0()))
	b.ActiveFrame().Shapes = append(b.ActiveFrame().Shapes, dummyShape())
	outcome := b.DeletePage()
	require.Equal(t, PageCleared, outcome)
	require.Len(t, b.Pages, 1)
	require.Empty(t, b.ActiveFrame().Shapes)
}

func TestDeletePageRemovesNonLastPage(t *testing.T) {
	b := NewBoardState(NewBoardSpec("a", geom0()))
	b.NewPage()
	outcome := b.DeletePage()
	require.Equal(t, PageRemoved, outcome)
	require.Len(t, b.Pages, 1)
}

func TestCanvasSetCannotDeleteOnlyBoard(t *testing.T) {
	cs := NewCanvasSet(0)
	require.False(t, cs.DeleteBoard(cs.Active().Spec.Id))
	require.Len(t, cs.Boards, 1)
}

func TestCanvasSetPickerOrderPinnedFirst(t *testing.T) {
	cs := NewCanvasSet(0)
	cs.NewBoard("b")
	cs.NewBoard("c")
	cs.Boards[2].Spec.Pinned = true
	order := cs.PickerOrder()
	require.Equal(t, []int{2, 0, 1}, order)
}

func TestSwitchRecentPicksMru(t *testing.T) {
	cs := NewCanvasSet(0)
	first := cs.Active().Spec.Id
	cs.NewBoard("b")
	require.True(t, cs.SwitchRecent())
	require.Equal(t, first, cs.Active().Spec.Id)
}
