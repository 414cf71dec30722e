package input

import (
	"github.com/wayscriber/wayscriber/internal/frame"
	"github.com/wayscriber/wayscriber/internal/shape"
)

// Dispatch applies one resolved Action to State, covering the
// tool-selection, undo/redo, and selection-editing actions that need
// no further input (arguments like drag deltas or typed text arrive
// through their own dedicated paths instead of Dispatch). It reports
// whether the caller should request a loop exit.
func (s *State) Dispatch(a Action) (requestExit bool) {
	switch a {
	case ActionExit:
		return true

	case ActionUndo:
		s.withActiveFrame(func(f undoRedoer) { f.Undo1() })
	case ActionRedo:
		s.withActiveFrame(func(f undoRedoer) { f.Redo1() })
	case ActionUndoAll:
		s.withActiveFrame(func(f undoRedoer) { f.UndoAll() })
	case ActionRedoAll:
		s.withActiveFrame(func(f undoRedoer) { f.RedoAll() })

	case ActionSelectSelectionTool:
		s.Tool = ToolSelection
	case ActionSelectFreehandTool:
		s.Tool = ToolFreehand
	case ActionSelectLineTool:
		s.Tool = ToolLine
	case ActionSelectRectTool:
		s.Tool = ToolRect
	case ActionSelectEllipseTool:
		s.Tool = ToolEllipse
	case ActionSelectArrowTool:
		s.Tool = ToolArrow
	case ActionSelectEraserTool:
		s.Tool = ToolEraser
	case ActionSelectHighlightTool:
		s.Tool = ToolHighlight
	case ActionToggleEraserMode:
		if s.EraserMode == EraserBrush {
			s.EraserMode = EraserStroke
		} else {
			s.EraserMode = EraserBrush
		}
	case ActionEnterTextMode:
		s.Tool = ToolText
	case ActionEnterStickyNoteMode:
		s.Tool = ToolStickyNote

	case ActionIncreaseThickness:
		s.SetThickness(s.Thickness + 1)
	case ActionDecreaseThickness:
		s.SetThickness(s.Thickness - 1)
	case ActionIncreaseFontSize:
		s.SetFontSize(s.FontSize + 2)
	case ActionDecreaseFontSize:
		s.SetFontSize(s.FontSize - 2)

	case ActionSelectAll:
		s.selectAllInActiveFrame()
	case ActionDeleteSelection:
		s.deleteSelection()

	case ActionPageNext:
		s.withPageNav(func(b pageNavigator) { b.NextPage() })
	case ActionPagePrev:
		s.withPageNav(func(b pageNavigator) { b.PrevPage() })
	}
	return false
}

// undoRedoer is the subset of *frame.Frame that the undo/redo actions
// in Dispatch need.
type undoRedoer interface {
	Undo1() bool
	Redo1() bool
	UndoAll() int
	RedoAll() int
}

// pageNavigator is the subset of *canvas.BoardState Dispatch needs.
type pageNavigator interface {
	NextPage() bool
	PrevPage() bool
}

func (s *State) withPageNav(fn func(pageNavigator)) {
	if s.Canvas == nil {
		return
	}
	b := s.Canvas.Active()
	if b == nil {
		return
	}
	fn(b)
}

func (s *State) withActiveFrame(fn func(undoRedoer)) {
	if s.Canvas == nil {
		return
	}
	b := s.Canvas.Active()
	if b == nil {
		return
	}
	fn(b.ActiveFrame())
}

func (s *State) selectAllInActiveFrame() {
	if s.Canvas == nil {
		return
	}
	b := s.Canvas.Active()
	if b == nil {
		return
	}
	f := b.ActiveFrame()
	ids := make([]shape.Id, 0, len(f.Shapes))
	for _, ds := range f.Shapes {
		if !ds.Locked {
			ids = append(ids, ds.Id)
		}
	}
	s.SetSelection(ids)
}

func (s *State) deleteSelection() {
	if s.Canvas == nil || len(s.Selection) == 0 {
		return
	}
	b := s.Canvas.Active()
	if b == nil {
		return
	}
	f := b.ActiveFrame()
	removed := map[shape.Id]bool{}
	for _, id := range s.Selection {
		removed[id] = true
	}
	// Index is recorded as the position each removed shape would occupy
	// in the surviving list (the count of kept shapes seen before it),
	// not its position in the original list: ApplyInverse reinserts
	// shapes one at a time into the shrinking surviving list, adding
	// one enumeration offset per prior insert (frame.ApplyInverse), so
	// two removed shapes separated only by other removed shapes must
	// share the same recorded index.
	var indexed []frame.IndexedShape
	kept := 0
	for _, ds := range f.Shapes {
		if removed[ds.Id] {
			indexed = append(indexed, frame.IndexedShape{Index: kept, Shape: ds})
		} else {
			kept++
		}
	}
	if len(indexed) == 0 {
		s.ClearSelection()
		return
	}
	f.Push(frame.UndoAction{Kind: frame.ActionDelete, Shapes: indexed})
	s.ClearSelection()
}
