package session

import (
	"github.com/wayscriber/wayscriber/internal/canvas"
	"github.com/wayscriber/wayscriber/internal/frame"
	"github.com/wayscriber/wayscriber/internal/shape"
)

// SnapshotFromBoards builds a Snapshot from the given boards, honoring
// opts' persistence toggles and history limit. kindOf classifies a
// board (transparent/whiteboard/blackboard) for the per-kind persist
// toggles; boards that aren't persisted are simply omitted.
func SnapshotFromBoards(boards []*canvas.BoardState, activeId string, opts Options, tool *ToolStateSnapshot, kindOf func(*canvas.BoardState) string) Snapshot {
	snap := Snapshot{Version: CurrentVersion, ActiveBoardId: activeId, ToolState: tool}
	for _, b := range boards {
		if !shouldPersist(kindOf(b), opts) {
			continue
		}
		snap.Boards = append(snap.Boards, boardToSnapshot(b, opts))
	}
	return snap
}

func shouldPersist(kind string, opts Options) bool {
	switch kind {
	case "transparent":
		return opts.PersistTransparent
	case "whiteboard":
		return opts.PersistWhiteboard
	case "blackboard":
		return opts.PersistBlackboard
	default:
		return true
	}
}

func boardToSnapshot(b *canvas.BoardState, opts Options) BoardPagesSnapshot {
	out := BoardPagesSnapshot{
		BoardId:    b.Spec.Id,
		Name:       b.Spec.Name,
		Pinned:     b.Spec.Pinned,
		Background: b.Spec.Background,
		ActivePage: b.ActivePage,
	}
	for _, p := range b.Pages {
		out.Pages = append(out.Pages, frameToSnapshot(p, opts))
	}
	return out
}

func frameToSnapshot(f *frame.Frame, opts Options) FrameSnapshot {
	fs := FrameSnapshot{}
	for _, s := range f.Shapes {
		fs.Shapes = append(fs.Shapes, ShapeSnapshot{Id: s.Id, Locked: s.Locked, Kind: s.Shape.Kind, Shape: s.Shape})
	}
	limit := opts.EffectiveHistoryLimit(len(f.Undo))
	if limit > 0 {
		undo := append([]frame.UndoAction(nil), f.Undo...)
		frame.ClampStack(&undo, limit)
		fs.Undo = undo
		redo := append([]frame.UndoAction(nil), f.Redo...)
		frame.ClampStack(&redo, limit)
		fs.Redo = redo
	}
	return fs
}

// ApplySnapshot reconstructs boards from snap, returning them in
// snapshot order along with the id of the board that was active.
func ApplySnapshot(snap Snapshot) (boards []*canvas.BoardState, activeId string) {
	for _, bs := range snap.Boards {
		spec := canvas.BoardSpec{Id: bs.BoardId, Name: bs.Name, Pinned: bs.Pinned, Background: bs.Background}
		var pages []*frame.Frame
		for _, fs := range bs.Pages {
			f := frame.New()
			for _, ss := range fs.Shapes {
				f.Shapes = append(f.Shapes, shapeFromSnapshot(ss))
			}
			f.Undo = append(f.Undo, fs.Undo...)
			f.Redo = append(f.Redo, fs.Redo...)
			pages = append(pages, f)
		}
		boards = append(boards, canvas.FromPages(spec, pages, bs.ActivePage))
	}
	return boards, snap.ActiveBoardId
}

func shapeFromSnapshot(ss ShapeSnapshot) shape.DrawnShape {
	return shape.DrawnShape{Id: ss.Id, Locked: ss.Locked, Shape: ss.Shape}
}
