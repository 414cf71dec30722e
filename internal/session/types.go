package session

import (
	"github.com/wayscriber/wayscriber/internal/frame"
	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/shape"
)

// CurrentVersion is the SessionSnapshot schema version this build
// writes; Load accepts older versions as long as it understands them.
const CurrentVersion = 1

// ShapeSnapshot is the JSON-friendly form of shape.DrawnShape.
type ShapeSnapshot struct {
	Id     shape.Id    `json:"id"`
	Locked bool        `json:"locked"`
	Kind   shape.Kind  `json:"kind"`
	Shape  shape.Shape `json:"shape"`
}

// FrameSnapshot is the JSON-friendly form of one frame.Frame page.
type FrameSnapshot struct {
	Shapes []ShapeSnapshot   `json:"shapes"`
	Undo   []frame.UndoAction `json:"undo,omitempty"`
	Redo   []frame.UndoAction `json:"redo,omitempty"`
}

// BoardPagesSnapshot is the JSON-friendly form of one canvas.BoardState.
type BoardPagesSnapshot struct {
	BoardId    string          `json:"board_id"`
	Name       string          `json:"name"`
	Pinned     bool            `json:"pinned"`
	Background geom.Color      `json:"background"`
	Pages      []FrameSnapshot `json:"pages"`
	ActivePage int             `json:"active_page"`
}

// ToolStateSnapshot captures the subset of InputState that should
// survive a save/load round trip: the active tool, its parameters, and
// UI toggles, but never transient interaction state (drags, marquees).
type ToolStateSnapshot struct {
	Tool        string  `json:"tool"`
	Color       geom.Color `json:"color"`
	Thickness   float64 `json:"thickness"`
	FontSize    float64 `json:"font_size"`
	ShowToolbar bool    `json:"show_toolbar"`
	ShowHelp    bool    `json:"show_help"`
}

// Snapshot is the full on-disk session document.
type Snapshot struct {
	Version       int                  `json:"version"`
	ActiveBoardId string               `json:"active_board_id"`
	Boards        []BoardPagesSnapshot `json:"boards"`
	ToolState     *ToolStateSnapshot   `json:"tool_state,omitempty"`
}
