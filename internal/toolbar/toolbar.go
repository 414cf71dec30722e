// Package toolbar computes the layout and hit-regions for the
// floating toolbar panels, generalized from the teacher's Menu[T]
// row-layout-and-hit-test code in menu.go to the toolbar/side-panel
// layout spec.md §4.H describes.
package toolbar

import (
	"image"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
)

// LayoutMode selects how much chrome a panel shows.
type LayoutMode int

const (
	LayoutSimple LayoutMode = iota
	LayoutRegular
	LayoutAdvanced
)

// Panel identifies which floating panel a snapshot/layout describes.
type Panel int

const (
	PanelTop Panel = iota
	PanelSide
)

// ToolbarSnapshot carries every field layout and hit-testing need,
// derived once per frame from input.State so the layout code never
// reads mutable state directly.
type ToolbarSnapshot struct {
	Tool          input.Tool
	Color         geom.Color
	Thickness     float64
	FontSize      float64
	Mode          LayoutMode
	DrawerTab     int
	UndoDepth     int
	RedoDepth     int
	BindingHints  map[input.Action]string
	SideVisible   bool
	TopVisible    bool
	SideDragging  bool
	TopOffset     geom.Point
	SideOffset    geom.Point
}

// Row is one horizontal (top panel) or vertical (side panel) strip of
// items, the toolbar analogue of one menu.Item row.
type Row struct {
	Action input.Action
	Tool   input.Tool
	Label  string
	Icon   image.Image
	Width  int
	Height int
}

// toolRowSpec names the tools the top panel offers, in display order.
var toolRowSpec = []struct {
	tool   input.Tool
	action input.Action
	label  string
}{
	{input.ToolSelection, input.ActionSelectSelectionTool, "select"},
	{input.ToolFreehand, input.ActionSelectFreehandTool, "freehand"},
	{input.ToolLine, input.ActionSelectLineTool, "line"},
	{input.ToolRect, input.ActionSelectRectTool, "rect"},
	{input.ToolEllipse, input.ActionSelectEllipseTool, "ellipse"},
	{input.ToolArrow, input.ActionSelectArrowTool, "arrow"},
	{input.ToolHighlight, input.ActionSelectHighlightTool, "highlight"},
	{input.ToolEraser, input.ActionSelectEraserTool, "eraser"},
	{input.ToolText, input.ActionEnterTextMode, "text"},
	{input.ToolStickyNote, input.ActionEnterStickyNoteMode, "sticky note"},
}

// BuildToolRows lays out one row per drawing tool, its icon
// pre-rasterized and scaled to mode's icon size — the generalized
// form of menu.go's makeItem building one Item per config-file entry
// with its icon already resized and cached.
func BuildToolRows(snap ToolbarSnapshot) []Row {
	size := IconSize(snap.Mode)
	rows := make([]Row, 0, len(toolRowSpec))
	for _, spec := range toolRowSpec {
		col := geom.Color{R: 1, G: 1, B: 1, A: 1}
		if spec.tool == snap.Tool {
			col = snap.Color
		}
		rows = append(rows, Row{
			Action: spec.action,
			Tool:   spec.tool,
			Label:  spec.label,
			Icon:   ToolIcon(spec.tool, size, col),
			Width:  size + paddingX*2,
			Height: size + paddingY*2,
		})
	}
	return rows
}

// Layout is the computed panel geometry for one frame: total size,
// the visible row range, and whether the panel overflows and needs
// scroll arrows — generalized from menu.go's show()/visibleItems().
type Layout struct {
	Panel       Panel
	Width       int
	Height      int
	Rows        []Row
	FirstVisible int
	Overflowing bool
}

const (
	borderSize  = 1
	paddingX    = 8
	paddingY    = 6
	scrollArrow = 16
)

// ComputeLayout lays rows out top-to-bottom for either panel, applying
// the same overflow/scroll
// logic menu.go's show() used: once accumulated height exceeds
// maxExtent, reserve space for both scroll arrows and stop accepting
// further rows into the visible set.
func ComputeLayout(panel Panel, rows []Row, firstVisible int, maxExtent int) Layout {
	l := Layout{Panel: panel, Rows: rows, FirstVisible: firstVisible}
	l.Width = borderSize*2 + 96
	l.Height = borderSize * 2
	for _, r := range rows {
		if r.Width > l.Width {
			l.Width = r.Width
		}
		l.Height += r.Height
	}
	if l.Height <= maxExtent {
		return l
	}

	l.Overflowing = true
	l.Height = (scrollArrow+paddingY*2+borderSize)*2
	last := len(rows)
	for i := firstVisible; i < len(rows); i++ {
		if l.Height+rows[i].Height > maxExtent {
			last = i
			break
		}
		if rows[i].Width > l.Width {
			l.Width = rows[i].Width
		}
		l.Height += rows[i].Height
	}
	l.Rows = rows[firstVisible:last]
	return l
}

// RowAt returns the index (within the full rows slice) of the row
// whose vertical extent contains y, or -1 — the toolbar analogue of
// menu.go's getitem, used to resolve a pointer position to a hit row.
func RowAt(l Layout, fullRows []Row, y int) int {
	cursor := borderSize
	if l.Overflowing {
		cursor += scrollArrow + paddingY*2
	}
	for i := l.FirstVisible; i < l.FirstVisible+len(l.Rows); i++ {
		h := fullRows[i].Height
		if y >= cursor && y < cursor+h {
			return i
		}
		cursor += h
	}
	return -1
}
