package toolbar

// ContextMenuKind selects which entry set a context menu shows,
// chosen from where the triggering press landed and whether a
// selection exists, per spec.md §4.H.
type ContextMenuKind int

const (
	ContextMenuCanvas ContextMenuKind = iota
	ContextMenuShape
	ContextMenuPages
	ContextMenuBoards
)

// ContextMenuEntry is one selectable row of a context menu.
type ContextMenuEntry struct {
	Label    string
	Event    string
	Disabled bool
}

// ShapeMenuInput carries the facts ShapeMenuEntries needs to disable
// rows appropriately.
type ShapeMenuInput struct {
	HasSelection   bool
	AllText        bool
	AnySelectedTextEditable bool
	AllLocked      bool
}

// ShapeMenuEntries computes the Shape context menu, disabling
// Edit Text for a non-text or locked selection and Delete when every
// selected shape is locked.
func ShapeMenuEntries(in ShapeMenuInput) []ContextMenuEntry {
	return []ContextMenuEntry{
		{Label: "Edit Text", Event: "edit_text", Disabled: !in.AnySelectedTextEditable},
		{Label: "Duplicate", Event: "duplicate", Disabled: !in.HasSelection},
		{Label: "Bring to Front", Event: "move_to_front", Disabled: !in.HasSelection},
		{Label: "Send to Back", Event: "move_to_back", Disabled: !in.HasSelection},
		{Label: "Delete", Event: "delete_selection", Disabled: !in.HasSelection || in.AllLocked},
	}
}

// CanvasMenuEntries computes the Canvas context menu (no selection
// under the press).
func CanvasMenuEntries() []ContextMenuEntry {
	return []ContextMenuEntry{
		{Label: "Paste", Event: "paste_selection"},
		{Label: "Select All", Event: "select_all"},
		{Label: "Clear Canvas", Event: "clear_canvas"},
	}
}

// PagesMenuEntries computes the Pages context menu.
func PagesMenuEntries(canDeleteLast bool) []ContextMenuEntry {
	return []ContextMenuEntry{
		{Label: "New Page", Event: "page_new"},
		{Label: "Duplicate Page", Event: "page_duplicate"},
		{Label: "Delete Page", Event: "page_delete", Disabled: !canDeleteLast},
	}
}

// BoardsMenuEntries computes the Boards context menu.
func BoardsMenuEntries(canDelete bool) []ContextMenuEntry {
	return []ContextMenuEntry{
		{Label: "New Board", Event: "board_new"},
		{Label: "Duplicate Board", Event: "board_duplicate"},
		{Label: "Delete Board", Event: "board_delete", Disabled: !canDelete},
		{Label: "Picker…", Event: "board_picker"},
	}
}

// FocusNext moves keyboard focus to the next enabled entry, wrapping,
// for the arrow/Home/End navigation spec.md §4.H describes.
func FocusNext(entries []ContextMenuEntry, current int, forward bool) int {
	if len(entries) == 0 {
		return -1
	}
	step := 1
	if !forward {
		step = -1
	}
	i := current
	for n := 0; n < len(entries); n++ {
		i = (i + step + len(entries)) % len(entries)
		if !entries[i].Disabled {
			return i
		}
	}
	return current
}
