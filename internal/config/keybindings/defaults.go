// Package keybindings supplies the default key-binding table, grouped
// into the same categories the original project's defaults/ directory
// used (core, selection, tools, board, ui, colors, capture, zoom,
// presets), and builds the resolved input.BindingMap from them.
package keybindings

import "github.com/wayscriber/wayscriber/internal/input"

// Category is one named group of default bindings. Categories are
// inserted in a fixed order; the bindings inside one category are held
// in a map, so their insertion order is not fixed.
type Category struct {
	Name     string
	Bindings map[input.Action][]string
}

func core() Category {
	return Category{Name: "core", Bindings: map[input.Action][]string{
		input.ActionExit:       {"Escape"},
		input.ActionUndo:       {"Ctrl+z"},
		input.ActionRedo:       {"Ctrl+y", "Ctrl+Shift+z"},
		input.ActionUndoAll:    {"Ctrl+Shift+a"},
		input.ActionRedoAll:    {"Ctrl+Shift+y"},
		input.ActionClearCanvas: {"Ctrl+Delete"},
		input.ActionDuplicate:  {"Ctrl+d"},
		input.ActionCopy:       {"Ctrl+c"},
		input.ActionPasteSelection: {"Ctrl+v"},
		input.ActionSelectAll:  {"Ctrl+a"},
		input.ActionEnterTextMode:       {"t"},
		input.ActionEnterStickyNoteMode: {"n"},
	}}
}

func selection() Category {
	return Category{Name: "selection", Bindings: map[input.Action][]string{
		input.ActionMoveSelectionToFront: {"Ctrl+Shift+Home"},
		input.ActionMoveSelectionToBack:  {"Ctrl+Shift+End"},
		input.ActionNudgeUp:              {"Up"},
		input.ActionNudgeDown:            {"Down"},
		input.ActionNudgeLeft:            {"Left"},
		input.ActionNudgeRight:           {"Right"},
		input.ActionNudgeUpLarge:         {"Shift+Up"},
		input.ActionNudgeDownLarge:       {"Shift+Down"},
		input.ActionDeleteSelection:      {"Delete", "BackSpace"},
	}}
}

func tools() Category {
	return Category{Name: "tools", Bindings: map[input.Action][]string{
		input.ActionSelectSelectionTool: {"s"},
		input.ActionSelectFreehandTool:  {"f"},
		input.ActionSelectLineTool:      {"l"},
		input.ActionSelectRectTool:      {"r"},
		input.ActionSelectEllipseTool:   {"e"},
		input.ActionSelectArrowTool:     {"a"},
		input.ActionSelectEraserTool:    {"x"},
		input.ActionSelectHighlightTool: {"h"},
		input.ActionToggleEraserMode:    {"Ctrl+x"},
		input.ActionIncreaseThickness:   {"]"},
		input.ActionDecreaseThickness:   {"["},
		input.ActionIncreaseFontSize:    {"Ctrl+]"},
		input.ActionDecreaseFontSize:    {"Ctrl+["},
		input.ActionResetArrowLabelCounter: {"Ctrl+0"},
	}}
}

func board() Category {
	b := Category{Name: "board", Bindings: map[input.Action][]string{
		input.ActionToggleWhiteboard:    {"w"},
		input.ActionToggleBlackboard:    {"b"},
		input.ActionReturnToTransparent: {"Ctrl+w"},
		input.ActionBoardNext:           {"Ctrl+Tab"},
		input.ActionBoardPrev:           {"Ctrl+Shift+Tab"},
		input.ActionBoardNew:            {"Ctrl+n"},
		input.ActionBoardDelete:         {"Ctrl+Shift+w"},
		input.ActionBoardPicker:         {"Ctrl+p"},
		input.ActionBoardRestoreDeleted: {"Ctrl+Shift+r"},
		input.ActionBoardDuplicate:      {"Ctrl+Shift+d"},
		input.ActionPagePrev:            {"PageUp"},
		input.ActionPageNext:            {"PageDown"},
		input.ActionPageNew:             {"Ctrl+PageDown"},
		input.ActionPageDuplicate:       {"Ctrl+Shift+PageDown"},
		input.ActionPageDelete:          {"Ctrl+PageUp"},
		input.ActionPageRestoreDeleted:  {"Ctrl+Shift+PageUp"},
	}}
	for n := 1; n <= 9; n++ {
		b.Bindings[input.BoardSlot(n)] = []string{"Alt+" + string(rune('0'+n))}
	}
	b.Bindings[input.ActionBoardSwitchRecent] = []string{"Ctrl+`"}
	return b
}

func ui() Category {
	return Category{Name: "ui", Bindings: map[input.Action][]string{
		input.ActionToggleHelp:           {"F1"},
		input.ActionToggleQuickHelp:      {"Shift+F1"},
		input.ActionToggleStatusBar:      {"F2"},
		input.ActionToggleClickHighlight: {"F3"},
		input.ActionToggleToolbar:        {"F4"},
		input.ActionTogglePresenterMode:  {"F5"},
		input.ActionToggleHighlightTool:  {"F6"},
		input.ActionToggleFill:           {"Ctrl+f"},
		input.ActionToggleSelectionProperties: {"F7"},
		input.ActionOpenContextMenu:      {"Menu"},
		input.ActionToggleCommandPalette: {"Ctrl+Shift+p"},
		input.ActionReplayTour:           {"F12"},
		input.ActionSavePendingToFile:    {"Ctrl+s"},
	}}
}

func colors() Category {
	return Category{Name: "colors", Bindings: map[input.Action][]string{
		input.ActionSetColorRed:    {"1"},
		input.ActionSetColorGreen:  {"2"},
		input.ActionSetColorBlue:   {"3"},
		input.ActionSetColorYellow: {"4"},
		input.ActionSetColorOrange: {"5"},
		input.ActionSetColorPink:   {"6"},
		input.ActionSetColorWhite:  {"7"},
		input.ActionSetColorBlack:  {"8"},
	}}
}

func capture() Category {
	return Category{Name: "capture", Bindings: map[input.Action][]string{
		input.ActionCaptureFullScreen:         {"Print"},
		input.ActionCaptureActiveWindow:       {"Alt+Print"},
		input.ActionCaptureSelection:          {"Shift+Print"},
		input.ActionCaptureClipboardFull:      {"Ctrl+Print"},
		input.ActionCaptureFileFull:           {"Ctrl+Shift+Print"},
		input.ActionCaptureClipboardSelection: {"Ctrl+Alt+Print"},
		input.ActionCaptureFileSelection:      {"Ctrl+Alt+Shift+Print"},
		input.ActionOpenCaptureFolder:         {"Ctrl+Shift+o"},
		input.ActionToggleFrozenMode:          {"Ctrl+Shift+f"},
	}}
}

func zoom() Category {
	return Category{Name: "zoom", Bindings: map[input.Action][]string{
		input.ActionZoomIn:             {"Ctrl+="},
		input.ActionZoomOut:            {"Ctrl+-"},
		input.ActionResetZoom:          {"Ctrl+Shift+0"},
		input.ActionToggleZoomLock:     {"Ctrl+l"},
		input.ActionRefreshZoomCapture: {"Ctrl+r"},
	}}
}

func presets() Category {
	c := Category{Name: "presets", Bindings: map[input.Action][]string{}}
	for n := 1; n <= 5; n++ {
		key := string(rune('0' + n))
		c.Bindings[input.Action("apply_preset_"+key)] = []string{"Ctrl+Alt+" + key}
		c.Bindings[input.Action("save_preset_"+key)] = []string{"Ctrl+Alt+Shift+" + key}
		c.Bindings[input.Action("clear_preset_"+key)] = []string{"Ctrl+Alt+Shift+Delete+" + key}
	}
	return c
}

// Categories returns every default category in the fixed build order
// the original project's build_action_map used.
func Categories() []Category {
	return []Category{core(), selection(), tools(), board(), ui(), colors(), capture(), zoom(), presets()}
}

// BuildActionMap inserts every default category's bindings, plus any
// user overrides from cfg (raw "binding string" -> action name,
// matched by Action value), into a fresh input.BindingMap.
func BuildActionMap(overrides map[string]string) (*input.BindingMap, error) {
	m := input.NewBindingMap()
	for _, cat := range Categories() {
		for action, bindings := range cat.Bindings {
			if err := m.InsertAll(bindings, action); err != nil {
				return nil, err
			}
		}
	}
	for bindingStr, actionName := range overrides {
		if err := m.Insert(bindingStr, input.Action(actionName)); err != nil {
			return nil, err
		}
	}
	return m, nil
}
