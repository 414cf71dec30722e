package input

// Action names every keybindable command Wayscriber recognizes.
// Grounded on the original project's action catalogue, carried over as
// a flat string-backed set rather than a derive-heavy enum.
type Action string

const (
	ActionExit Action = "exit"

	ActionEnterTextMode       Action = "enter_text_mode"
	ActionEnterStickyNoteMode Action = "enter_sticky_note_mode"
	ActionClearCanvas         Action = "clear_canvas"
	ActionUndo                Action = "undo"
	ActionRedo                Action = "redo"
	ActionUndoAll             Action = "undo_all"
	ActionRedoAll             Action = "redo_all"
	ActionUndoAllDelayed      Action = "undo_all_delayed"
	ActionRedoAllDelayed      Action = "redo_all_delayed"
	ActionDuplicate           Action = "duplicate"
	ActionCopy                Action = "copy"
	ActionPasteSelection      Action = "paste_selection"
	ActionSelectAll           Action = "select_all"
	ActionMoveSelectionToFront Action = "move_selection_to_front"
	ActionMoveSelectionToBack  Action = "move_selection_to_back"
	ActionNudgeUp             Action = "nudge_up"
	ActionNudgeDown           Action = "nudge_down"
	ActionNudgeLeft           Action = "nudge_left"
	ActionNudgeRight          Action = "nudge_right"
	ActionNudgeUpLarge        Action = "nudge_up_large"
	ActionNudgeDownLarge      Action = "nudge_down_large"
	ActionDeleteSelection     Action = "delete_selection"

	ActionIncreaseThickness Action = "increase_thickness"
	ActionDecreaseThickness Action = "decrease_thickness"

	ActionSelectSelectionTool Action = "select_selection_tool"
	ActionSelectFreehandTool  Action = "select_freehand_tool"
	ActionSelectLineTool      Action = "select_line_tool"
	ActionSelectRectTool      Action = "select_rect_tool"
	ActionSelectEllipseTool   Action = "select_ellipse_tool"
	ActionSelectArrowTool     Action = "select_arrow_tool"
	ActionSelectEraserTool    Action = "select_eraser_tool"
	ActionSelectHighlightTool Action = "select_highlight_tool"
	ActionToggleEraserMode    Action = "toggle_eraser_mode"

	ActionIncreaseFontSize     Action = "increase_font_size"
	ActionDecreaseFontSize     Action = "decrease_font_size"
	ActionResetArrowLabelCounter Action = "reset_arrow_label_counter"

	ActionToggleWhiteboard      Action = "toggle_whiteboard"
	ActionToggleBlackboard      Action = "toggle_blackboard"
	ActionReturnToTransparent   Action = "return_to_transparent"

	ActionBoardNext           Action = "board_next"
	ActionBoardPrev           Action = "board_prev"
	ActionBoardNew            Action = "board_new"
	ActionBoardDelete         Action = "board_delete"
	ActionBoardPicker         Action = "board_picker"
	ActionBoardRestoreDeleted Action = "board_restore_deleted"
	ActionBoardDuplicate      Action = "board_duplicate"
	ActionBoardSwitchRecent   Action = "board_switch_recent"

	ActionPagePrev            Action = "page_prev"
	ActionPageNext            Action = "page_next"
	ActionPageNew             Action = "page_new"
	ActionPageDuplicate       Action = "page_duplicate"
	ActionPageDelete          Action = "page_delete"
	ActionPageRestoreDeleted  Action = "page_restore_deleted"

	ActionToggleHelp              Action = "toggle_help"
	ActionToggleQuickHelp          Action = "toggle_quick_help"
	ActionToggleStatusBar         Action = "toggle_status_bar"
	ActionToggleClickHighlight    Action = "toggle_click_highlight"
	ActionToggleToolbar           Action = "toggle_toolbar"
	ActionTogglePresenterMode     Action = "toggle_presenter_mode"
	ActionToggleHighlightTool     Action = "toggle_highlight_tool"
	ActionToggleFill              Action = "toggle_fill"
	ActionToggleSelectionProperties Action = "toggle_selection_properties"
	ActionOpenContextMenu         Action = "open_context_menu"
	ActionOpenConfigurator        Action = "open_configurator"

	ActionSetColorRed    Action = "set_color_red"
	ActionSetColorGreen  Action = "set_color_green"
	ActionSetColorBlue   Action = "set_color_blue"
	ActionSetColorYellow Action = "set_color_yellow"
	ActionSetColorOrange Action = "set_color_orange"
	ActionSetColorPink   Action = "set_color_pink"
	ActionSetColorWhite  Action = "set_color_white"
	ActionSetColorBlack  Action = "set_color_black"

	ActionCaptureFullScreen       Action = "capture_full_screen"
	ActionCaptureActiveWindow     Action = "capture_active_window"
	ActionCaptureSelection        Action = "capture_selection"
	ActionCaptureClipboardFull    Action = "capture_clipboard_full"
	ActionCaptureFileFull         Action = "capture_file_full"
	ActionCaptureClipboardSelection Action = "capture_clipboard_selection"
	ActionCaptureFileSelection    Action = "capture_file_selection"
	ActionCaptureClipboardRegion  Action = "capture_clipboard_region"
	ActionCaptureFileRegion       Action = "capture_file_region"
	ActionOpenCaptureFolder       Action = "open_capture_folder"
	ActionToggleFrozenMode        Action = "toggle_frozen_mode"

	ActionZoomIn              Action = "zoom_in"
	ActionZoomOut             Action = "zoom_out"
	ActionResetZoom           Action = "reset_zoom"
	ActionToggleZoomLock      Action = "toggle_zoom_lock"
	ActionRefreshZoomCapture  Action = "refresh_zoom_capture"

	ActionApplyPreset1 Action = "apply_preset_1"
	ActionApplyPreset2 Action = "apply_preset_2"
	ActionApplyPreset3 Action = "apply_preset_3"
	ActionApplyPreset4 Action = "apply_preset_4"
	ActionApplyPreset5 Action = "apply_preset_5"
	ActionSavePreset1  Action = "save_preset_1"
	ActionSavePreset2  Action = "save_preset_2"
	ActionSavePreset3  Action = "save_preset_3"
	ActionSavePreset4  Action = "save_preset_4"
	ActionSavePreset5  Action = "save_preset_5"
	ActionClearPreset1 Action = "clear_preset_1"
	ActionClearPreset2 Action = "clear_preset_2"
	ActionClearPreset3 Action = "clear_preset_3"
	ActionClearPreset4 Action = "clear_preset_4"
	ActionClearPreset5 Action = "clear_preset_5"

	ActionToggleCommandPalette Action = "toggle_command_palette"
	ActionReplayTour           Action = "replay_tour"
	ActionSavePendingToFile    Action = "save_pending_to_file"
)

// BoardSlot returns the Board1..Board9 action for the given 1-based
// slot number.
func BoardSlot(n int) Action {
	switch n {
	case 1, 2, 3, 4, 5, 6, 7, 8, 9:
		return Action("board_" + string(rune('0'+n)))
	default:
		return ""
	}
}
