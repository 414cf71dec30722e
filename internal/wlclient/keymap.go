package wlclient

import "strconv"

// evdevKeyNames maps the Linux evdev scancodes wl_keyboard.key reports
// (input-event-codes.h's KEY_* numbering, stable across distributions)
// to the lowercase key-name vocabulary input.KeyBinding expects. This
// covers every key named in internal/config/keybindings' default
// table; anything outside this set is reported by its decimal code
// so an unusual binding still round-trips through KeyBinding.String.
var evdevKeyNames = map[uint32]string{
	1:  "escape",
	14: "backspace",
	15: "tab",
	28: "enter",
	29: "ctrl", // handled via modifier state, listed for completeness
	42: "shift",
	56: "alt",
	57: "space",
	100: "alt",
	111: "delete",
	102: "home",
	107: "end",
	103: "up",
	108: "down",
	105: "left",
	106: "right",
	104: "pageup",
	109: "pagedown",
	99:  "print",
	127: "menu",
	12:  "-",
	13:  "=",
	26:  "[",
	27:  "]",
	41:  "`",

	2:  "1",
	3:  "2",
	4:  "3",
	5:  "4",
	6:  "5",
	7:  "6",
	8:  "7",
	9:  "8",
	10: "9",
	11: "0",

	16: "q",
	17: "w",
	18: "e",
	19: "r",
	20: "t",
	21: "y",
	22: "u",
	23: "i",
	24: "o",
	25: "p",
	30: "a",
	31: "s",
	32: "d",
	33: "f",
	34: "g",
	35: "h",
	36: "j",
	37: "k",
	38: "l",
	44: "z",
	45: "x",
	46: "c",
	47: "v",
	48: "b",
	49: "n",
	50: "m",

	59: "f1",
	60: "f2",
	61: "f3",
	62: "f4",
	63: "f5",
	64: "f6",
	65: "f7",
	66: "f8",
	67: "f9",
	68: "f10",
	87: "f11",
	88: "f12",
}

// modifierKeyCodes are evdev codes that carry modifier state rather
// than a bindable key of their own.
var modifierKeyCodes = map[uint32]bool{
	29: true, 97: true, // ctrl (left/right)
	42: true, 54: true, // shift (left/right)
	56: true, 100: true, // alt (left/right)
}

// KeyName resolves an evdev keycode to the lowercase name
// input.KeyBinding compares against, falling back to its decimal form
// for codes this table does not name.
func KeyName(evdevCode uint32) string {
	if name, ok := evdevKeyNames[evdevCode]; ok {
		return name
	}
	return strconv.FormatUint(uint64(evdevCode), 10)
}
