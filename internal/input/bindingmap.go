package input

import (
	"fmt"
	"strings"
)

// BindingMap resolves a KeyBinding to the Action it triggers, and
// tracks, per Action, the ordered list of bindings assigned to it (for
// display in the help overlay).
type BindingMap struct {
	byBinding map[KeyBinding]Action
	byAction  map[Action][]KeyBinding
}

// NewBindingMap returns an empty BindingMap.
func NewBindingMap() *BindingMap {
	return &BindingMap{byBinding: make(map[KeyBinding]Action), byAction: make(map[Action][]KeyBinding)}
}

// Insert parses bindingStr and assigns it to action, returning an error
// if the same binding is already assigned to a different action.
func (m *BindingMap) Insert(bindingStr string, action Action) error {
	kb, err := ParseKeyBinding(bindingStr)
	if err != nil {
		return err
	}
	if existing, ok := m.byBinding[kb]; ok && existing != action {
		return fmt.Errorf("duplicate keybinding %q assigned to both %s and %s", kb.String(), existing, action)
	}
	m.byBinding[kb] = action
	m.byAction[action] = append(m.byAction[action], kb)
	return nil
}

// InsertAll inserts every binding string in bindings for action.
func (m *BindingMap) InsertAll(bindings []string, action Action) error {
	for _, b := range bindings {
		if err := m.Insert(b, action); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the Action bound to the given key press and
// modifiers, and whether a binding matched.
func (m *BindingMap) Resolve(key string, ctrl, shift, alt bool) (Action, bool) {
	kb := KeyBinding{Key: strings.ToLower(key), Ctrl: ctrl, Shift: shift, Alt: alt}
	action, ok := m.byBinding[kb]
	return action, ok
}

// BindingsFor returns the bindings assigned to action, in insertion
// order.
func (m *BindingMap) BindingsFor(action Action) []KeyBinding {
	return m.byAction[action]
}
