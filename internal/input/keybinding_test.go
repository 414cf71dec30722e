package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyBindingModifiersAnyOrder(t *testing.T) {
	kb, err := ParseKeyBinding("Shift+Ctrl+z")
	require.NoError(t, err)
	assert.True(t, kb.Ctrl)
	assert.True(t, kb.Shift)
	assert.False(t, kb.Alt)
	assert.Equal(t, "z", kb.Key)
}

func TestParseKeyBindingWhitespaceTolerant(t *testing.T) {
	kb, err := ParseKeyBinding(" Ctrl + Shift + Z ")
	require.NoError(t, err)
	assert.True(t, kb.Ctrl)
	assert.True(t, kb.Shift)
	assert.Equal(t, "z", kb.Key)
}

func TestParseKeyBindingLiteralPlus(t *testing.T) {
	kb, err := ParseKeyBinding("Ctrl++")
	require.NoError(t, err)
	assert.True(t, kb.Ctrl)
	assert.Equal(t, "+", kb.Key)
}

func TestParseKeyBindingNoKeyErrors(t *testing.T) {
	_, err := ParseKeyBinding("Ctrl+Shift")
	require.Error(t, err)
}

func TestKeyBindingRoundTripParseDisplay(t *testing.T) {
	kb, err := ParseKeyBinding("Ctrl+Shift+Alt+f")
	require.NoError(t, err)
	reparsed, err := ParseKeyBinding(kb.String())
	require.NoError(t, err)
	assert.Equal(t, kb, reparsed)
}

func TestKeyBindingMatchesCaseInsensitiveKey(t *testing.T) {
	kb, _ := ParseKeyBinding("z")
	assert.True(t, kb.Matches("Z", false, false, false))
}

func TestBindingMapDetectsDuplicates(t *testing.T) {
	m := NewBindingMap()
	require.NoError(t, m.Insert("Ctrl+z", ActionUndo))
	err := m.Insert("Ctrl+z", ActionRedo)
	require.Error(t, err)
}

func TestBindingMapResolve(t *testing.T) {
	m := NewBindingMap()
	require.NoError(t, m.Insert("Ctrl+z", ActionUndo))
	action, ok := m.Resolve("z", true, false, false)
	require.True(t, ok)
	assert.Equal(t, ActionUndo, action)

	_, ok = m.Resolve("z", false, false, false)
	assert.False(t, ok)
}
