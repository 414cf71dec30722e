package wlclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyNameResolvesKnownScancode(t *testing.T) {
	assert.Equal(t, "escape", KeyName(1))
	assert.Equal(t, "a", KeyName(30))
	assert.Equal(t, "f1", KeyName(59))
}

func TestKeyNameFallsBackToDecimalForUnknownScancode(t *testing.T) {
	assert.Equal(t, "512", KeyName(512))
}

func TestModifierKeyCodesCoversBothCtrlShiftAlt(t *testing.T) {
	assert.True(t, modifierKeyCodes[29])
	assert.True(t, modifierKeyCodes[97])
	assert.True(t, modifierKeyCodes[42])
	assert.True(t, modifierKeyCodes[54])
	assert.True(t, modifierKeyCodes[56])
	assert.True(t, modifierKeyCodes[100])
}
