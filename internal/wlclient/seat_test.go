package wlclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedToFloatConvertsWlFixedScale(t *testing.T) {
	assert.Equal(t, 1.0, fixedToFloat(256))
	assert.Equal(t, 0.5, fixedToFloat(128))
}

func TestPrintableRuneHandlesLettersDigitsAndSpace(t *testing.T) {
	r, ok := printableRune("a")
	assert.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = printableRune("space")
	assert.True(t, ok)
	assert.Equal(t, ' ', r)

	_, ok = printableRune("escape")
	assert.False(t, ok)
}

func TestNewSeatStateBuffersAllChannels(t *testing.T) {
	s := NewSeatState(nil)
	assert.NotNil(t, s.Actions)
	assert.NotNil(t, s.PointerMotion)
	assert.NotNil(t, s.PointerButton)
	assert.NotNil(t, s.TextInput)
}
