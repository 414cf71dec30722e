package xdgpaths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeIdentifier(t *testing.T) {
	assert.Equal(t, "default", SanitizeIdentifier(""))
	assert.Equal(t, "wayland_1", SanitizeIdentifier("wayland-1"))
	assert.Equal(t, "HDMI_A_1", SanitizeIdentifier("HDMI-A-1"))
}

func TestResolveDisplayIdOverride(t *testing.T) {
	assert.Equal(t, "wayland_0", ResolveDisplayId("wayland-0"))
}

func TestResolveDisplayIdFallback(t *testing.T) {
	t.Setenv("WAYLAND_DISPLAY", "")
	assert.Equal(t, "default", ResolveDisplayId(""))
}
