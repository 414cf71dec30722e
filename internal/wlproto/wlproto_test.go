package wlproto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCapabilitiesRecognizesEveryGlobal(t *testing.T) {
	names := []string{
		"wl_compositor", "wl_shm", "wl_seat", "zwlr_layer_shell_v1", "xdg_wm_base",
		"xdg_activation_v1", "zwp_pointer_constraints_v1", "zwp_relative_pointer_manager_v1",
		"zwlr_screencopy_manager_v1", "zwp_tablet_manager_v2", "wl_output", "wl_data_device_manager",
	}
	c := DetectCapabilities(names)
	assert.True(t, c.Compositor)
	assert.True(t, c.Shm)
	assert.True(t, c.Seat)
	assert.True(t, c.LayerShell)
	assert.True(t, c.XdgShell)
	assert.True(t, c.XdgActivation)
	assert.True(t, c.PointerConstraints)
	assert.True(t, c.RelativePointer)
	assert.True(t, c.Screencopy)
	assert.True(t, c.TabletManager)
}

func TestCapabilitiesReadyRequiresCoreGlobalsAndOneShell(t *testing.T) {
	assert.False(t, Capabilities{}.Ready())

	core := Capabilities{Compositor: true, Shm: true, Seat: true}
	assert.False(t, core.Ready(), "neither layer-shell nor xdg-shell present")

	withLayer := core
	withLayer.LayerShell = true
	assert.True(t, withLayer.Ready())

	withXdg := core
	withXdg.XdgShell = true
	assert.True(t, withXdg.Ready())
}

func TestDetectCapabilitiesIgnoresUnknownGlobals(t *testing.T) {
	c := DetectCapabilities([]string{"wl_compositor", "some_future_protocol_v7"})
	assert.True(t, c.Compositor)
	assert.False(t, c.Shm)
}
