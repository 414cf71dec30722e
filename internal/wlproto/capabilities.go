// Package wlproto binds the Wayland compositor globals
// wayscriber needs, in the teacher's own constructor-and-handler-struct
// idiom (NewXxx(handlers), On<Event> callback fields, a Registrar
// helper, sync-via-done-channel), rebuilt on the real
// github.com/rajveermalviya/go-wayland/wayland dependency rather than
// the teacher's own incomplete proto package.
package wlproto

// Capabilities records which optional compositor globals were
// advertised, so the UI can adapt per spec.md §4.I (frozen mode
// disabled without screencopy, drag stabilization degraded without
// pointer-lock, etc).
type Capabilities struct {
	Compositor         bool
	Shm                bool
	Seat               bool
	LayerShell         bool
	XdgShell           bool
	XdgActivation      bool
	PointerConstraints bool
	RelativePointer    bool
	Screencopy         bool
	TabletManager      bool
}

// Ready reports whether the mandatory globals (compositor, shm, seat,
// and either layer-shell or xdg-shell) are all present.
func (c Capabilities) Ready() bool {
	return c.Compositor && c.Shm && c.Seat && (c.LayerShell || c.XdgShell)
}

// interfaceNames are the wl_registry global interface strings this
// client recognizes, matched against each advertised global in order
// to build a Capabilities set.
const (
	interfaceCompositor         = "wl_compositor"
	interfaceShm                = "wl_shm"
	interfaceSeat               = "wl_seat"
	interfaceLayerShell         = "zwlr_layer_shell_v1"
	interfaceXdgShell           = "xdg_wm_base"
	interfaceXdgActivation      = "xdg_activation_v1"
	interfacePointerConstraints = "zwp_pointer_constraints_v1"
	interfaceRelativePointer    = "zwp_relative_pointer_manager_v1"
	interfaceScreencopy         = "zwlr_screencopy_manager_v1"
	interfaceTabletManager      = "zwp_tablet_manager_v2"
)

// DetectCapabilities folds a stream of advertised registry global
// interface names (as delivered one-by-one by wl_registry.global
// events) into a Capabilities set.
func DetectCapabilities(names []string) Capabilities {
	var c Capabilities
	for _, n := range names {
		switch n {
		case interfaceCompositor:
			c.Compositor = true
		case interfaceShm:
			c.Shm = true
		case interfaceSeat:
			c.Seat = true
		case interfaceLayerShell:
			c.LayerShell = true
		case interfaceXdgShell:
			c.XdgShell = true
		case interfaceXdgActivation:
			c.XdgActivation = true
		case interfacePointerConstraints:
			c.PointerConstraints = true
		case interfaceRelativePointer:
			c.RelativePointer = true
		case interfaceScreencopy:
			c.Screencopy = true
		case interfaceTabletManager:
			c.TabletManager = true
		}
	}
	return c
}
