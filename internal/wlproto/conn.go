package wlproto

import (
	"fmt"

	"github.com/rajveermalviya/go-wayland/wayland/client"
	activation "github.com/rajveermalviya/go-wayland/wayland/staging/xdg-activation-v1"
	pointerconstraints "github.com/rajveermalviya/go-wayland/wayland/unstable/pointer-constraints-v1"
	relativepointer "github.com/rajveermalviya/go-wayland/wayland/unstable/relative-pointer-v1"
	tabletv2 "github.com/rajveermalviya/go-wayland/wayland/unstable/tablet-v2"
	xdgshell "github.com/rajveermalviya/go-wayland/wayland/stable/xdg-shell"
	layershell "github.com/rajveermalviya/go-wayland/wayland/wlr-layer-shell-v1"
	screencopy "github.com/rajveermalviya/go-wayland/wayland/wlr-screencopy-v1"

	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// Conn owns the wl_display connection, the bound globals, and the
// capability set detected during the initial registry round trip —
// the generalized form of the teacher's WaylandGlobals in wayland.go.
type Conn struct {
	Display    *client.Display
	Registry   *client.Registry
	Compositor *client.Compositor
	Shm        *client.Shm
	Seat       *client.Seat
	Output     *client.Output

	LayerShell         *layershell.ShellManager
	XdgWmBase          *xdgshell.WmBase
	XdgActivation      *activation.Activation
	PointerConstraints *pointerconstraints.PointerConstraints
	RelativePointer    *relativepointer.RelativePointerManager
	ScreencopyManager  *screencopy.ScreencopyManager
	TabletManager      *tabletv2.TabletManager

	Caps Capabilities

	globalNames []string
	pendingSync chan struct{}
}

// Connect opens the Wayland connection named by wlDisplay (empty
// string means WAYLAND_DISPLAY), binds the registry, and performs the
// initial sync round trip so every global advertised at startup is
// known before returning.
func Connect(wlDisplay string) (*Conn, error) {
	display, err := client.Connect(wlDisplay)
	if err != nil {
		return nil, wyerr.Wrap(wyerr.Protocol, err, "connect to wayland display")
	}
	c := &Conn{Display: display}

	registry, err := display.GetRegistry()
	if err != nil {
		return nil, wyerr.Wrap(wyerr.Protocol, err, "get_registry")
	}
	c.Registry = registry
	registry.SetGlobalHandler(c.onGlobal)

	if err := c.roundTrip(); err != nil {
		return nil, err
	}
	c.Caps = DetectCapabilities(c.globalNames)
	if !c.Caps.Ready() {
		return nil, wyerr.New(wyerr.Protocol, "compositor missing a required global (compositor/shm/seat/layer-or-xdg-shell)")
	}
	return c, nil
}

func (c *Conn) onGlobal(e client.RegistryGlobalEvent) {
	c.globalNames = append(c.globalNames, e.Interface)
	var err error
	switch e.Interface {
	case interfaceCompositor:
		c.Compositor, err = client.BindRegistryCompositor(c.Registry, e.Name, e.Version)
	case interfaceShm:
		c.Shm, err = client.BindRegistryShm(c.Registry, e.Name, e.Version)
	case interfaceSeat:
		c.Seat, err = client.BindRegistrySeat(c.Registry, e.Name, e.Version)
	case "wl_output":
		c.Output, err = client.BindRegistryOutput(c.Registry, e.Name, e.Version)
	case interfaceLayerShell:
		c.LayerShell, err = layershell.BindRegistryShellManager(c.Registry, e.Name, e.Version)
	case interfaceXdgShell:
		c.XdgWmBase, err = xdgshell.BindRegistryWmBase(c.Registry, e.Name, e.Version)
	case interfaceXdgActivation:
		c.XdgActivation, err = activation.BindRegistryActivation(c.Registry, e.Name, e.Version)
	case interfacePointerConstraints:
		c.PointerConstraints, err = pointerconstraints.BindRegistryPointerConstraints(c.Registry, e.Name, e.Version)
	case interfaceRelativePointer:
		c.RelativePointer, err = relativepointer.BindRegistryRelativePointerManager(c.Registry, e.Name, e.Version)
	case interfaceScreencopy:
		c.ScreencopyManager, err = screencopy.BindRegistryScreencopyManager(c.Registry, e.Name, e.Version)
	case interfaceTabletManager:
		c.TabletManager, err = tabletv2.BindRegistryTabletManager(c.Registry, e.Name, e.Version)
	}
	if err != nil {
		// A bind failure here degrades the capability rather than aborting
		// the connection; Conn.Caps reflects only successfully bound globals.
		c.globalNames = c.globalNames[:len(c.globalNames)-1]
	}
}

// roundTrip performs one wl_display.sync and blocks the current
// goroutine (the caller, at startup, before the cooperative dispatch
// loop begins) until the compositor's done callback fires.
func (c *Conn) roundTrip() error {
	callback, err := c.Display.Sync()
	if err != nil {
		return wyerr.Wrap(wyerr.Protocol, err, "display.sync")
	}
	done := make(chan struct{})
	callback.SetDoneHandler(func(client.CallbackDoneEvent) {
		close(done)
	})
	for {
		select {
		case <-done:
			return nil
		default:
			if err := c.Display.Context().Dispatch(); err != nil {
				return wyerr.Wrap(wyerr.Protocol, err, "dispatch during sync")
			}
		}
	}
}

// DisplayFD exposes the display's underlying file descriptor so the
// main loop can poll it alongside autosave/animation deadlines.
func (c *Conn) DisplayFD() int {
	return c.Display.Context().Fd()
}

func (c *Conn) String() string {
	return fmt.Sprintf("wlproto.Conn{globals=%v}", c.globalNames)
}
