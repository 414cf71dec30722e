package wlproto

import (
	layershell "github.com/rajveermalviya/go-wayland/wayland/wlr-layer-shell-v1"
	"github.com/rajveermalviya/go-wayland/wayland/client"
	xdgshell "github.com/rajveermalviya/go-wayland/wayland/stable/xdg-shell"

	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// Layer picks the layer-shell stacking layer a surface is created on.
// wayscriber only ever uses Overlay (it sits above normal windows and
// the lock screen does not apply), but the type exists so call sites
// read like spec.md's own vocabulary.
type Layer = layershell.ShellLayer

const LayerOverlay = layershell.ShellLayerOverlay

// Surface is one compositor surface, created either on
// zwlr_layer_shell_v1 (preferred) or xdg_shell (fallback), matching
// the degrade-on-missing-global rule from spec.md §5.
type Surface struct {
	conn *Conn

	WlSurface    *client.Surface
	LayerSurface *layershell.LayerSurface
	XdgSurface   *xdgshell.Surface
	XdgToplevel  *xdgshell.Toplevel

	Width, Height int
	configured    chan struct{}
	Closed        bool
}

// CreateOverlaySurface creates a new surface sized w,h named appID,
// using layer-shell when available and falling back to a borderless
// xdg_shell toplevel otherwise.
func (c *Conn) CreateOverlaySurface(appID string, w, h int) (*Surface, error) {
	wlSurface, err := c.Compositor.CreateSurface()
	if err != nil {
		return nil, wyerr.Wrap(wyerr.Protocol, err, "compositor.create_surface")
	}
	s := &Surface{conn: c, WlSurface: wlSurface, Width: w, Height: h, configured: make(chan struct{}, 1)}

	switch {
	case c.Caps.LayerShell && c.LayerShell != nil:
		ls, err := c.LayerShell.GetLayerSurface(wlSurface, nil, layershell.ShellLayerOverlay, appID)
		if err != nil {
			return nil, wyerr.Wrap(wyerr.Protocol, err, "layer_shell.get_layer_surface")
		}
		ls.SetAnchor(layershell.SurfaceAnchorTop | layershell.SurfaceAnchorLeft | layershell.SurfaceAnchorRight | layershell.SurfaceAnchorBottom)
		ls.SetSize(uint32(w), uint32(h))
		ls.SetExclusiveZone(-1)
		ls.SetKeyboardInteractivity(layershell.SurfaceKeyboardInteractivityOnDemand)
		ls.SetListener(&layershell.SurfaceListener{
			Configure: func(ev layershell.SurfaceConfigureEvent) {
				ls.AckConfigure(ev.Serial)
				select {
				case s.configured <- struct{}{}:
				default:
				}
			},
			Closed: func(layershell.SurfaceClosedEvent) { s.Closed = true },
		})
		s.LayerSurface = ls
	case c.Caps.XdgShell && c.XdgWmBase != nil:
		xdgSurface, err := c.XdgWmBase.GetXdgSurface(wlSurface)
		if err != nil {
			return nil, wyerr.Wrap(wyerr.Protocol, err, "xdg_wm_base.get_xdg_surface")
		}
		toplevel, err := xdgSurface.GetToplevel()
		if err != nil {
			return nil, wyerr.Wrap(wyerr.Protocol, err, "xdg_surface.get_toplevel")
		}
		toplevel.SetAppId(appID)
		xdgSurface.SetConfigureHandler(func(ev xdgshell.SurfaceConfigureEvent) {
			xdgSurface.AckConfigure(ev.Serial)
			select {
			case s.configured <- struct{}{}:
			default:
			}
		})
		s.XdgSurface = xdgSurface
		s.XdgToplevel = toplevel
	default:
		return nil, wyerr.New(wyerr.Protocol, "no surface-shell global available")
	}

	wlSurface.Commit()
	return s, nil
}

// WaitConfigured blocks until the compositor's first configure event
// arrives, running dispatch in the meantime.
func (s *Surface) WaitConfigured() error {
	for {
		select {
		case <-s.configured:
			return nil
		default:
			if err := s.conn.Display.Context().Dispatch(); err != nil {
				return wyerr.Wrap(wyerr.Protocol, err, "dispatch while awaiting configure")
			}
		}
	}
}

// Destroy releases the surface and its shell role object.
func (s *Surface) Destroy() {
	if s.LayerSurface != nil {
		s.LayerSurface.Destroy()
	}
	if s.XdgToplevel != nil {
		s.XdgToplevel.Destroy()
	}
	if s.XdgSurface != nil {
		s.XdgSurface.Destroy()
	}
	s.WlSurface.Destroy()
}
