package capture

import (
	"context"
	"net/url"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/rymdport/portal/screenshot"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// PortalCaptureResult is what a polled portal request resolves to:
// either a successfully loaded FrozenImage, or a failure string —
// mirroring spec.md §4.G's Result<(scale?, FrozenImage), String>
// channel shape.
type PortalCaptureResult struct {
	Image FrozenImage
	Scale float64
	Err   error
}

// PortalCaptureRx is the polled channel the render/main loop drains
// each iteration while a portal request is in flight.
type PortalCaptureRx <-chan PortalCaptureResult

// RequestPortalScreenshot asks org.freedesktop.portal.Screenshot for a
// non-interactive screenshot, awaits the URI response over the
// session bus, downloads/crops it to bounds, and delivers the result
// on the returned channel without blocking the caller.
func RequestPortalScreenshot(ctx context.Context, bounds geom.Rect) PortalCaptureRx {
	out := make(chan PortalCaptureResult, 1)
	go func() {
		defer close(out)
		conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
		if err != nil {
			out <- PortalCaptureResult{Err: wyerr.Wrap(wyerr.Protocol, err, "connect session bus")}
			return
		}
		defer conn.Close()

		uri, err := screenshot.Take(conn, "", false)
		if err != nil {
			out <- PortalCaptureResult{Err: wyerr.Wrap(wyerr.Protocol, err, "portal screenshot request")}
			return
		}
		path := uri
		if u, err := url.Parse(uri); err == nil && u.Scheme == "file" {
			path = u.Path
		}
		path = strings.TrimPrefix(path, "file://")

		img, err := FromPNGFile(path, bounds)
		if err != nil {
			out <- PortalCaptureResult{Err: err}
			return
		}
		out <- PortalCaptureResult{Image: img, Scale: 1.0}
	}()
	return out
}
