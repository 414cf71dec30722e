package wlclient

import (
	"github.com/rajveermalviya/go-wayland/wayland/client"

	"github.com/wayscriber/wayscriber/internal/geom"
)

// screencopyShmFormat is the pixel format requested for screencopy
// buffers; it matches Capture.FromShmBuffer's BGRA-after-swizzle
// expectation (wl_shm ARGB8888 is little-endian BGRA in memory).
const screencopyShmFormat = client.ShmFormatArgb8888

// Output is one compositor output (monitor), tracked for its
// geometry/mode so screencopy and the zoom view can reason about
// screen-space bounds.
type Output struct {
	Proxy  *client.Output
	Origin geom.Point
	Size   geom.Point
}

// TrackOutput wires geometry/mode listeners onto a freshly bound
// wl_output, keeping Origin/Size current as the compositor reports
// them.
func TrackOutput(proxy *client.Output) *Output {
	o := &Output{Proxy: proxy}
	proxy.SetGeometryHandler(func(ev client.OutputGeometryEvent) {
		o.Origin = geom.Point{X: int(ev.X), Y: int(ev.Y)}
	})
	proxy.SetModeHandler(func(ev client.OutputModeEvent) {
		o.Size = geom.Point{X: int(ev.Width), Y: int(ev.Height)}
	})
	return o
}

// Bounds is the output's geometry as a geom.Rect in global
// compositor-space coordinates.
func (o *Output) Bounds() geom.Rect {
	return geom.Rect{Min: o.Origin, Max: geom.Point{X: o.Origin.X + o.Size.X, Y: o.Origin.Y + o.Size.Y}}
}
