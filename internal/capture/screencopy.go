package capture

import (
	"context"

	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// ScreencopySource abstracts zwlr_screencopy_manager_v1's
// capture_output/copy/ready-or-failed exchange so this package does
// not need to know about wlclient's connection internals. wlclient
// implements this by allocating a matching shm buffer sized from
// BufferSpec, copying into it, and resolving once the compositor's
// ready (or failed) event arrives.
type ScreencopySource interface {
	// Supported reports whether zwlr_screencopy_manager_v1 was
	// advertised by the compositor.
	Supported() bool
	// CaptureOutput performs one capture_output + copy round trip and
	// returns the populated shm buffer once the compositor signals
	// ready, or an error on failed.
	CaptureOutput(ctx context.Context, overlayCursor bool) (BufferSpec, []byte, error)
}

// BufferSpec mirrors the dimensions/format screencopy's buffer event
// reports before the client allocates its shm pool.
type BufferSpec struct {
	Width  int
	Height int
	Stride int
}

// CaptureViaScreencopy runs the screencopy acquisition path, preferred
// whenever the compositor advertises the global, per spec.md §4.G.
func CaptureViaScreencopy(ctx context.Context, src ScreencopySource) (FrozenImage, error) {
	if !src.Supported() {
		return FrozenImage{}, wyerr.New(wyerr.Protocol, "zwlr_screencopy_manager_v1 not advertised")
	}
	spec, buf, err := src.CaptureOutput(ctx, false)
	if err != nil {
		return FrozenImage{}, wyerr.Wrap(wyerr.Protocol, err, "screencopy capture_output")
	}
	return FromShmBuffer(spec.Width, spec.Height, spec.Stride, buf), nil
}
