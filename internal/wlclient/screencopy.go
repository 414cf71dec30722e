package wlclient

import (
	"context"

	screencopy "github.com/rajveermalviya/go-wayland/wayland/wlr-screencopy-v1"

	"github.com/wayscriber/wayscriber/internal/capture"
	"github.com/wayscriber/wayscriber/internal/wlproto"
	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// Screencopy implements capture.ScreencopySource on top of
// zwlr_screencopy_manager_v1, the preferred acquisition path from
// spec.md §4.G. Each CaptureOutput call allocates its own shm pool
// sized from the compositor's buffer event and tears it down once the
// pixels are copied out, since captures are infrequent compared to
// the per-frame CanvasSurface buffer.
type Screencopy struct {
	conn   *wlproto.Conn
	output *Output
}

// NewScreencopy binds Screencopy to the connection's already-resolved
// screencopy manager and the output to capture from.
func NewScreencopy(conn *wlproto.Conn, output *Output) *Screencopy {
	return &Screencopy{conn: conn, output: output}
}

func (s *Screencopy) Supported() bool {
	return s.conn.Caps.Screencopy && s.conn.ScreencopyManager != nil
}

func (s *Screencopy) CaptureOutput(ctx context.Context, overlayCursor bool) (capture.BufferSpec, []byte, error) {
	if !s.Supported() {
		return capture.BufferSpec{}, nil, wyerr.New(wyerr.Protocol, "zwlr_screencopy_manager_v1 not bound")
	}

	frame, err := s.conn.ScreencopyManager.CaptureOutput(boolToInt32(overlayCursor), s.output.Proxy)
	if err != nil {
		return capture.BufferSpec{}, nil, wyerr.Wrap(wyerr.Protocol, err, "screencopy_manager.capture_output")
	}
	defer frame.Destroy()

	type bufferInfo struct{ width, height, stride int }
	bufferCh := make(chan bufferInfo, 1)
	readyCh := make(chan struct{}, 1)
	failedCh := make(chan struct{}, 1)

	frame.SetBufferHandler(func(ev screencopy.FrameBufferEvent) {
		select {
		case bufferCh <- bufferInfo{width: int(ev.Width), height: int(ev.Height), stride: int(ev.Stride)}:
		default:
		}
	})
	frame.SetReadyHandler(func(screencopy.FrameReadyEvent) {
		select {
		case readyCh <- struct{}{}:
		default:
		}
	})
	frame.SetFailedHandler(func(screencopy.FrameFailedEvent) {
		select {
		case failedCh <- struct{}{}:
		default:
		}
	})

	var spec capture.BufferSpec
	select {
	case b := <-bufferCh:
		spec = capture.BufferSpec{Width: b.width, Height: b.height, Stride: b.stride}
	case <-failedCh:
		return capture.BufferSpec{}, nil, wyerr.New(wyerr.Protocol, "screencopy frame failed before buffer event")
	case <-ctx.Done():
		return capture.BufferSpec{}, nil, ctx.Err()
	}

	size := spec.Stride * spec.Height
	f, err := createShmTempFile(int64(size))
	if err != nil {
		return capture.BufferSpec{}, nil, err
	}
	defer f.Close()
	pix, err := mmapShmFile(f, size)
	if err != nil {
		return capture.BufferSpec{}, nil, err
	}
	defer munmapShmFile(pix)

	pool, err := s.conn.Shm.CreatePool(int(f.Fd()), int32(size))
	if err != nil {
		return capture.BufferSpec{}, nil, wyerr.Wrap(wyerr.Protocol, err, "wl_shm.create_pool")
	}
	defer pool.Destroy()
	buf, err := pool.CreateBuffer(0, int32(spec.Width), int32(spec.Height), int32(spec.Stride), screencopyShmFormat)
	if err != nil {
		return capture.BufferSpec{}, nil, wyerr.Wrap(wyerr.Protocol, err, "wl_shm_pool.create_buffer")
	}
	defer buf.Destroy()

	if err := frame.Copy(buf); err != nil {
		return capture.BufferSpec{}, nil, wyerr.Wrap(wyerr.Protocol, err, "screencopy_frame.copy")
	}

	select {
	case <-readyCh:
	case <-failedCh:
		return capture.BufferSpec{}, nil, wyerr.New(wyerr.Protocol, "screencopy frame failed during copy")
	case <-ctx.Done():
		return capture.BufferSpec{}, nil, ctx.Err()
	}

	out := make([]byte, size)
	copy(out, pix)
	return spec, out, nil
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
