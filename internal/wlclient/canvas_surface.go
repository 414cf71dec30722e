package wlclient

import (
	"image"
	"os"

	"github.com/rajveermalviya/go-wayland/wayland/client"

	"github.com/wayscriber/wayscriber/internal/wlproto"
	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// CanvasSurface owns the shm pool backing the overlay's single
// double-free-framebuffer: wayscriber redraws the whole surface every
// frame (it is an annotation overlay, not a video sink), so one
// buffer reused in place is enough — there is no damage-tracked
// multi-buffer swap chain to manage.
type CanvasSurface struct {
	conn    *wlproto.Conn
	Surface *wlproto.Surface

	file   *os.File
	pool   *client.ShmPool
	buffer *client.Buffer
	pix    []byte

	Width, Height, Stride int
}

// NewCanvasSurface creates the overlay surface and its backing shm
// pool sized width x height, BGRA8888 to match raster.Context's
// internal image.RGBA-then-swizzle convention used for captures, kept
// consistent here so the same raster.Context can paint directly into
// the mmap'd pool without per-pixel conversion at submit time.
func NewCanvasSurface(conn *wlproto.Conn, appID string, width, height int) (*CanvasSurface, error) {
	surface, err := conn.CreateOverlaySurface(appID, width, height)
	if err != nil {
		return nil, err
	}
	stride := width * 4
	size := stride * height

	f, err := createShmTempFile(int64(size))
	if err != nil {
		surface.Destroy()
		return nil, err
	}
	pix, err := mmapShmFile(f, size)
	if err != nil {
		f.Close()
		surface.Destroy()
		return nil, err
	}
	pool, err := conn.Shm.CreatePool(int(f.Fd()), int32(size))
	if err != nil {
		munmapShmFile(pix)
		f.Close()
		surface.Destroy()
		return nil, wyerr.Wrap(wyerr.Protocol, err, "wl_shm.create_pool")
	}
	buf, err := pool.CreateBuffer(0, int32(width), int32(height), int32(stride), client.ShmFormatArgb8888)
	if err != nil {
		pool.Destroy()
		munmapShmFile(pix)
		f.Close()
		surface.Destroy()
		return nil, wyerr.Wrap(wyerr.Protocol, err, "wl_shm_pool.create_buffer")
	}

	cs := &CanvasSurface{conn: conn, Surface: surface, file: f, pool: pool, buffer: buf, pix: pix, Width: width, Height: height, Stride: stride}
	return cs, nil
}

// PixBuffer exposes the mmap'd buffer as an *image.RGBA sharing the
// same backing array, so a raster.Context can paint straight into
// shared memory.
func (c *CanvasSurface) PixBuffer() *image.RGBA {
	return &image.RGBA{Pix: c.pix, Stride: c.Stride, Rect: image.Rect(0, 0, c.Width, c.Height)}
}

// Submit attaches the buffer and commits, optionally damaging only
// the given region (a zero Rect damages the whole surface).
func (c *CanvasSurface) Submit(damage image.Rectangle) error {
	if err := c.Surface.WlSurface.Attach(c.buffer, 0, 0); err != nil {
		return wyerr.Wrap(wyerr.Protocol, err, "surface.attach")
	}
	if damage.Empty() {
		damage = image.Rect(0, 0, c.Width, c.Height)
	}
	if err := c.Surface.WlSurface.DamageBuffer(int32(damage.Min.X), int32(damage.Min.Y), int32(damage.Dx()), int32(damage.Dy())); err != nil {
		return wyerr.Wrap(wyerr.Protocol, err, "surface.damage_buffer")
	}
	if err := c.Surface.WlSurface.Commit(); err != nil {
		return wyerr.Wrap(wyerr.Protocol, err, "surface.commit")
	}
	return nil
}

// Close destroys the buffer and pool and releases the shm mapping.
func (c *CanvasSurface) Close() error {
	c.buffer.Destroy()
	c.pool.Destroy()
	err := munmapShmFile(c.pix)
	c.file.Close()
	c.Surface.Destroy()
	return err
}
