// Package capture implements the frozen-background and zoom pipeline:
// acquiring a pixel snapshot of the active output via wlr-screencopy or
// the XDG desktop portal, buffering it as a FrozenImage, and serving a
// pan/lock zoom view over it.
package capture

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"

	"github.com/daaku/swizzle"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// FrozenImage is a pixel snapshot of the active output, stored in
// premultiplied-alpha BGRA, matching the wire format screencopy and
// shm buffers use.
type FrozenImage struct {
	Width  int
	Height int
	Stride int
	Pixels []byte
}

// createShmTempFile allocates an anonymous, unlinked file in
// XDG_RUNTIME_DIR sized for a shm pool of the given byte size — the
// same pattern the teacher's window surfaces used for their
// compositor-shared buffers, reused here for screencopy's shm target.
func createShmTempFile(size int64) (*os.File, error) {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		return nil, errors.New("XDG_RUNTIME_DIR is not defined in env")
	}
	f, err := os.CreateTemp(dir, "wayscriber_shm_*")
	if err != nil {
		return nil, err
	}
	if err := f.Truncate(size); err != nil {
		f.Close()
		return nil, err
	}
	if err := os.Remove(f.Name()); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// FromShmBuffer builds a FrozenImage from a raw ARGB8888/XRGB8888 shm
// buffer as delivered by zwlr_screencopy_manager_v1's ready event,
// swizzling BGRA<->RGBA channel order in place via the same library
// the rest of the pack uses for shm pixel conversion.
func FromShmBuffer(width, height, stride int, buf []byte) FrozenImage {
	pix := make([]byte, len(buf))
	copy(pix, buf)
	swizzle.BGRA(pix)
	return FrozenImage{Width: width, Height: height, Stride: stride, Pixels: pix}
}

// ToRGBA converts the stored BGRA bytes into a standard image.RGBA for
// the render orchestrator to composite, without mutating the stored
// FrozenImage buffer (FrozenImage is shared copy-on-render and must
// never be mutated after capture).
func (f FrozenImage) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	pix := make([]byte, len(f.Pixels))
	copy(pix, f.Pixels)
	swizzle.BGRA(pix)
	for y := 0; y < f.Height; y++ {
		srcOff := y * f.Stride
		dstOff := y * out.Stride
		n := f.Width * 4
		if srcOff+n > len(pix) {
			break
		}
		copy(out.Pix[dstOff:dstOff+n], pix[srcOff:srcOff+n])
	}
	return out
}

// FromPNGFile decodes a portal-provided screenshot file (written by
// the desktop portal to a URI on disk) and crops it to bounds,
// producing a premultiplied BGRA FrozenImage.
func FromPNGFile(path string, bounds geom.Rect) (FrozenImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FrozenImage{}, wyerr.Wrap(wyerr.IO, err, "read portal screenshot file")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return FrozenImage{}, wyerr.Wrap(wyerr.IO, err, "decode portal screenshot png")
	}
	cropRect := image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y).Intersect(img.Bounds())
	cropped := image.NewRGBA(image.Rect(0, 0, cropRect.Dx(), cropRect.Dy()))
	for y := cropRect.Min.Y; y < cropRect.Max.Y; y++ {
		for x := cropRect.Min.X; x < cropRect.Max.X; x++ {
			cropped.Set(x-cropRect.Min.X, y-cropRect.Min.Y, img.At(x, y))
		}
	}
	pix := make([]byte, len(cropped.Pix))
	copy(pix, cropped.Pix)
	swizzle.BGRA(pix)
	return FrozenImage{Width: cropped.Rect.Dx(), Height: cropped.Rect.Dy(), Stride: cropped.Stride, Pixels: pix}, nil
}
