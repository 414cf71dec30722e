package capture

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayscriber/wayscriber/internal/geom"
)

type fakeScreencopySource struct {
	supported bool
	spec      BufferSpec
	buf       []byte
	err       error
}

func (f fakeScreencopySource) Supported() bool { return f.supported }
func (f fakeScreencopySource) CaptureOutput(ctx context.Context, overlayCursor bool) (BufferSpec, []byte, error) {
	return f.spec, f.buf, f.err
}

func TestFromShmBufferSwizzlesChannels(t *testing.T) {
	// BGRA byte order in, expect swizzle to flip R/B on the stored copy.
	buf := []byte{10, 20, 30, 255}
	img := FromShmBuffer(1, 1, 4, buf)
	assert.Equal(t, byte(30), img.Pixels[0])
	assert.Equal(t, byte(20), img.Pixels[1])
	assert.Equal(t, byte(10), img.Pixels[2])
	// original input buffer must not be mutated by FromShmBuffer.
	assert.Equal(t, byte(10), buf[0])
}

func TestCaptureViaScreencopyUnsupportedErrors(t *testing.T) {
	_, err := CaptureViaScreencopy(context.Background(), fakeScreencopySource{supported: false})
	assert.Error(t, err)
}

func TestCaptureViaScreencopySuccess(t *testing.T) {
	src := fakeScreencopySource{supported: true, spec: BufferSpec{Width: 2, Height: 1, Stride: 8}, buf: make([]byte, 8)}
	img, err := CaptureViaScreencopy(context.Background(), src)
	assert.NoError(t, err)
	assert.Equal(t, 2, img.Width)
}

func TestZoomInOutClampsToRange(t *testing.T) {
	z := NewZoomView(2)
	for i := 0; i < 10; i++ {
		z.ZoomIn()
	}
	assert.LessOrEqual(t, z.Scale, MaxZoomScale)
	for i := 0; i < 10; i++ {
		z.ZoomOut()
	}
	assert.GreaterOrEqual(t, z.Scale, MinZoomScale)
}

func TestZoomRecomputeSkippedWhenLocked(t *testing.T) {
	z := NewZoomView(2)
	z.Locked = true
	z.ViewOffset = geom.PointF{X: 5, Y: 5}
	z.Recompute(geom.PointF{X: 0, Y: 0}, geom.PointF{X: 100, Y: 100})
	assert.Equal(t, geom.PointF{X: 5, Y: 5}, z.ViewOffset)
}

func TestPipelineBeginCaptureCommitsOnScreencopySuccess(t *testing.T) {
	p := NewPipeline(2)
	src := fakeScreencopySource{supported: true, spec: BufferSpec{Width: 4, Height: 4, Stride: 16}, buf: make([]byte, 16*4)}
	err := p.BeginCapture(context.Background(), src, geom.Rect{})
	assert.NoError(t, err)
	assert.True(t, p.Active())
	assert.NotNil(t, p.Frozen)
}

func TestPipelineCancelForNewDrawClearsInFlight(t *testing.T) {
	p := NewPipeline(2)
	p.portal = make(chan PortalCaptureResult)
	p.CancelForNewDraw()
	assert.Nil(t, p.portal)
}
