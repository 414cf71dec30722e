package capture

import (
	"context"

	"github.com/wayscriber/wayscriber/internal/geom"
)

// Pipeline owns the frozen-capture activation flag and in-flight
// acquisition, coordinating the screencopy-then-portal fallback and
// the draw-cancels-capture rule from SPEC_FULL.md §11.
type Pipeline struct {
	active  bool
	Frozen  *FrozenImage
	Zoom    ZoomView
	Outputs OutputGeometry

	cancel context.CancelFunc
	portal PortalCaptureRx
}

// OutputGeometry caches the logical origin/size/scale reported by the
// most recent successful capture.
type OutputGeometry struct {
	Origin geom.Point
	Size   geom.Point
	Scale  float64
}

// NewPipeline returns an inactive capture pipeline with the given zoom
// step multiplier.
func NewPipeline(zoomStep float64) *Pipeline {
	return &Pipeline{Zoom: NewZoomView(zoomStep)}
}

// Active reports whether frozen-background rendering should occur.
func (p *Pipeline) Active() bool { return p.active }

// BeginCapture tries screencopy first, falling back to the portal on
// failure or absence. Any earlier in-flight request is cancelled first;
// the request started here stays cancellable via CancelForNewDraw until
// PollPortal commits it.
func (p *Pipeline) BeginCapture(ctx context.Context, src ScreencopySource, bounds geom.Rect) error {
	p.CancelForNewDraw()
	cctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	img, err := CaptureViaScreencopy(cctx, src)
	if err == nil {
		p.commit(img, 1.0)
		return nil
	}
	p.portal = RequestPortalScreenshot(cctx, bounds)
	return nil
}

// PollPortal drains a pending portal request, if any, applying it on
// success. It is a no-op when no portal request is outstanding.
func (p *Pipeline) PollPortal() error {
	if p.portal == nil {
		return nil
	}
	select {
	case res, ok := <-p.portal:
		p.portal = nil
		if !ok {
			return nil
		}
		if res.Err != nil {
			return res.Err
		}
		p.commit(res.Image, res.Scale)
		return nil
	default:
		return nil
	}
}

func (p *Pipeline) commit(img FrozenImage, scale float64) {
	p.Frozen = &img
	p.active = true
	p.Outputs.Size = geom.Point{X: img.Width, Y: img.Height}
	p.Outputs.Scale = scale
}

// CancelForNewDraw cancels any in-flight capture request — per
// SPEC_FULL.md §11, a capture cancelled this way must not be committed
// even if it resolves afterward, since a stale frame racing new
// strokes would show the view as of the cancelled request rather than
// the moment the capture was actually (re)requested.
func (p *Pipeline) CancelForNewDraw() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.portal = nil
}

// Deactivate turns off frozen-mode rendering without discarding the
// last captured image, so toggling frozen mode back on redisplays it
// until a refresh reseeds it.
func (p *Pipeline) Deactivate() {
	p.active = false
}
