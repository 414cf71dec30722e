package wlproto

import (
	"github.com/rajveermalviya/go-wayland/wayland/client"
	pointerconstraints "github.com/rajveermalviya/go-wayland/wayland/unstable/pointer-constraints-v1"
	relativepointer "github.com/rajveermalviya/go-wayland/wayland/unstable/relative-pointer-v1"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// PointerLock wraps a locked pointer plus its relative-motion stream,
// used by the toolbar drag code (internal/toolbar.DragState) to
// stabilize dragging when the compositor advertises both
// zwp_pointer_constraints_v1 and zwp_relative_pointer_manager_v1.
// Without either global, callers fall back to ordinary absolute
// motion per spec.md §4.I.
type PointerLock struct {
	locked   *pointerconstraints.LockedPointer
	relative *relativepointer.RelativePointer
	motion   chan geom.PointF
}

// SupportsPointerLock reports whether the connection can stabilize
// drags with true pointer lock.
func (c *Conn) SupportsPointerLock() bool {
	return c.Caps.PointerConstraints && c.Caps.RelativePointer && c.PointerConstraints != nil && c.RelativePointer != nil
}

// LockPointer confines the pointer to surface and starts relaying
// relative-motion deltas on the returned PointerLock's Motion channel.
func (c *Conn) LockPointer(surface *client.Surface, pointer *client.Pointer) (*PointerLock, error) {
	if !c.SupportsPointerLock() {
		return nil, wyerr.New(wyerr.Protocol, "pointer lock unsupported: missing pointer-constraints or relative-pointer global")
	}
	locked, err := c.PointerConstraints.LockPointer(surface, pointer, nil, pointerconstraints.PointerConstraintsLifetimePersistent)
	if err != nil {
		return nil, wyerr.Wrap(wyerr.Protocol, err, "pointer_constraints.lock_pointer")
	}
	rel, err := c.RelativePointer.GetRelativePointer(pointer)
	if err != nil {
		locked.Destroy()
		return nil, wyerr.Wrap(wyerr.Protocol, err, "relative_pointer_manager.get_relative_pointer")
	}
	pl := &PointerLock{locked: locked, relative: rel, motion: make(chan geom.PointF, 32)}
	rel.SetRelativeMotionHandler(func(ev relativepointer.RelativePointerRelativeMotionEvent) {
		select {
		case pl.motion <- geom.PointF{X: float64(ev.DxUnaccel) / 256.0, Y: float64(ev.DyUnaccel) / 256.0}:
		default:
		}
	})
	return pl, nil
}

// Motion is the channel of unaccelerated (dx, dy) deltas delivered
// while the pointer is locked.
func (p *PointerLock) Motion() <-chan geom.PointF { return p.motion }

// Unlock destroys both protocol objects, releasing the pointer.
func (p *PointerLock) Unlock() {
	p.relative.Destroy()
	p.locked.Destroy()
}
