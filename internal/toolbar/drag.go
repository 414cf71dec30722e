package toolbar

import "github.com/wayscriber/wayscriber/internal/geom"

// DragState tracks an in-progress panel reposition, started by a
// mouse-down on a drag handle.
type DragState struct {
	Active       bool
	Panel        Panel
	LocalOffset  geom.Point
	StartSurface geom.Point
	PointerLocked bool
}

// BeginDrag records the local offset between the pointer and the
// panel's current surface position, per spec.md §4.H.
func BeginDrag(panel Panel, pointer, surfacePos geom.Point, pointerLockAvailable bool) DragState {
	return DragState{
		Active:        true,
		Panel:         panel,
		LocalOffset:   geom.Point{X: pointer.X - surfacePos.X, Y: pointer.Y - surfacePos.Y},
		StartSurface:  surfacePos,
		PointerLocked: pointerLockAvailable,
	}
}

// ApplyRelativeMotion updates surfacePos by a relative-pointer delta,
// used only when PointerLocked (pointer-constraints + relative-pointer
// available); returns the new surface position.
func (d DragState) ApplyRelativeMotion(current geom.Point, dx, dy float64) geom.Point {
	return geom.Point{X: current.X + int(dx), Y: current.Y + int(dy)}
}

// ApplyAbsoluteMotion recomputes the surface position from an absolute
// pointer position and the recorded local offset, used when
// pointer-lock is unavailable (the panel may visibly jitter).
func (d DragState) ApplyAbsoluteMotion(pointer geom.Point) geom.Point {
	return geom.Point{X: pointer.X - d.LocalOffset.X, Y: pointer.Y - d.LocalOffset.Y}
}

// End clears the active flag; callers persist the final position to
// config separately.
func (d DragState) End() DragState {
	d.Active = false
	return d
}
