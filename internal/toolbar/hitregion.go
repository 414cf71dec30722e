package toolbar

import "github.com/wayscriber/wayscriber/internal/geom"

// HitKind distinguishes the gesture a HitRegion responds to.
type HitKind int

const (
	HitClick HitKind = iota
	HitDrag
	HitColorPick
)

// HitRegion is one enumerated, bottom-up-ordered hit target for a
// panel frame, the generalized form of menu.go's getitem/drawItem
// pairing (rect + index) but carrying the event and kind directly so
// the input dispatcher never needs a second lookup.
type HitRegion struct {
	Rect    geom.Rect
	Event   string
	Kind    HitKind
	Tooltip string
}

// EnumerateHitRegions builds the bottom-up hit-region list for a
// computed layout, one region per visible row plus, when overflowing,
// the top/bottom scroll-arrow regions.
func EnumerateHitRegions(l Layout, origin geom.Point) []HitRegion {
	var regions []HitRegion
	y := origin.Y + borderSize
	if l.Overflowing {
		regions = append(regions, HitRegion{
			Rect:  geom.Rect{Min: geom.Point{X: origin.X, Y: y}, Max: geom.Point{X: origin.X + l.Width, Y: y + scrollArrow + paddingY*2}},
			Event: "scroll_up",
			Kind:  HitClick,
		})
		y += scrollArrow + paddingY*2
	}
	for _, r := range l.Rows {
		regions = append(regions, HitRegion{
			Rect:    geom.Rect{Min: geom.Point{X: origin.X, Y: y}, Max: geom.Point{X: origin.X + l.Width, Y: y + r.Height}},
			Event:   string(r.Action),
			Kind:    HitClick,
			Tooltip: r.Label,
		})
		y += r.Height
	}
	if l.Overflowing {
		regions = append(regions, HitRegion{
			Rect:  geom.Rect{Min: geom.Point{X: origin.X, Y: y}, Max: geom.Point{X: origin.X + l.Width, Y: y + scrollArrow + paddingY*2}},
			Event: "scroll_down",
			Kind:  HitClick,
		})
	}
	return regions
}

// HitTest returns the first region in enumeration order containing p,
// mirroring menu.go's top-down getitem scan which likewise returns on
// first containing match since rows never overlap.
func HitTest(regions []HitRegion, p geom.Point) (HitRegion, bool) {
	for _, r := range regions {
		if r.Rect.Contains(p) {
			return r, true
		}
	}
	return HitRegion{}, false
}
