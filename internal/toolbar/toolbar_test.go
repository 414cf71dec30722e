package toolbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayscriber/wayscriber/internal/geom"
)

func TestComputeLayoutNoOverflowWhenFits(t *testing.T) {
	rows := []Row{{Height: 20, Width: 40}, {Height: 20, Width: 40}}
	l := ComputeLayout(PanelTop, rows, 0, 200)
	assert.False(t, l.Overflowing)
	assert.Len(t, l.Rows, 2)
}

func TestComputeLayoutOverflowsAndTrims(t *testing.T) {
	rows := []Row{{Height: 50, Width: 40}, {Height: 50, Width: 40}, {Height: 50, Width: 40}, {Height: 50, Width: 40}}
	l := ComputeLayout(PanelTop, rows, 0, 100)
	assert.True(t, l.Overflowing)
	assert.Less(t, len(l.Rows), len(rows))
}

func TestRowAtFindsContainingRow(t *testing.T) {
	rows := []Row{{Height: 20, Width: 40}, {Height: 20, Width: 40}}
	l := ComputeLayout(PanelTop, rows, 0, 200)
	assert.Equal(t, 0, RowAt(l, rows, 5))
	assert.Equal(t, 1, RowAt(l, rows, 25))
	assert.Equal(t, -1, RowAt(l, rows, 1000))
}

func TestEnumerateHitRegionsAndHitTest(t *testing.T) {
	rows := []Row{{Height: 20, Width: 40, Action: "select_freehand_tool"}}
	l := ComputeLayout(PanelTop, rows, 0, 200)
	regions := EnumerateHitRegions(l, geom.Point{X: 0, Y: 0})
	hit, ok := HitTest(regions, geom.Point{X: 5, Y: 5})
	assert.True(t, ok)
	assert.Equal(t, "select_freehand_tool", hit.Event)
}

func TestShapeMenuEntriesDisablesWhenNoSelectionOrLocked(t *testing.T) {
	entries := ShapeMenuEntries(ShapeMenuInput{HasSelection: true, AllLocked: true})
	for _, e := range entries {
		if e.Event == "delete_selection" {
			assert.True(t, e.Disabled)
		}
	}
}

func TestFocusNextSkipsDisabledAndWraps(t *testing.T) {
	entries := []ContextMenuEntry{{Disabled: false}, {Disabled: true}, {Disabled: false}}
	next := FocusNext(entries, 0, true)
	assert.Equal(t, 2, next)
}

func TestFilterSectionsFiltersRowsCaseInsensitive(t *testing.T) {
	sections := []HelpSection{
		{Title: "Drawing", Rows: []HelpRow{{ActionLabel: "Undo", KeyDisplay: "Ctrl+Z"}, {ActionLabel: "Redo", KeyDisplay: "Ctrl+Y"}}},
	}
	filtered := FilterSections(sections, "undo")
	assert.Len(t, filtered, 1)
	assert.Len(t, filtered[0].Rows, 1)
}

func TestFilterSectionsEmptyQueryPassesThrough(t *testing.T) {
	sections := []HelpSection{{Title: "A"}}
	assert.Equal(t, sections, FilterSections(sections, ""))
}
