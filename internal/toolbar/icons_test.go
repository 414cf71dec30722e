package toolbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
)

func TestIconSizeVariesByLayoutMode(t *testing.T) {
	assert.Less(t, IconSize(LayoutSimple), IconSize(LayoutRegular))
	assert.Less(t, IconSize(LayoutRegular), IconSize(LayoutAdvanced))
}

func TestToolIconScalesToRequestedSize(t *testing.T) {
	img := ToolIcon(input.ToolRect, 20, geom.Color{R: 1, G: 1, B: 1, A: 1})
	b := img.Bounds()
	assert.Equal(t, 20, b.Dx())
	assert.Equal(t, 20, b.Dy())
}

func TestBuildToolRowsProducesOneRowPerTool(t *testing.T) {
	rows := BuildToolRows(ToolbarSnapshot{Tool: input.ToolFreehand, Mode: LayoutRegular})
	assert.Equal(t, len(toolRowSpec), len(rows))
	for _, r := range rows {
		assert.NotNil(t, r.Icon)
		assert.NotEmpty(t, r.Label)
	}
}
