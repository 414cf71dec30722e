package toolbar

import (
	"image"

	"github.com/KononK/resize"

	"github.com/wayscriber/wayscriber/internal/geom"
	"github.com/wayscriber/wayscriber/internal/input"
	"github.com/wayscriber/wayscriber/internal/raster"
)

// iconBaseSize is the resolution glyphs are drawn at before scaling;
// drawing once at a fixed size and resizing down keeps the glyph
// functions simple regardless of the active LayoutMode's icon size.
const iconBaseSize = 32

// IconSize returns the on-screen icon edge length for a layout mode,
// the toolbar analogue of the teacher's ctxmenu.IconSize field.
func IconSize(mode LayoutMode) int {
	switch mode {
	case LayoutSimple:
		return 16
	case LayoutAdvanced:
		return 28
	default:
		return 20
	}
}

// ToolIcon rasterizes the glyph for t at iconBaseSize and scales it to
// size using a bilinear filter, mirroring menu.go's makeItem loading a
// file icon and calling resize.Resize(IconSize, IconSize, img,
// resize.Bilinear) before caching it on the Item.
func ToolIcon(t input.Tool, size int, col geom.Color) image.Image {
	ctx := raster.NewContext(iconBaseSize, iconBaseSize)
	drawToolGlyph(ctx, t, col)
	return resize.Resize(uint(size), uint(size), ctx.Dst, resize.Bilinear)
}

func drawToolGlyph(ctx *raster.Context, t input.Tool, col geom.Color) {
	const m = iconBaseSize
	full := geom.Rect{Min: geom.Point{X: 0, Y: 0}, Max: geom.Point{X: m, Y: m}}
	switch t {
	case input.ToolFreehand, input.ToolHighlight:
		ctx.StrokeLine(geom.Point{X: 4, Y: m - 6}, geom.Point{X: m/2 - 2, Y: 8}, 2, col)
		ctx.StrokeLine(geom.Point{X: m/2 - 2, Y: 8}, geom.Point{X: m - 6, Y: m - 10}, 2, col)
	case input.ToolLine:
		ctx.StrokeLine(geom.Point{X: 4, Y: m - 4}, geom.Point{X: m - 4, Y: 4}, 2, col)
	case input.ToolRect:
		ctx.StrokeRect(geom.Rect{Min: geom.Point{X: 5, Y: 5}, Max: geom.Point{X: m - 5, Y: m - 5}}, 2, col)
	case input.ToolEllipse:
		ctx.StrokeEllipse(geom.Rect{Min: geom.Point{X: 4, Y: 4}, Max: geom.Point{X: m - 4, Y: m - 4}}, 2, col)
	case input.ToolArrow:
		ctx.StrokeLine(geom.Point{X: 4, Y: m - 4}, geom.Point{X: m - 6, Y: 6}, 2, col)
		ctx.StrokeLine(geom.Point{X: m - 6, Y: 6}, geom.Point{X: m - 14, Y: 8}, 2, col)
		ctx.StrokeLine(geom.Point{X: m - 6, Y: 6}, geom.Point{X: m - 10, Y: 14}, 2, col)
	case input.ToolStepMarker:
		ctx.StrokeEllipse(geom.Rect{Min: geom.Point{X: 6, Y: 6}, Max: geom.Point{X: m - 6, Y: m - 6}}, 2, col)
	case input.ToolText:
		ctx.StrokeLine(geom.Point{X: 6, Y: 6}, geom.Point{X: m - 6, Y: 6}, 2, col)
		ctx.StrokeLine(geom.Point{X: m / 2, Y: 6}, geom.Point{X: m / 2, Y: m - 6}, 2, col)
	case input.ToolStickyNote:
		ctx.StrokeRect(geom.Rect{Min: geom.Point{X: 6, Y: 4}, Max: geom.Point{X: m - 4, Y: m - 6}}, 2, col)
	case input.ToolEraser:
		ctx.StrokeRect(geom.Rect{Min: geom.Point{X: 6, Y: m/2 - 4}, Max: geom.Point{X: m - 6, Y: m/2 + 4}}, 2, col)
	case input.ToolSelection:
		ctx.StrokeLine(geom.Point{X: 4, Y: 4}, geom.Point{X: m - 8, Y: m - 14}, 2, col)
		ctx.StrokeLine(geom.Point{X: 4, Y: 4}, geom.Point{X: m - 14, Y: m - 8}, 2, col)
	default:
		ctx.StrokeRect(full, 1, col)
	}
}
