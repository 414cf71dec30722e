package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wayscriber/wayscriber/internal/geom"
)

func TestClearFillsEveryPixel(t *testing.T) {
	c := NewContext(4, 4)
	c.Clear(geom.Color{R: 1, G: 0, B: 0, A: 1})
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, _, _, a := c.Dst.At(x, y).RGBA()
			assert.NotZero(t, r)
			assert.NotZero(t, a)
		}
	}
}

func TestDrawImagePlacesSourceAtOrigin(t *testing.T) {
	src := NewContext(3, 3)
	src.Clear(geom.Color{R: 0, G: 0, B: 1, A: 1})

	dst := NewContext(10, 10)
	dst.DrawImage(geom.Point{X: 4, Y: 4}, src.Dst)

	_, _, b, a := dst.Dst.At(5, 5).RGBA()
	assert.NotZero(t, b)
	assert.NotZero(t, a)
	_, _, b, _ = dst.Dst.At(0, 0).RGBA()
	assert.Zero(t, b)
}

func TestFillRectOnlyAffectsRegion(t *testing.T) {
	c := NewContext(10, 10)
	c.FillRect(geom.Rect{Min: geom.Point{X: 2, Y: 2}, Max: geom.Point{X: 5, Y: 5}}, geom.Color{R: 0, G: 1, B: 0, A: 1})
	_, g, _, a := c.Dst.At(3, 3).RGBA()
	assert.NotZero(t, g)
	assert.NotZero(t, a)
	_, g2, _, a2 := c.Dst.At(8, 8).RGBA()
	assert.Zero(t, g2)
	assert.Zero(t, a2)
}

func TestStrokeLineDrawsEndpoints(t *testing.T) {
	c := NewContext(20, 20)
	c.StrokeLine(geom.Point{X: 2, Y: 2}, geom.Point{X: 10, Y: 2}, 1, geom.Color{R: 1, G: 1, B: 1, A: 1})
	_, _, _, a := c.Dst.At(2, 2).RGBA()
	assert.NotZero(t, a)
	_, _, _, a2 := c.Dst.At(10, 2).RGBA()
	assert.NotZero(t, a2)
}

func TestStrokeRectDrawsAllFourEdges(t *testing.T) {
	c := NewContext(20, 20)
	r := geom.Rect{Min: geom.Point{X: 2, Y: 2}, Max: geom.Point{X: 12, Y: 8}}
	c.StrokeRect(r, 1, geom.Color{R: 1, G: 1, B: 1, A: 1})
	points := []geom.Point{{X: 7, Y: 2}, {X: 7, Y: 8}, {X: 2, Y: 5}, {X: 12, Y: 5}}
	for _, p := range points {
		_, _, _, a := c.Dst.At(p.X, p.Y).RGBA()
		assert.NotZero(t, a, "expected edge pixel at %v", p)
	}
}

func TestTileExtractsSubRegion(t *testing.T) {
	c := NewContext(20, 20)
	c.FillRect(geom.Rect{Min: geom.Point{X: 5, Y: 5}, Max: geom.Point{X: 15, Y: 15}}, geom.Color{R: 1, G: 0, B: 0, A: 1})
	tile := c.Tile(geom.Rect{Min: geom.Point{X: 5, Y: 5}, Max: geom.Point{X: 15, Y: 15}})
	assert.Equal(t, 10, tile.Dst.Bounds().Dx())
	r, _, _, a := tile.Dst.At(2, 2).RGBA()
	assert.NotZero(t, r)
	assert.NotZero(t, a)
}

func TestBlendPixelOpaqueOverwritesDirectly(t *testing.T) {
	c := NewContext(4, 4)
	c.Clear(geom.Color{R: 0, G: 0, B: 0, A: 1})
	blendPixel(c.Dst, 1, 1, toNRGBA(geom.Color{R: 1, G: 1, B: 1, A: 1}))
	r, g, b, _ := c.Dst.At(1, 1).RGBA()
	assert.NotZero(t, r)
	assert.NotZero(t, g)
	assert.NotZero(t, b)
}

func TestEllipsePointOnAxis(t *testing.T) {
	p := ellipsePoint(10, 10, 5, 3, 0)
	assert.Equal(t, 15, p.X)
	assert.Equal(t, 10, p.Y)
}
