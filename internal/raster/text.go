package raster

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/wayscriber/wayscriber/internal/geom"
)

// ParseFontString parses the "path:key=val:key=val" font descriptor
// format, searching FONTPATH (colon-separated directories) for a
// relative path, matching the teacher's own font-string grammar.
func ParseFontString(s string) (font.Face, error) {
	parts := strings.Split(s, ":")
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty font string")
	}
	path, err := resolveFontPath(parts[0])
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	opts := opentype.FaceOptions{Size: 12, DPI: 72, Hinting: font.HintingFull}
	for _, kv := range parts[1:] {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch k {
		case "size":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				opts.Size = f
			}
		case "dpi":
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				opts.DPI = f
			}
		case "hinting":
			switch v {
			case "none":
				opts.Hinting = font.HintingNone
			case "vertical":
				opts.Hinting = font.HintingVertical
			default:
				opts.Hinting = font.HintingFull
			}
		}
	}
	return opentype.NewFace(fnt, &opts)
}

func resolveFontPath(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range strings.Split(os.Getenv("FONTPATH"), ":") {
		if dir == "" {
			continue
		}
		candidate := dir + "/" + name
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("font %q not found on FONTPATH", name)
}

// MeasureText returns the pixel width text would occupy set in face,
// accounting for kerning between consecutive glyphs.
func MeasureText(face font.Face, text string) int {
	var width fixed.Int26_6
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			width += face.Kern(prev, r)
		}
		adv, ok := face.GlyphAdvance(r)
		if ok {
			width += adv
		}
		prev = r
	}
	return width.Ceil()
}

// DrawText renders text at baseline origin (x,y) into dst using col,
// returning the advanced width.
func (c *Context) DrawText(face font.Face, origin geom.Point, text string, col geom.Color) int {
	src := image.NewUniform(toNRGBA(col))
	dot := fixed.Point26_6{X: fixed.I(origin.X), Y: fixed.I(origin.Y)}
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, maskp, advance, ok := face.Glyph(dot, r)
		if ok {
			draw.DrawMask(c.Dst, dr, src, image.Point{}, mask, maskp, draw.Over)
		}
		dot.X += advance
		prev = r
	}
	return dot.X.Ceil() - origin.X
}
