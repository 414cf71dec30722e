package capture

import (
	"bytes"
	"image"
	"image/png"

	"github.com/aymanbagabas/go-nativeclipboard"

	"github.com/wayscriber/wayscriber/internal/wyerr"
)

// WriteImageToClipboard PNG-encodes img and writes it to the system
// clipboard, used by the "capture to clipboard" actions in spec.md §6.
// The returned channel fires once if another application overwrites
// the clipboard afterward; callers that don't care may discard it.
func WriteImageToClipboard(img image.Image) (<-chan struct{}, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, wyerr.Wrap(wyerr.IO, err, "encode capture to png")
	}
	changed, err := nativeclipboard.Image.Write(buf.Bytes())
	if err != nil {
		return nil, wyerr.Wrap(wyerr.IO, err, "write image to clipboard")
	}
	return changed, nil
}
