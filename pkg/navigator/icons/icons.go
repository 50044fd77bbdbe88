// Package icons rasterizes the vector glyphs drawn by scene backends,
// such as the title bar back arrow.
package icons

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Glyph is an SVG document with a {{fill}} placeholder for its color.
type Glyph string

// Back arrow, Material Design "arrow_back".
const BackArrow Glyph = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
	`<path fill="{{fill}}" d="M20 11H7.83l5.59-5.59L12 4l-8 8 8 8 1.41-1.41L7.83 13H20v-2z"/></svg>`

// Chevron used for the split mode divider handle.
const DividerHandle Glyph = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">` +
	`<path fill="{{fill}}" d="M9 4h2v16H9zM13 4h2v16h-2z"/></svg>`

// Rasterize draws the glyph into a size x size RGBA image using fill.
func Rasterize(glyph Glyph, size int, fill color.Color) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icons: invalid size %d", size)
	}

	doc := strings.ReplaceAll(string(glyph), "{{fill}}", hex(fill))
	icon, err := oksvg.ReadIconStream(bytes.NewReader([]byte(doc)), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("icons: parse glyph: %w", err)
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return img, nil
}

func hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
