package icons

import (
	"image/color"
	"testing"
)

func TestRasterizeBackArrowPaintsFill(t *testing.T) {
	fill := color.NRGBA{R: 0xCB, G: 0xA6, B: 0xF7, A: 0xFF}
	img, err := Rasterize(BackArrow, 48, fill)
	if err != nil {
		t.Fatalf("rasterize: %v", err)
	}
	if got := img.Bounds().Dx(); got != 48 {
		t.Fatalf("width mismatch: %d", got)
	}

	painted := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatalf("expected some painted pixels")
	}
	if painted == 48*48 {
		t.Fatalf("expected a glyph, not a filled square")
	}

	// The arrow's horizontal bar crosses the vertical center on the right half.
	r, g, b, a := img.At(36, 24).RGBA()
	if a == 0 {
		t.Fatalf("expected arrow shaft at (36,24)")
	}
	if r>>8 < 0xB0 || g>>8 < 0x90 || b>>8 < 0xE0 {
		t.Fatalf("unexpected shaft color %x %x %x", r>>8, g>>8, b>>8)
	}
}

func TestRasterizeRejectsInvalidSize(t *testing.T) {
	if _, err := Rasterize(BackArrow, 0, color.White); err == nil {
		t.Fatalf("expected error for zero size")
	}
}

func TestHex(t *testing.T) {
	if got := hex(color.NRGBA{R: 1, G: 0xAB, B: 0xFF, A: 0xFF}); got != "#01abff" {
		t.Fatalf("hex mismatch: %s", got)
	}
}
