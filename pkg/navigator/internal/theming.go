package internal

import (
	"image/color"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
)

// Theme defines the colors a scene backend uses for navigation chrome.
type Theme struct {
	NavBarColor     color.NRGBA // NavBar surface background
	ContentColor    color.NRGBA // Destination surface background
	TitleBarColor   color.NRGBA // Title bar background
	TitleTextColor  color.NRGBA // Title text
	DividerColor    color.NRGBA // Split mode divider line
	ScrimColor      color.NRGBA // Mask drawn over a covered page, alpha is the peak
	BackButtonColor color.NRGBA // Back arrow fill
}

var currentTheme = DefaultTheme()

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	scrim := HexToColor(0x000000)
	scrim.A = constants.MaskAlpha
	return Theme{
		NavBarColor:     HexToColor(0x1E1E2E),
		ContentColor:    HexToColor(0x11111B),
		TitleBarColor:   HexToColor(0x313244),
		TitleTextColor:  HexToColor(0xCDD6F4),
		DividerColor:    HexToColor(0x45475A),
		ScrimColor:      scrim,
		BackButtonColor: HexToColor(0xCBA6F7),
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB into an opaque color.
func HexToColor(hex uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 0xFF,
	}
}

// ColorToHex renders a color as #RRGGBB.
func ColorToHex(c color.NRGBA) string {
	const digits = "0123456789ABCDEF"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0F]
	}
	return string(b)
}
