package navigator

import (
	"image/color"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// Theme is the set of colors scene backends use for navigation chrome.
type Theme = internal.Theme

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return internal.DefaultTheme()
}

// SetTheme sets the theme used by backends and by the Stack mode scrim.
func SetTheme(theme Theme) {
	internal.SetTheme(theme)
}

// GetTheme returns the active theme.
func GetTheme() Theme {
	return internal.GetTheme()
}

// HexColor renders c as #RRGGBB.
func HexColor(c color.NRGBA) string {
	return internal.ColorToHex(c)
}
