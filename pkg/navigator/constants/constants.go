// Package constants defines shared constants and default values
// used throughout the navigator packages.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the demos and the log setup.
const (
	LogLevelEnvVar   = "NAVIGATOR_LOG_LEVEL"
	LogPathEnvVar    = "NAVIGATOR_LOG_PATH"
	BackDeviceEnvVar = "NAVIGATOR_BACK_DEVICE"
	LanguageEnvVar   = "NAVIGATOR_LANGUAGE"

	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Default sizing values, in layout units.
const (
	DefaultNavBarWidth     = 240.0
	DefaultMinNavBarWidth  = 240.0
	DefaultMaxNavBarWidth  = 432.0
	DefaultMinContentWidth = 360.0
	DividerWidth           = 1.0
	DividerHotZone         = 8.0 // Horizontal hit slop around the divider line

	// LegacySplitBreakpoint is the fixed Auto-mode breakpoint used before
	// the breakpoint was derived from the width constraints.
	LegacySplitBreakpoint = 600.0
)

// Default animation timing.
const (
	DefaultTransitionDuration = 400 * time.Millisecond // Primary translate / clip curve
	DefaultOpacityDuration    = 150 * time.Millisecond // Title and back icon ramps
	DefaultTitleInDelay       = 50 * time.Millisecond
	DefaultBackIconDelay      = 100 * time.Millisecond
	DefaultModeChangeDuration = 250 * time.Millisecond
)

// Translation fractions of the node width.
const (
	IncomingOffsetFraction = 1.0  // Incoming page starts fully off to the right
	CoveredOffsetFraction  = -0.2 // Covered page parallax shift to the left
	TitleOffsetFraction    = 0.3  // Title bars move less than content
)

// MaskAlpha is the peak scrim alpha drawn over a covered page in Stack mode.
const MaskAlpha uint8 = 0x33
