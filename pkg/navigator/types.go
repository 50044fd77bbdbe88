package navigator

import (
	"time"
)

// Mode is the presentation topology of the navigation container.
type Mode int

const (
	ModeAuto  Mode = iota // Resolved to Stack or Split on every layout pass
	ModeStack             // One full-width surface at a time
	ModeSplit             // NavBar and content side by side
)

func (m Mode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeStack:
		return "stack"
	case ModeSplit:
		return "split"
	default:
		return "unknown"
	}
}

// ParseMode maps "auto", "stack" and "split" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "", "auto":
		return ModeAuto, true
	case "stack":
		return ModeStack, true
	case "split":
		return ModeSplit, true
	}
	return ModeAuto, false
}

// Operation is the kind of stack mutation a transition animates.
type Operation int

const (
	OpNone Operation = iota
	OpPush
	OpPop
	OpReplace
	OpModeChange
)

func (o Operation) String() string {
	switch o {
	case OpPush:
		return "push"
	case OpPop:
		return "pop"
	case OpReplace:
		return "replace"
	case OpModeChange:
		return "mode_change"
	default:
		return "none"
	}
}

// LaunchMode controls how Push treats a name that is already on the stack.
type LaunchMode int

const (
	LaunchStandard    LaunchMode = iota // Always add a new destination
	LaunchSingle                        // Move the existing destination to the top and update its params
	LaunchPopToSingle                   // Pop everything above the existing destination and update its params
)

// Handle is an opaque reference to a node owned by the Scene.
type Handle uint64

// NoHandle is the zero Handle; Scene calls with it are skipped.
const NoHandle Handle = 0

// Content is the set of scene nodes that make up one surface.
type Content struct {
	Root       Handle // Whole surface; translated, faded and detached
	TitleBar   Handle // Optional title bar, animated separately
	BackButton Handle // Optional back icon inside the title bar
	Title      string // Human readable title, used for announcements
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Curve identifies an easing curve. Interpolation belongs to the Scene.
type Curve int

const (
	CurveLinear Curve = iota
	CurveFriction
	CurveSharp
)

// Timing describes one animation run.
type Timing struct {
	Duration time.Duration
	Delay    time.Duration
	Curve    Curve
}
