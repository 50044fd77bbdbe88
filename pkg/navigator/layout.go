package navigator

import (
	"math"

	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
)

// Constraints are the user-settable sizing rules of the container.
// Zero widths mean "use the default". The *Set flags record whether the
// user declared a value explicitly, which changes the shrink priority.
type Constraints struct {
	NavBarWidth        float64
	NavBarWidthSet     bool
	MinNavBarWidth     float64
	MaxNavBarWidth     float64
	NavBarRangeSet     bool
	MinContentWidth    float64
	MinContentWidthSet bool
	DividerWidth       float64
	HideNavBar         bool
	LegacyBreakpoint   bool // Use the fixed breakpoint instead of min navBar + min content
}

// DefaultConstraints returns the built-in sizing rules.
func DefaultConstraints() Constraints {
	return Constraints{}.normalized()
}

func (c Constraints) normalized() Constraints {
	if c.NavBarWidth <= 0 {
		c.NavBarWidth = constants.DefaultNavBarWidth
	}
	if c.MinNavBarWidth <= 0 {
		c.MinNavBarWidth = constants.DefaultMinNavBarWidth
	}
	if c.MaxNavBarWidth <= 0 {
		c.MaxNavBarWidth = constants.DefaultMaxNavBarWidth
	}
	if c.MaxNavBarWidth < c.MinNavBarWidth {
		c.MaxNavBarWidth = c.MinNavBarWidth
	}
	if c.MinContentWidth <= 0 {
		c.MinContentWidth = constants.DefaultMinContentWidth
	}
	if c.DividerWidth <= 0 {
		c.DividerWidth = constants.DividerWidth
	}
	return c
}

// Breakpoint is the container width at and above which Auto resolves to Split.
func (c Constraints) Breakpoint() float64 {
	c = c.normalized()
	if c.LegacyBreakpoint {
		return constants.LegacySplitBreakpoint
	}
	return c.MinNavBarWidth + c.MinContentWidth
}

// ResolveMode turns Auto into Stack or Split for the given container width.
func ResolveMode(width float64, c Constraints, mode Mode) Mode {
	if mode != ModeAuto {
		return mode
	}
	if width >= c.Breakpoint() {
		return ModeSplit
	}
	return ModeStack
}

// Container is the measured input of one layout pass.
type Container struct {
	Width           float64
	Height          float64
	AutoHeight      bool    // Height follows content instead of the container
	NavBarHeight    float64 // Measured navBar height, used with AutoHeight
	ContentHeight   float64 // Measured top destination height, used with AutoHeight
	HasDestinations bool
}

// Drag is the in-progress divider drag. StartWidth is the navBar width when
// the gesture began.
type Drag struct {
	Active     bool
	StartWidth float64
	Offset     float64
}

// SizeState is the result of one layout pass.
type SizeState struct {
	Mode          Mode
	NavBarWidth   float64
	DividerWidth  float64
	ContentWidth  float64
	NavBarHeight  float64
	ContentHeight float64
	Height        float64
}

// Size computes the region widths for one layout pass.
func Size(container Container, c Constraints, drag Drag, mode Mode) SizeState {
	c = c.normalized()
	w := math.Max(container.Width, 0)

	state := SizeState{Mode: ResolveMode(w, c, mode)}
	if state.Mode == ModeSplit {
		state.NavBarWidth, state.DividerWidth, state.ContentWidth = splitWidths(w, c, drag)
	} else {
		state.NavBarWidth, state.ContentWidth = w, w
	}

	state.Height = container.Height
	state.NavBarHeight, state.ContentHeight = container.Height, container.Height
	if container.AutoHeight {
		state.NavBarHeight, state.ContentHeight = container.NavBarHeight, container.ContentHeight
		switch {
		case state.Mode == ModeSplit:
			state.Height = math.Max(container.NavBarHeight, container.ContentHeight)
		case container.HasDestinations:
			state.Height = container.ContentHeight
		default:
			state.Height = container.NavBarHeight
		}
	}
	return state
}

// splitWidths sizes navBar, divider and content so they always sum to w.
// The navBar is shrunk towards its minimum before the content is allowed
// below its minimum, unless only the navBar range was set explicitly.
func splitWidths(w float64, c Constraints, drag Drag) (nav, divider, content float64) {
	if c.HideNavBar {
		return 0, 0, w
	}

	base := c.NavBarWidth
	if drag.Active {
		base = drag.StartWidth + drag.Offset
	}
	nav = clamp(base, c.MinNavBarWidth, c.MaxNavBarWidth)
	divider = c.DividerWidth

	if nav+divider+c.MinContentWidth > w {
		keepNavBar := c.NavBarRangeSet && !c.MinContentWidthSet
		if !keepNavBar {
			nav = math.Max(c.MinNavBarWidth, w-c.MinContentWidth-divider)
		}
	}
	if nav+divider > w {
		nav = math.Max(0, w-divider)
	}

	content = w - nav - divider
	if nav <= 0 || content <= 0 {
		divider = 0
		if content <= 0 {
			nav, content = w, 0
		} else {
			nav, content = 0, w
		}
	}
	return nav, divider, content
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// DividerRegion returns the divider hit-test rectangle. It is empty in Stack
// mode and when the navBar is hidden.
func DividerRegion(s SizeState) Rect {
	if s.Mode != ModeSplit || s.NavBarWidth <= 0 || s.DividerWidth <= 0 {
		return Rect{}
	}
	center := s.NavBarWidth + s.DividerWidth/2
	return Rect{
		X: center - constants.DividerHotZone/2,
		Y: 0,
		W: constants.DividerHotZone,
		H: s.Height,
	}
}

// ContentRect returns the region occupied by destinations.
func ContentRect(s SizeState) Rect {
	if s.Mode == ModeSplit {
		return Rect{X: s.NavBarWidth + s.DividerWidth, W: s.ContentWidth, H: s.ContentHeight}
	}
	return Rect{W: s.ContentWidth, H: s.ContentHeight}
}

// NavBarRect returns the region occupied by the navBar.
func NavBarRect(s SizeState) Rect {
	return Rect{W: s.NavBarWidth, H: s.NavBarHeight}
}
