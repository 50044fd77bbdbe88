package navigator

import (
	"math"
	"testing"
)

func TestResolveModeBreakpoint(t *testing.T) {
	c := Constraints{MinNavBarWidth: 200, MinContentWidth: 300}
	if got := ResolveMode(499, c, ModeAuto); got != ModeStack {
		t.Fatalf("499 mismatch: got %s want stack", got)
	}
	if got := ResolveMode(500, c, ModeAuto); got != ModeSplit {
		t.Fatalf("500 mismatch: got %s want split", got)
	}
	if got := ResolveMode(1000, c, ModeStack); got != ModeStack {
		t.Fatalf("explicit mode must win: got %s", got)
	}

	c.LegacyBreakpoint = true
	if got := ResolveMode(550, c, ModeAuto); got != ModeStack {
		t.Fatalf("legacy 550 mismatch: got %s", got)
	}
	if got := ResolveMode(600, c, ModeAuto); got != ModeSplit {
		t.Fatalf("legacy 600 mismatch: got %s", got)
	}

	if got := DefaultConstraints().Breakpoint(); got != 600 {
		t.Fatalf("default breakpoint mismatch: %v", got)
	}
}

func TestSplitWidthsSumToContainer(t *testing.T) {
	constraints := []Constraints{
		{},
		{MinNavBarWidth: 200, MaxNavBarWidth: 400, NavBarRangeSet: true},
		{MinContentWidth: 500, MinContentWidthSet: true},
		{NavBarWidth: 900, NavBarWidthSet: true},
		{HideNavBar: true},
	}
	for ci, c := range constraints {
		for w := 0.0; w <= 1400; w += 7 {
			s := Size(Container{Width: w, Height: 600}, c, Drag{}, ModeSplit)
			sum := s.NavBarWidth + s.DividerWidth + s.ContentWidth
			if math.Abs(sum-w) > 1e-9 {
				t.Fatalf("constraints %d width %v: sum %v", ci, w, sum)
			}
			if s.NavBarWidth < 0 || s.ContentWidth < 0 || s.DividerWidth < 0 {
				t.Fatalf("constraints %d width %v: negative region %+v", ci, w, s)
			}
			if (s.NavBarWidth == 0 || s.ContentWidth == 0) && s.DividerWidth != 0 {
				t.Fatalf("constraints %d width %v: divider without both sides", ci, w)
			}
		}
	}
}

func TestSplitShrinksNavBarFirst(t *testing.T) {
	c := Constraints{
		NavBarWidth: 300, NavBarWidthSet: true,
		MinNavBarWidth: 200, MaxNavBarWidth: 400, NavBarRangeSet: true,
		MinContentWidth: 300, MinContentWidthSet: true,
	}

	s := Size(Container{Width: 560}, c, Drag{}, ModeSplit)
	if s.NavBarWidth != 259 || s.ContentWidth != 300 {
		t.Fatalf("shrink mismatch: nav %v content %v", s.NavBarWidth, s.ContentWidth)
	}

	s = Size(Container{Width: 450}, c, Drag{}, ModeSplit)
	if s.NavBarWidth != 200 || s.ContentWidth != 249 {
		t.Fatalf("below both minimums: nav %v content %v", s.NavBarWidth, s.ContentWidth)
	}
}

func TestSplitKeepsExplicitNavBarRange(t *testing.T) {
	c := Constraints{MinNavBarWidth: 280, MaxNavBarWidth: 400, NavBarRangeSet: true}
	s := Size(Container{Width: 500}, c, Drag{}, ModeSplit)
	if s.NavBarWidth != 280 || s.ContentWidth != 219 {
		t.Fatalf("explicit range mismatch: nav %v content %v", s.NavBarWidth, s.ContentWidth)
	}
}

func TestSplitDragClampsToRange(t *testing.T) {
	c := Constraints{NavBarWidth: 250, MinNavBarWidth: 200, MaxNavBarWidth: 400, MinContentWidth: 300}
	cases := []struct {
		offset float64
		want   float64
	}{
		{100, 350},
		{500, 400},
		{-200, 200},
	}
	for _, tc := range cases {
		drag := Drag{Active: true, StartWidth: 250, Offset: tc.offset}
		s := Size(Container{Width: 1000}, c, drag, ModeSplit)
		if s.NavBarWidth != tc.want {
			t.Fatalf("offset %v: nav %v want %v", tc.offset, s.NavBarWidth, tc.want)
		}
	}
}

func TestStackAndHiddenNavBarRegions(t *testing.T) {
	s := Size(Container{Width: 400, Height: 600}, DefaultConstraints(), Drag{}, ModeAuto)
	if s.Mode != ModeStack || s.NavBarWidth != 400 || s.ContentWidth != 400 {
		t.Fatalf("stack sizing mismatch: %+v", s)
	}
	if !DividerRegion(s).Empty() {
		t.Fatalf("stack mode must not expose a divider")
	}

	s = Size(Container{Width: 1000, Height: 600}, Constraints{HideNavBar: true}, Drag{}, ModeSplit)
	if s.NavBarWidth != 0 || s.ContentWidth != 1000 {
		t.Fatalf("hidden navBar mismatch: %+v", s)
	}
	if !DividerRegion(s).Empty() {
		t.Fatalf("hidden navBar must not expose a divider")
	}
}

func TestDividerRegionCentersHotZone(t *testing.T) {
	s := Size(Container{Width: 1000, Height: 600}, DefaultConstraints(), Drag{}, ModeAuto)
	r := DividerRegion(s)
	if r.X != 236.5 || r.W != 8 || r.H != 600 {
		t.Fatalf("divider region mismatch: %+v", r)
	}
	if !r.Contains(240, 10) || r.Contains(250, 10) {
		t.Fatalf("hit test mismatch for %+v", r)
	}

	content := ContentRect(s)
	if content.X != 241 || content.W != 759 {
		t.Fatalf("content rect mismatch: %+v", content)
	}
}

func TestAutoHeight(t *testing.T) {
	c := DefaultConstraints()
	base := Container{Height: 900, AutoHeight: true, NavBarHeight: 300, ContentHeight: 500}

	stack := base
	stack.Width, stack.HasDestinations = 400, true
	if got := Size(stack, c, Drag{}, ModeAuto).Height; got != 500 {
		t.Fatalf("stack with destinations: %v", got)
	}

	stack.HasDestinations = false
	if got := Size(stack, c, Drag{}, ModeAuto).Height; got != 300 {
		t.Fatalf("stack without destinations: %v", got)
	}

	split := base
	split.Width = 1000
	split.NavBarHeight = 700
	if got := Size(split, c, Drag{}, ModeAuto).Height; got != 700 {
		t.Fatalf("split takes the taller side: %v", got)
	}

	fixed := Container{Width: 400, Height: 900}
	if got := Size(fixed, c, Drag{}, ModeAuto).Height; got != 900 {
		t.Fatalf("fixed height: %v", got)
	}
}
