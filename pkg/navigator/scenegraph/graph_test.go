package scenegraph

import (
	"image/color"
	"testing"
	"time"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

func TestAnimationInterpolatesAndFinishes(t *testing.T) {
	g := New(nil)
	c := g.NewSurface("home", color.NRGBA{A: 255}, color.NRGBA{A: 255}, color.NRGBA{A: 255}, true)
	g.Attach(c.Root)
	g.SetVisible(c.Root, true)

	finished := 0
	g.Translate(c.Root, 400, 0)
	g.RunAnimation(navigator.Timing{Duration: 100 * time.Millisecond, Curve: navigator.CurveLinear}, func() {
		g.Translate(c.Root, 0, 0)
	}, func() { finished++ })

	if n, _ := g.Get(c.Root); n.X != 400 {
		t.Fatalf("mutate must not apply immediately: x=%v", n.X)
	}

	start := time.Now()
	g.Advance(start)
	g.Advance(start.Add(50 * time.Millisecond))
	if n, _ := g.Get(c.Root); n.X != 200 {
		t.Fatalf("midpoint mismatch: x=%v", n.X)
	}

	if g.Advance(start.Add(100*time.Millisecond)) || finished != 1 {
		t.Fatalf("animation should be done: finished=%d", finished)
	}
	if n, _ := g.Get(c.Root); n.X != 0 {
		t.Fatalf("end value mismatch: x=%v", n.X)
	}
}

func TestNewerAnimationTakesOverProperty(t *testing.T) {
	g := New(nil)
	h := g.NewNode(KindSurface, navigator.NoHandle, "a", color.NRGBA{})
	timing := navigator.Timing{Duration: 100 * time.Millisecond}

	first, second := 0, 0
	g.RunAnimation(timing, func() { g.SetOpacity(h, 0) }, func() { first++ })
	g.RunAnimation(timing, func() { g.SetOpacity(h, 0.5) }, func() { second++ })

	now := time.Now()
	g.Advance(now)
	g.Advance(now.Add(time.Second))

	if n, _ := g.Get(h); n.Opacity != 0.5 {
		t.Fatalf("newer animation should win: %v", n.Opacity)
	}
	if first != 1 || second != 1 {
		t.Fatalf("both completions must fire once: %d %d", first, second)
	}
}

func TestImmediateSetCancelsTrack(t *testing.T) {
	g := New(nil)
	h := g.NewNode(KindSurface, navigator.NoHandle, "a", color.NRGBA{})
	g.RunAnimation(navigator.Timing{Duration: time.Second}, func() { g.Translate(h, 100, 0) }, nil)
	g.Translate(h, 0, 0)
	g.Finish()
	if n, _ := g.Get(h); n.X != 0 {
		t.Fatalf("reset must stop the running track: %v", n.X)
	}
	if g.Animating() {
		t.Fatalf("finish should drain every animation")
	}
}

func TestRequestFrameIsCoalesced(t *testing.T) {
	wakes := 0
	g := New(func() { wakes++ })
	g.RequestFrame()
	g.RequestFrame()
	if wakes != 1 {
		t.Fatalf("wake count mismatch: %d", wakes)
	}
	g.Advance(time.Now())
	g.RequestFrame()
	if wakes != 2 {
		t.Fatalf("wake after advance mismatch: %d", wakes)
	}
}

func TestVisitAndHitTestFollowAttachOrder(t *testing.T) {
	g := New(nil)
	a := g.NewNode(KindSurface, navigator.NoHandle, "a", color.NRGBA{})
	b := g.NewNode(KindSurface, navigator.NoHandle, "b", color.NRGBA{})
	for _, h := range []navigator.Handle{a, b} {
		g.Attach(h)
		g.SetVisible(h, true)
		g.SetBounds(h, navigator.Rect{W: 100, H: 100})
	}

	var seen []string
	g.Visit(func(n Node) { seen = append(seen, n.Label) })
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Fatalf("visit order mismatch: %v", seen)
	}

	if got := g.HitTest(10, 10); got != b {
		t.Fatalf("hit test should pick the top node: %v", got)
	}
	g.SetInputEnabled(b, false)
	if got := g.HitTest(10, 10); got != a {
		t.Fatalf("disabled node must be skipped: %v", got)
	}

	g.Remove(b)
	if _, ok := g.Get(b); ok {
		t.Fatalf("removed node still present")
	}
}

// The graph must drive a real controller through a full push and pop.
func TestGraphDrivesController(t *testing.T) {
	g := New(nil)
	fill := color.NRGBA{A: 255}
	nav := g.NewSurface("Menu", fill, fill, fill, false)

	ctrl := navigator.New(navigator.Options{
		NavBar: nav,
		Provider: navigator.ContentProviderFunc(func(name string, _ any) (navigator.Content, error) {
			return g.NewSurface(name, fill, fill, fill, true), nil
		}),
	})
	sess, err := navigator.NewSession(navigator.SessionOptions{Scene: g})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	ctrl.Attach(sess)

	step := func() {
		ctrl.Layout(400, 300)
		g.Finish()
		sess.Tick()
	}
	step()

	if err := ctrl.Push("detail", nil, navigator.LaunchStandard); err != nil {
		t.Fatalf("push: %v", err)
	}
	step()
	detail := ctrl.Top().Content()
	if n, _ := g.Get(nav.Root); n.Visible {
		t.Fatalf("navBar should be hidden in stack mode")
	}
	if n, _ := g.Get(detail.Root); !n.Visible || n.X != 0 || n.Opacity != 1 {
		t.Fatalf("detail not at rest: %+v", n)
	}

	ctrl.Pop()
	step()
	if n, _ := g.Get(detail.Root); n.Attached {
		t.Fatalf("popped destination should be detached")
	}
	if n, _ := g.Get(nav.Root); !n.Visible || n.X != 0 {
		t.Fatalf("navBar not restored: %+v", n)
	}
}
