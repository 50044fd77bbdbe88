package scenegraph

import (
	"math"
	"time"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

type property int

const (
	propX property = iota
	propY
	propOpacity
	propMask
)

type track struct {
	node     *Node
	prop     property
	from, to float64
}

type animation struct {
	timing   navigator.Timing
	start    time.Time
	started  bool
	tracks   []track
	onFinish func()
}

// RunAnimation records the property changes made by mutate as tracks that
// Advance interpolates. A property can only be driven by one animation; a
// newer animation takes it over from an older one.
func (g *Graph) RunAnimation(timing navigator.Timing, mutate func(), onFinish func()) {
	a := &animation{timing: timing, onFinish: onFinish}
	prev := g.record
	g.record = a
	mutate()
	g.record = prev

	g.anims = append(g.anims, a)
	g.RequestFrame()
}

func (g *Graph) track(n *Node, prop property, from, to float64) {
	g.cancelTrack(n.Handle, prop)
	g.record.tracks = append(g.record.tracks, track{node: n, prop: prop, from: from, to: to})
}

// cancelTrack stops animating one property. The owning animation still
// finishes on schedule.
func (g *Graph) cancelTrack(h navigator.Handle, prop property) {
	for _, a := range g.anims {
		for i := 0; i < len(a.tracks); i++ {
			if t := a.tracks[i]; t.node.Handle == h && t.prop == prop {
				a.tracks = append(a.tracks[:i], a.tracks[i+1:]...)
				i--
			}
		}
	}
}

func (g *Graph) cancelTracks(h navigator.Handle) {
	for _, p := range []property{propX, propY, propOpacity, propMask} {
		g.cancelTrack(h, p)
	}
}

// Animating reports whether any animation is still running.
func (g *Graph) Animating() bool {
	return len(g.anims) > 0
}

// Advance applies every running animation at time now and fires the
// completions of those that ended. It reports whether another frame is needed.
func (g *Graph) Advance(now time.Time) bool {
	g.framePending.Store(false)

	var done []*animation
	running := g.anims[:0]
	for _, a := range g.anims {
		if !a.started {
			a.start, a.started = now, true
		}
		p := a.progress(now)
		for _, t := range a.tracks {
			t.apply(t.from + (t.to-t.from)*ease(a.timing.Curve, p))
		}
		if p >= 1 {
			done = append(done, a)
		} else {
			running = append(running, a)
		}
	}
	g.anims = running

	for _, a := range done {
		if a.onFinish != nil {
			a.onFinish()
		}
	}
	return len(g.anims) > 0
}

// Finish jumps every running animation to its end.
func (g *Graph) Finish() {
	for len(g.anims) > 0 {
		for _, a := range g.anims {
			a.timing = navigator.Timing{Curve: a.timing.Curve}
		}
		g.Advance(time.Now())
	}
}

func (a *animation) progress(now time.Time) float64 {
	elapsed := now.Sub(a.start) - a.timing.Delay
	if elapsed < 0 {
		return 0
	}
	if a.timing.Duration <= 0 {
		return 1
	}
	return math.Min(float64(elapsed)/float64(a.timing.Duration), 1)
}

func (t track) apply(v float64) {
	switch t.prop {
	case propX:
		t.node.X = v
	case propY:
		t.node.Y = v
	case propOpacity:
		t.node.Opacity = v
	case propMask:
		t.node.Mask.A = uint8(math.Round(math.Max(0, math.Min(v, 255))))
	}
}

// ease maps linear progress onto the curve.
func ease(c navigator.Curve, p float64) float64 {
	switch c {
	case navigator.CurveFriction:
		return 1 - math.Pow(1-p, 3)
	case navigator.CurveSharp:
		if p < 0.5 {
			return 4 * p * p * p
		}
		return 1 - math.Pow(-2*p+2, 3)/2
	default:
		return p
	}
}
