// Package scenegraph is a retained node tree that implements navigator.Scene
// for backends which only know how to draw rectangles. Renderers walk the
// tree with Visit after Advance has applied the running animations.
package scenegraph

import (
	"image/color"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
)

// NodeKind tells a renderer how to draw a node.
type NodeKind int

const (
	KindSurface NodeKind = iota
	KindTitleBar
	KindBackButton
)

// Node is the drawable state of one handle. Child offsets are relative to
// the parent root.
type Node struct {
	Handle   navigator.Handle
	Kind     NodeKind
	Parent   navigator.Handle
	Label    string
	Fill     color.NRGBA
	Bounds   navigator.Rect
	Attached bool
	Visible  bool
	Input    bool
	X, Y     float64
	Opacity  float64
	Clip     navigator.Rect
	Mask     color.NRGBA
}

// Graph implements navigator.Scene. It is not safe for concurrent use except
// for RequestFrame and animation completion callbacks.
type Graph struct {
	nodes  map[navigator.Handle]*Node
	order  []navigator.Handle // attach order, bottom first
	next   navigator.Handle
	anims  []*animation
	record *animation

	wake         func()
	framePending atomic.Bool
}

// New creates an empty graph. wake is called when a frame is requested and
// none is pending yet; it may be nil.
func New(wake func()) *Graph {
	return &Graph{
		nodes: make(map[navigator.Handle]*Node),
		next:  navigator.NoHandle,
		wake:  wake,
	}
}

// NewNode creates a node. Pass navigator.NoHandle as parent for a surface root.
func (g *Graph) NewNode(kind NodeKind, parent navigator.Handle, label string, fill color.NRGBA) navigator.Handle {
	g.next++
	h := g.next
	g.nodes[h] = &Node{
		Handle:  h,
		Kind:    kind,
		Parent:  parent,
		Label:   label,
		Fill:    fill,
		Input:   true,
		Opacity: 1,
	}
	return h
}

// NewSurface creates a root with a title bar and, optionally, a back button.
func (g *Graph) NewSurface(title string, fill, bar, back color.NRGBA, withBack bool) navigator.Content {
	root := g.NewNode(KindSurface, navigator.NoHandle, title, fill)
	content := navigator.Content{
		Root:     root,
		TitleBar: g.NewNode(KindTitleBar, root, title, bar),
		Title:    title,
	}
	if withBack {
		content.BackButton = g.NewNode(KindBackButton, root, "", back)
	}
	return content
}

// Remove drops a node and its children.
func (g *Graph) Remove(h navigator.Handle) {
	g.Detach(h)
	for child, n := range g.nodes {
		if n.Parent == h {
			delete(g.nodes, child)
		}
	}
	delete(g.nodes, h)
}

// SetBounds places a node. Roots use container coordinates, children are
// relative to their root.
func (g *Graph) SetBounds(h navigator.Handle, r navigator.Rect) {
	if n := g.nodes[h]; n != nil {
		n.Bounds = r
	}
}

// Get returns a copy of the node state.
func (g *Graph) Get(h navigator.Handle) (Node, bool) {
	n, ok := g.nodes[h]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Children returns the children of h in creation order.
func (g *Graph) Children(h navigator.Handle) []Node {
	var out []Node
	for i := navigator.Handle(1); i <= g.next; i++ {
		if n, ok := g.nodes[i]; ok && n.Parent == h {
			out = append(out, *n)
		}
	}
	return out
}

// Visit calls fn for every attached, visible root from bottom to top.
func (g *Graph) Visit(fn func(n Node)) {
	for _, h := range g.order {
		if n := g.nodes[h]; n != nil && n.Visible {
			fn(*n)
		}
	}
}

// HitTest returns the topmost input-enabled root containing the point.
func (g *Graph) HitTest(x, y float64) navigator.Handle {
	for i := len(g.order) - 1; i >= 0; i-- {
		n := g.nodes[g.order[i]]
		if n == nil || !n.Visible || !n.Input {
			continue
		}
		r := n.Bounds
		r.X += n.X
		if r.Contains(x, y) {
			return n.Handle
		}
	}
	return navigator.NoHandle
}

func (g *Graph) Attach(h navigator.Handle) {
	n := g.nodes[h]
	if n == nil || n.Attached {
		return
	}
	n.Attached = true
	if n.Parent == navigator.NoHandle {
		g.order = append(g.order, h)
	}
}

func (g *Graph) Detach(h navigator.Handle) {
	n := g.nodes[h]
	if n == nil || !n.Attached {
		return
	}
	n.Attached = false
	n.Visible = false
	for i, o := range g.order {
		if o == h {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	g.cancelTracks(h)
}

func (g *Graph) SetVisible(h navigator.Handle, visible bool) {
	if n := g.nodes[h]; n != nil {
		n.Visible = visible
	}
}

func (g *Graph) SetInputEnabled(h navigator.Handle, enabled bool) {
	if n := g.nodes[h]; n != nil {
		n.Input = enabled
	}
}

func (g *Graph) Translate(h navigator.Handle, x, y float64) {
	n := g.nodes[h]
	if n == nil {
		return
	}
	if g.record != nil {
		g.track(n, propX, n.X, x)
		g.track(n, propY, n.Y, y)
		return
	}
	g.cancelTrack(h, propX)
	g.cancelTrack(h, propY)
	n.X, n.Y = x, y
}

func (g *Graph) ClipToRect(h navigator.Handle, r navigator.Rect) {
	if n := g.nodes[h]; n != nil {
		n.Clip = r
	}
}

func (g *Graph) SetOpacity(h navigator.Handle, opacity float64) {
	n := g.nodes[h]
	if n == nil {
		return
	}
	if g.record != nil {
		g.track(n, propOpacity, n.Opacity, opacity)
		return
	}
	g.cancelTrack(h, propOpacity)
	n.Opacity = opacity
}

func (g *Graph) SetMask(h navigator.Handle, c color.NRGBA) {
	n := g.nodes[h]
	if n == nil {
		return
	}
	if g.record != nil {
		n.Mask = color.NRGBA{R: c.R, G: c.G, B: c.B, A: n.Mask.A}
		g.track(n, propMask, float64(n.Mask.A), float64(c.A))
		return
	}
	g.cancelTrack(h, propMask)
	n.Mask = c
}

// RequestFrame asks the backend for another frame. Calls are coalesced
// until the next Advance.
func (g *Graph) RequestFrame() {
	if g.framePending.CompareAndSwap(false, true) && g.wake != nil {
		g.wake()
	}
}

// PlaceSurface positions a surface root at r and lays out its title bar
// across the top with the back button at its leading edge.
func (g *Graph) PlaceSurface(c navigator.Content, r navigator.Rect, barHeight float64) {
	g.SetBounds(c.Root, r)
	g.SetBounds(c.TitleBar, navigator.Rect{W: r.W, H: barHeight})
	pad := barHeight / 6
	g.SetBounds(c.BackButton, navigator.Rect{X: pad, Y: pad, W: barHeight - 2*pad, H: barHeight - 2*pad})
}

// Roots returns every surface root in creation order, attached or not.
func (g *Graph) Roots() []navigator.Handle {
	var out []navigator.Handle
	for i := navigator.Handle(1); i <= g.next; i++ {
		if n, ok := g.nodes[i]; ok && n.Parent == navigator.NoHandle {
			out = append(out, i)
		}
	}
	return out
}
