package navigator

import (
	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// SurfaceKind distinguishes the two variants of Surface.
type SurfaceKind int

const (
	SurfaceNavBar SurfaceKind = iota
	SurfaceDestination
)

func (k SurfaceKind) String() string {
	if k == SurfaceNavBar {
		return "navbar"
	}
	return "destination"
}

// Surface is either the NavBar or a Destination. The set is closed: only
// this package implements it.
type Surface interface {
	Kind() SurfaceKind
	Name() string
	Content() Content
	IsShown() bool
	IsOnAnimation() bool
	state() *surfaceState
}

// surfaceState is the per-node bookkeeping shared by both variants.
// generation increases on every transition start or cancellation; a
// completion only applies if the generation it captured is still current.
type surfaceState struct {
	content  Content
	shown    bool
	attached bool
	visible  bool

	generation  atomic.Uint64
	onAnimation atomic.Bool
	tag         Operation
}

// begin starts a transition and reports whether it superseded one in flight.
func (s *surfaceState) begin(op Operation) (gen uint64, superseded bool) {
	superseded = s.onAnimation.Load()
	gen = s.generation.Inc()
	s.tag = op
	s.onAnimation.Store(true)
	return gen, superseded
}

func (s *surfaceState) isCurrent(gen uint64) bool {
	return s.generation.Load() == gen
}

// finish clears the busy flag if gen is still current.
func (s *surfaceState) finish(gen uint64) bool {
	if !s.isCurrent(gen) {
		return false
	}
	s.onAnimation.Store(false)
	s.tag = OpNone
	return true
}

// cancel invalidates any pending completion without starting a new one.
func (s *surfaceState) cancel() {
	s.generation.Inc()
	s.onAnimation.Store(false)
	s.tag = OpNone
}

// NavBar is the persistent master surface.
type NavBar struct {
	st surfaceState
}

// NewNavBar wraps the navBar content.
func NewNavBar(content Content) *NavBar {
	return &NavBar{st: surfaceState{content: content}}
}

func (n *NavBar) Kind() SurfaceKind    { return SurfaceNavBar }
func (n *NavBar) Name() string         { return n.st.content.Title }
func (n *NavBar) Content() Content     { return n.st.content }
func (n *NavBar) IsShown() bool        { return n.st.shown }
func (n *NavBar) IsOnAnimation() bool  { return n.st.onAnimation.Load() }
func (n *NavBar) state() *surfaceState { return &n.st }

// TransitionTag returns the operation currently animating the navBar.
func (n *NavBar) TransitionTag() Operation { return n.st.tag }

// Destination is one entry of the navigation stack.
type Destination struct {
	st surfaceState

	id     uuid.UUID
	name   string
	params any

	backPress func() bool
	onShown   func()
	onHidden  func()

	inBackup bool
}

func newDestination(name string, params any, content Content) *Destination {
	return &Destination{
		st:     surfaceState{content: content},
		id:     uuid.New(),
		name:   name,
		params: params,
	}
}

func (d *Destination) Kind() SurfaceKind    { return SurfaceDestination }
func (d *Destination) Name() string         { return d.name }
func (d *Destination) Content() Content     { return d.st.content }
func (d *Destination) IsShown() bool        { return d.st.shown }
func (d *Destination) IsOnAnimation() bool  { return d.st.onAnimation.Load() }
func (d *Destination) state() *surfaceState { return &d.st }

// ID identifies this record. A replace always yields a new ID even when the
// name is unchanged.
func (d *Destination) ID() uuid.UUID { return d.id }

// Params returns the parameters of the latest push that targeted this record.
func (d *Destination) Params() any { return d.params }

// TransitionTag returns the operation currently animating this destination.
func (d *Destination) TransitionTag() Operation { return d.st.tag }

// SetOnBackPressed installs a back press override. It returns true when it
// consumed the event.
func (d *Destination) SetOnBackPressed(fn func() bool) {
	d.backPress = fn
}

// SetOnShown registers a callback fired when the destination becomes visible.
func (d *Destination) SetOnShown(fn func()) {
	d.onShown = fn
}

// SetOnHidden registers a callback fired when the destination stops being visible.
func (d *Destination) SetOnHidden(fn func()) {
	d.onHidden = fn
}

// BackPressOverride returns the installed back press override, or nil.
func (d *Destination) BackPressOverride() func() bool {
	return d.backPress
}

func surfaceName(s Surface) string {
	if s == nil {
		return ""
	}
	if s.Kind() == SurfaceNavBar {
		return "navbar"
	}
	return s.Name()
}
