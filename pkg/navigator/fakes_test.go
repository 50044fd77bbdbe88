package navigator

import (
	"fmt"
	"image/color"
	"sync"
)

// fakeScene records node state and holds animation completions until the
// test releases them.
type fakeScene struct {
	mu sync.Mutex

	attached map[Handle]bool
	visible  map[Handle]bool
	input    map[Handle]bool
	x        map[Handle]float64
	opacity  map[Handle]float64
	clip     map[Handle]Rect
	mask     map[Handle]color.NRGBA

	pending  []func()
	timings  []Timing
	frames   int
	detaches []Handle
}

func newFakeScene() *fakeScene {
	return &fakeScene{
		attached: map[Handle]bool{},
		visible:  map[Handle]bool{},
		input:    map[Handle]bool{},
		x:        map[Handle]float64{},
		opacity:  map[Handle]float64{},
		clip:     map[Handle]Rect{},
		mask:     map[Handle]color.NRGBA{},
	}
}

func (s *fakeScene) Attach(h Handle) { s.attached[h] = true }
func (s *fakeScene) Detach(h Handle) {
	s.attached[h] = false
	s.detaches = append(s.detaches, h)
}
func (s *fakeScene) SetVisible(h Handle, v bool)            { s.visible[h] = v }
func (s *fakeScene) SetInputEnabled(h Handle, enabled bool) { s.input[h] = enabled }
func (s *fakeScene) Translate(h Handle, x, _ float64)       { s.x[h] = x }
func (s *fakeScene) ClipToRect(h Handle, r Rect)            { s.clip[h] = r }
func (s *fakeScene) SetOpacity(h Handle, opacity float64)   { s.opacity[h] = opacity }
func (s *fakeScene) SetMask(h Handle, c color.NRGBA)        { s.mask[h] = c }
func (s *fakeScene) RequestFrame()                          { s.frames++ }
func (s *fakeScene) RunAnimation(t Timing, mutate, onFinish func()) {
	mutate()
	s.timings = append(s.timings, t)
	if onFinish != nil {
		s.mu.Lock()
		s.pending = append(s.pending, onFinish)
		s.mu.Unlock()
	}
}

// finishAll fires every animation completion recorded so far.
func (s *fakeScene) finishAll() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

type fakeFocus struct {
	requested []Handle
	lost      []Handle
}

func (f *fakeFocus) RequestFocus(h Handle) { f.requested = append(f.requested, h) }
func (f *fakeFocus) LoseFocus(h Handle)    { f.lost = append(f.lost, h) }

type fakeA11y struct {
	announcements []string
}

func (a *fakeA11y) NotifyPageChanged(s string) { a.announcements = append(a.announcements, s) }

// fakeProvider hands out handles in blocks of three per materialization.
type fakeProvider struct {
	known map[string]bool
	next  Handle
	calls int
}

func newFakeProvider(names ...string) *fakeProvider {
	p := &fakeProvider{known: map[string]bool{}, next: 100}
	for _, n := range names {
		p.known[n] = true
	}
	return p
}

func (p *fakeProvider) Materialize(name string, _ any) (Content, error) {
	if !p.known[name] {
		return Content{}, fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}
	p.calls++
	root := p.next
	p.next += 3
	return Content{Root: root, TitleBar: root + 1, BackButton: root + 2, Title: name}, nil
}

func (p *fakeProvider) Routes() []string {
	names := make([]string, 0, len(p.known))
	for n := range p.known {
		names = append(names, n)
	}
	return names
}

type harness struct {
	scene    *fakeScene
	focus    *fakeFocus
	a11y     *fakeA11y
	provider *fakeProvider
	sess     *Session
	ctrl     *Controller
}

var navBarContent = Content{Root: 1, TitleBar: 2, Title: "Library"}

func newHarness(opts Options) *harness {
	h := &harness{
		scene:    newFakeScene(),
		focus:    &fakeFocus{},
		a11y:     &fakeA11y{},
		provider: newFakeProvider("home", "detail", "settings", "about"),
	}
	sess, err := NewSession(SessionOptions{Scene: h.scene, Focus: h.focus, Accessibility: h.a11y})
	if err != nil {
		panic(err)
	}
	h.sess = sess
	if opts.Provider == nil {
		opts.Provider = h.provider
	}
	if opts.NavBar == (Content{}) {
		opts.NavBar = navBarContent
	}
	h.ctrl = New(opts)
	h.ctrl.Attach(sess)
	return h
}

// settle runs layout, finishes animations and drains posted completions.
func (h *harness) settle(width float64) {
	h.ctrl.Layout(width, 600)
	h.scene.finishAll()
	h.sess.Tick()
}
