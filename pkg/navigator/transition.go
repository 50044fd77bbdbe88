package navigator

import (
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// TransitionRequest is one transition handed to the Engine.
type TransitionRequest struct {
	Op             Operation
	Topology       Mode
	Outgoing       Surface // nil when nothing leaves
	Incoming       Surface // nil when nothing enters
	RemoveOutgoing bool    // Outgoing destination left the stack and is detached on completion
	Width          float64 // Width the slide fractions refer to
	Clip           Rect    // Content region for split recipes
	Depth          int     // Stack depth after the change, for the announcement

	// Removed reports at completion time whether the outgoing destination has
	// left the stack since the transition started.
	Removed func(d *Destination) bool

	// OnRemoved runs after a removed outgoing destination was detached.
	OnRemoved func(d *Destination)
}

// Engine runs transition recipes on the session's scene.
type Engine struct {
	started    atomic.Int64
	completed  atomic.Int64
	stale      atomic.Int64
	superseded atomic.Int64
}

// NewEngine creates a transition engine.
func NewEngine() *Engine {
	return &Engine{}
}

// EngineStats counts transitions since the engine was created.
type EngineStats struct {
	Started    int64
	Completed  int64
	Stale      int64 // Completions dropped because a newer transition took over
	Superseded int64 // Transitions started on a surface that was still animating
}

func (e *Engine) Stats() EngineStats {
	return EngineStats{
		Started:    e.started.Load(),
		Completed:  e.completed.Load(),
		Stale:      e.stale.Load(),
		Superseded: e.superseded.Load(),
	}
}

// Start runs the recipe for req. The primary curve's completion is posted to
// the session queue and applies only to surfaces whose generation is still
// the one captured here.
func (e *Engine) Start(sess *Session, req TransitionRequest) {
	if sess == nil {
		internal.GetInternalLogger().Debug("Transition skipped", "op", req.Op.String(), "error", ErrLayoutUnavailable)
		return
	}
	if req.Outgoing == nil && req.Incoming == nil {
		return
	}

	scene := sess.scene
	timings := sess.timings
	recipe := RecipeFor(req.Topology, req.Op, timings)

	outGen := e.begin(sess, req.Outgoing, req.Op)
	inGen := e.begin(sess, req.Incoming, req.Op)
	e.started.Inc()

	sess.logger.Debug("Transition started",
		"op", req.Op.String(),
		"topology", recipe.Topology.String(),
		"outgoing", surfaceName(req.Outgoing),
		"incoming", surfaceName(req.Incoming),
	)

	if req.Incoming != nil {
		show(scene, req.Incoming)
	}
	if req.Outgoing != nil {
		show(scene, req.Outgoing)
	}

	out, in := contentOf(req.Outgoing), contentOf(req.Incoming)
	width := req.Width

	if recipe.Clip {
		clipTo(scene, out.Root, req.Clip)
		clipTo(scene, in.Root, req.Clip)
	}

	if recipe.CrossFade {
		setInput(scene, out.Root, false)
		setInput(scene, in.Root, false)
		setOpacity(scene, out.Root, recipe.OutOpacity.From)
		setOpacity(scene, in.Root, recipe.InOpacity.From)
	} else if recipe.Op == OpModeChange {
		setOpacity(scene, in.Root, recipe.InOpacity.From)
	} else {
		translate(scene, out.Root, recipe.OutContent.From*width)
		translate(scene, in.Root, recipe.InContent.From*width)
		translate(scene, out.TitleBar, recipe.OutTitle.From*width)
		translate(scene, in.TitleBar, recipe.InTitle.From*width)
	}

	var covered Handle
	if recipe.Mask {
		covered = out.Root
		if recipe.MaskOnIncoming {
			covered = in.Root
		}
		setMask(scene, covered, recipe.MaskFrom)
	}

	finished := false
	complete := func() {
		if finished {
			return
		}
		finished = true
		e.complete(sess, req, outGen, inGen)
	}

	scene.RunAnimation(recipe.primaryTiming(timings), func() {
		switch {
		case recipe.CrossFade:
			setOpacity(scene, out.Root, recipe.OutOpacity.To)
			setOpacity(scene, in.Root, recipe.InOpacity.To)
		case recipe.Op == OpModeChange:
			setOpacity(scene, in.Root, recipe.InOpacity.To)
		default:
			translate(scene, out.Root, recipe.OutContent.To*width)
			translate(scene, in.Root, recipe.InContent.To*width)
			translate(scene, out.TitleBar, recipe.OutTitle.To*width)
			translate(scene, in.TitleBar, recipe.InTitle.To*width)
		}
		if recipe.Mask {
			setMask(scene, covered, recipe.MaskTo)
		}
	}, func() {
		sess.Post(complete)
	})

	if recipe.CrossFade || recipe.Op == OpModeChange {
		return
	}

	AnimateOpacity(scene, out.TitleBar, recipe.OutTitleOpacity.From, recipe.OutTitleOpacity.To,
		rampTiming(recipe.OutTitleOpacity, timings), nil)
	AnimateOpacity(scene, in.TitleBar, recipe.InTitleOpacity.From, recipe.InTitleOpacity.To,
		rampTiming(recipe.InTitleOpacity, timings), nil)

	backIcon := out.BackButton
	if recipe.BackIconOnIncoming {
		backIcon = in.BackButton
	}
	AnimateOpacity(scene, backIcon, recipe.BackIcon.From, recipe.BackIcon.To,
		rampTiming(recipe.BackIcon, timings), nil)
}

// StartModeChange fades in the surfaces that became visible because the
// resolved mode flipped.
func (e *Engine) StartModeChange(sess *Session, topology Mode, surfaces ...Surface) {
	for _, s := range surfaces {
		if s == nil {
			continue
		}
		e.Start(sess, TransitionRequest{Op: OpModeChange, Topology: topology, Incoming: s})
	}
}

// begin bumps the surface generation, superseding any transition in flight.
func (e *Engine) begin(sess *Session, s Surface, op Operation) uint64 {
	if s == nil {
		return 0
	}
	st := s.state()
	gen, superseded := st.begin(op)
	if superseded {
		e.superseded.Inc()
		sess.logger.Debug("Transition superseded", "surface", surfaceName(s), "generation", gen)
		resetNode(sess.scene, st.content)
	}
	return gen
}

func (e *Engine) complete(sess *Session, req TransitionRequest, outGen, inGen uint64) {
	outCurrent := req.Outgoing != nil && req.Outgoing.state().finish(outGen)
	inCurrent := req.Incoming != nil && req.Incoming.state().finish(inGen)

	if !outCurrent && !inCurrent {
		e.stale.Inc()
		sess.logger.Debug("Transition completion dropped",
			"op", req.Op.String(),
			"outgoing", surfaceName(req.Outgoing),
			"incoming", surfaceName(req.Incoming),
			"error", ErrStaleTransition,
		)
		return
	}

	scene := sess.scene
	if outCurrent && req.Op != OpModeChange {
		st := req.Outgoing.state()
		scene.SetVisible(st.content.Root, false)
		st.visible = false
		resetNode(scene, st.content)

		if d, ok := req.Outgoing.(*Destination); ok && req.removes(d) {
			scene.Detach(st.content.Root)
			st.attached = false
			if req.OnRemoved != nil {
				req.OnRemoved(d)
			}
		}
	}
	if inCurrent {
		st := req.Incoming.state()
		clipTo(scene, st.content.Root, Rect{})
		setInput(scene, st.content.Root, true)
	}

	sess.a11y.NotifyPageChanged(e.announcement(sess, req))
	scene.RequestFrame()
	e.completed.Inc()
}

func (req TransitionRequest) removes(d *Destination) bool {
	return req.RemoveOutgoing || (req.Removed != nil && req.Removed(d))
}

func (e *Engine) announcement(sess *Session, req TransitionRequest) string {
	if req.Incoming == nil || req.Incoming.Kind() == SurfaceNavBar {
		title := sess.messages.NavBarTitle()
		if req.Incoming != nil && req.Incoming.Content().Title != "" {
			title = req.Incoming.Content().Title
		}
		return sess.messages.PageChanged(title, req.Depth)
	}
	title := req.Incoming.Content().Title
	if title == "" {
		title = req.Incoming.Name()
	}
	return sess.messages.PageChanged(title, req.Depth)
}

func contentOf(s Surface) Content {
	if s == nil {
		return Content{}
	}
	return s.Content()
}

func show(scene Scene, s Surface) {
	st := s.state()
	if !st.attached {
		scene.Attach(st.content.Root)
		st.attached = true
	}
	if !st.visible {
		scene.SetVisible(st.content.Root, true)
		st.visible = true
	}
}

// resetNode returns a node to its resting state between transitions.
func resetNode(scene Scene, c Content) {
	translate(scene, c.Root, 0)
	setOpacity(scene, c.Root, 1)
	setMask(scene, c.Root, 0)
	clipTo(scene, c.Root, Rect{})
	setInput(scene, c.Root, true)
	translate(scene, c.TitleBar, 0)
	setOpacity(scene, c.TitleBar, 1)
	setOpacity(scene, c.BackButton, 1)
}

func translate(scene Scene, h Handle, x float64) {
	if h != NoHandle {
		scene.Translate(h, x, 0)
	}
}

func setOpacity(scene Scene, h Handle, v float64) {
	if h != NoHandle {
		scene.SetOpacity(h, v)
	}
}

func setInput(scene Scene, h Handle, enabled bool) {
	if h != NoHandle {
		scene.SetInputEnabled(h, enabled)
	}
}

// clipTo clips h to r; an empty rect removes the clip.
func clipTo(scene Scene, h Handle, r Rect) {
	if h != NoHandle {
		scene.ClipToRect(h, r)
	}
}

func setMask(scene Scene, h Handle, alpha uint8) {
	if h == NoHandle {
		return
	}
	c := internal.GetTheme().ScrimColor
	c.A = alpha
	scene.SetMask(h, c)
}
