package navigator

import (
	"log/slog"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// LifecycleEvent is a visibility change of a surface.
type LifecycleEvent int

const (
	EventShown LifecycleEvent = iota
	EventHidden
)

func (e LifecycleEvent) String() string {
	if e == EventShown {
		return "shown"
	}
	return "hidden"
}

// Options configures a Controller.
type Options struct {
	Provider    ContentProvider // Materializes destinations by name
	NavBar      Content         // Content of the navBar surface
	Mode        Mode            // Requested mode, Auto by default
	Constraints Constraints
	AutoHeight  bool    // Container height follows the visible surfaces
	Engine      *Engine // Optional, a new engine by default
}

// Controller owns the navigation stack and keeps lifecycle, layout and
// transitions consistent with the visible topology. All methods must be
// called from the session's UI goroutine.
type Controller struct {
	session *Session
	stack   *Stack
	navBar  *NavBar
	engine  *Engine

	mode        Mode
	resolved    Mode
	laidOut     bool
	constraints Constraints
	container   Container
	size        SizeState
	divider     Rect

	top *Destination // non-owning, the last top the lifecycle was synced to

	drag Drag

	onLifecycle     []func(s Surface, ev LifecycleEvent)
	onModeChange    []func(m Mode)
	onNavBarVisible []func(visible bool)
	onNavBarWidth   []func(width float64)
}

// New creates a controller. It does nothing visible until a session is attached.
func New(opts Options) *Controller {
	engine := opts.Engine
	if engine == nil {
		engine = NewEngine()
	}
	c := &Controller{
		stack:       NewStack(opts.Provider),
		navBar:      NewNavBar(opts.NavBar),
		engine:      engine,
		mode:        opts.Mode,
		constraints: opts.Constraints,
		container:   Container{AutoHeight: opts.AutoHeight},
	}
	c.resolved = ResolveMode(0, c.constraints, c.mode)
	c.size.Mode = c.resolved
	return c
}

// Attach binds the controller to a session and shows the initial surface.
func (c *Controller) Attach(sess *Session) {
	c.session = sess
	if sess == nil {
		return
	}
	if c.stack.IsEmpty() || c.wantNavBar(c.stack.Top()) {
		show(sess.scene, c.navBar)
	}
	c.sync(sess, OpNone)
	sess.scene.RequestFrame()
}

// Detach unbinds the session. Later calls are skipped until the next Attach.
// Removed destinations still waiting for their exit animation are released.
func (c *Controller) Detach() {
	if sess := c.session; sess != nil {
		for _, d := range c.stack.Backup() {
			d.st.cancel()
			sess.scene.Detach(d.st.content.Root)
			d.st.attached = false
			c.stack.Release(d)
		}
	}
	c.session = nil
}

// activeSession returns the session or logs the soft no-op.
func (c *Controller) activeSession(op string) *Session {
	if c.session == nil {
		internal.GetInternalLogger().Debug("Navigation call skipped", "op", op, "error", ErrLayoutUnavailable)
	}
	return c.session
}

func (c *Controller) logger() *slog.Logger {
	if c.session != nil {
		return c.session.logger
	}
	return internal.GetInternalLogger()
}

// Push adds name to the stack. With LaunchSingle or LaunchPopToSingle an
// existing destination with the same name is reused and its params replaced.
// Unknown names return an error wrapping ErrRouteNotFound and leave the
// stack unchanged.
func (c *Controller) Push(name string, params any, launch LaunchMode) error {
	sess := c.activeSession("push")
	if sess == nil {
		return nil
	}

	paths := c.stack.Paths()
	idx := -1
	if launch != LaunchStandard {
		idx = c.stack.Find(name)
	}

	switch {
	case idx < 0:
		paths = append(paths, PathInfo{Name: name, Params: params})
	case launch == LaunchSingle:
		existing := paths[idx]
		existing.Params = params
		paths = append(paths[:idx], paths[idx+1:]...)
		paths = append(paths, existing)
	default:
		paths = paths[:idx+1]
		paths[idx].Params = params
	}

	if _, err := c.stack.Reconcile(paths, false); err != nil {
		c.logger().Warn("Push failed", "name", name, "error", err)
		return err
	}
	c.sync(sess, OpPush)
	return nil
}

// Replace swaps the top destination for a new one. The new record is always
// distinct from the old one, even when the name is unchanged.
func (c *Controller) Replace(name string, params any) error {
	sess := c.activeSession("replace")
	if sess == nil {
		return nil
	}

	paths := c.stack.Paths()
	entry := PathInfo{Name: name, Params: params}
	if len(paths) == 0 {
		paths = append(paths, entry)
	} else {
		paths[len(paths)-1] = entry
	}

	if _, err := c.stack.Reconcile(paths, true); err != nil {
		c.logger().Warn("Replace failed", "name", name, "error", err)
		return err
	}
	c.sync(sess, OpReplace)
	return nil
}

// Pop removes the top destination. It reports whether anything was popped.
func (c *Controller) Pop() bool {
	return c.popTo(c.stack.Len()-1, "pop")
}

// PopTo pops every destination above the topmost one named name.
func (c *Controller) PopTo(name string) bool {
	idx := c.stack.Find(name)
	if idx < 0 {
		return false
	}
	return c.popTo(idx+1, "pop_to")
}

// Clear pops every destination, returning to the navBar.
func (c *Controller) Clear() bool {
	return c.popTo(0, "clear")
}

// popTo keeps the first keep destinations.
func (c *Controller) popTo(keep int, op string) bool {
	sess := c.activeSession(op)
	if sess == nil || keep < 0 || keep >= c.stack.Len() {
		return false
	}
	if keep == 0 && c.emptyDetailGuard() {
		c.logger().Debug("Pop rejected, split detail would be empty with hidden navBar", "op", op)
		return false
	}

	if _, err := c.stack.Reconcile(c.stack.Paths()[:keep], false); err != nil {
		c.logger().Error("Pop failed", "op", op, "error", err)
		return false
	}
	c.sync(sess, OpPop)
	return true
}

// emptyDetailGuard reports whether emptying the stack would leave a blank
// screen: Split mode with the navBar hidden.
func (c *Controller) emptyDetailGuard() bool {
	return c.resolved == ModeSplit && c.constraints.HideNavBar
}

// BackPressed handles a system back press. The top destination's override
// runs first; otherwise the top is popped. It reports whether the press was
// consumed; false means the stack was empty and the app may handle it.
func (c *Controller) BackPressed() bool {
	if c.activeSession("back_press") == nil {
		return false
	}
	top := c.stack.Top()
	if top == nil {
		return false
	}
	if override := top.BackPressOverride(); override != nil && override() {
		return true
	}
	if c.stack.Len() == 1 && c.emptyDetailGuard() {
		c.logger().Debug("Back press ignored, split detail would be empty with hidden navBar")
		return true
	}
	return c.Pop()
}

// sync reconciles lifecycle and transitions with the current stack top.
func (c *Controller) sync(sess *Session, op Operation) {
	prev := c.top
	next := c.stack.Top()

	c.applyLifecycle(sess, prev, next)
	c.top = next

	if prev != next || op == OpReplace {
		c.scheduleTransition(sess, op, prev, next)
	}
	c.scheduleCleanup(sess)
	sess.scene.RequestFrame()
}

func (c *Controller) wantNavBar(top *Destination) bool {
	if c.resolved == ModeSplit {
		return !c.constraints.HideNavBar || top == nil
	}
	return top == nil
}

// applyLifecycle fires hidden before shown, each only on an actual change.
func (c *Controller) applyLifecycle(sess *Session, prev, next *Destination) {
	wantNav := c.wantNavBar(next)

	if prev != nil && prev != next && prev.st.shown {
		c.hide(sess, prev)
	}
	if c.navBar.st.shown && !wantNav {
		c.hide(sess, c.navBar)
	}
	if wantNav && !c.navBar.st.shown {
		c.reveal(sess, c.navBar)
	}
	if next != nil && !next.st.shown {
		c.reveal(sess, next)
	}
}

func (c *Controller) hide(sess *Session, s Surface) {
	st := s.state()
	st.shown = false
	sess.focus.LoseFocus(st.content.Root)
	if d, ok := s.(*Destination); ok && d.onHidden != nil {
		d.onHidden()
	}
	c.emitLifecycle(s, EventHidden)
}

func (c *Controller) reveal(sess *Session, s Surface) {
	st := s.state()
	st.shown = true
	if d, ok := s.(*Destination); ok && d.onShown != nil {
		d.onShown()
	}
	c.emitLifecycle(s, EventShown)

	root := st.content.Root
	sess.postAfterLayout(func() {
		if st.shown {
			sess.focus.RequestFocus(root)
		}
	})
}

func (c *Controller) emitLifecycle(s Surface, ev LifecycleEvent) {
	c.logger().Debug("Lifecycle", "surface", surfaceName(s), "event", ev.String())
	for _, fn := range c.onLifecycle {
		fn(s, ev)
	}
	if s.Kind() == SurfaceNavBar {
		for _, fn := range c.onNavBarVisible {
			fn(ev == EventShown)
		}
	}
}

// surfaceFor maps a stack top to the surface that represents it on screen.
func (c *Controller) surfaceFor(d *Destination) Surface {
	if d != nil {
		return d
	}
	if c.resolved == ModeStack {
		return c.navBar
	}
	return nil
}

func (c *Controller) scheduleTransition(sess *Session, op Operation, prev, next *Destination) {
	removed := prev != nil && c.stack.IndexOf(prev) == -1
	kind := OpPush
	switch {
	case op == OpReplace:
		kind = OpReplace
	case removed:
		kind = OpPop
	}

	sess.postAfterLayout(func() {
		// The layout pass may have flipped the mode since the mutation.
		outgoing, incoming := c.surfaceFor(prev), c.surfaceFor(next)
		if outgoing == nil && incoming == nil {
			return
		}
		width := c.size.ContentWidth
		if c.resolved == ModeStack {
			width = c.container.Width
		}
		c.engine.Start(sess, TransitionRequest{
			Op:             kind,
			Topology:       c.resolved,
			Outgoing:       outgoing,
			Incoming:       incoming,
			RemoveOutgoing: removed,
			Width:          width,
			Clip:           ContentRect(c.size),
			Depth:          c.stack.Len(),
			Removed:        c.stack.InBackup,
			OnRemoved: func(d *Destination) {
				c.stack.Release(d)
			},
		})
	})
}

// scheduleCleanup detaches removed destinations that have no exit animation
// of their own once the layout pass that removed them has completed.
func (c *Controller) scheduleCleanup(sess *Session) {
	sess.postAfterLayout(func() {
		for _, d := range c.stack.Backup() {
			if d.IsOnAnimation() {
				continue
			}
			if d.st.attached {
				sess.scene.Detach(d.st.content.Root)
				d.st.attached = false
				d.st.visible = false
			}
			c.stack.Release(d)
		}
	})
}

// Layout runs one layout pass for a container of the given size.
func (c *Controller) Layout(width, height float64) SizeState {
	container := c.container
	container.Width, container.Height = width, height
	return c.LayoutContainer(container)
}

// LayoutContainer runs one layout pass with measured heights. Tasks waiting
// for layout, such as focus requests and transitions, run at the end.
func (c *Controller) LayoutContainer(container Container) SizeState {
	sess := c.activeSession("layout")
	if sess == nil {
		return c.size
	}

	container.HasDestinations = !c.stack.IsEmpty()
	c.container = container

	size := Size(container, c.constraints, c.drag, c.mode)
	previous := c.resolved
	flipped := c.laidOut && previous != size.Mode
	c.resolved = size.Mode
	c.size = size
	c.laidOut = true

	if previous != size.Mode {
		c.applyModeChange(sess, flipped)
	}

	c.divider = DividerRegion(size)
	if c.drag.Active && c.divider.Empty() {
		c.logger().Debug("Divider drag cancelled", "mode", size.Mode.String())
		c.drag = Drag{}
	}
	sess.flushAfterLayout()
	return size
}

func (c *Controller) applyModeChange(sess *Session, flipped bool) {
	top := c.stack.Top()
	navWasShown := c.navBar.st.shown

	c.applyLifecycle(sess, c.top, top)
	c.top = top

	if flipped {
		c.logger().Info("Navigation mode changed", "mode", c.resolved.String())
		for _, fn := range c.onModeChange {
			fn(c.resolved)
		}
	}

	switch {
	case c.navBar.st.shown && !navWasShown:
		if flipped {
			c.engine.StartModeChange(sess, c.resolved, c.navBar)
		} else {
			show(sess.scene, c.navBar)
		}
	case !c.navBar.st.shown && c.navBar.st.visible:
		c.navBar.st.cancel()
		resetNode(sess.scene, c.navBar.st.content)
		sess.scene.SetVisible(c.navBar.st.content.Root, false)
		c.navBar.st.visible = false
	}
	if top != nil && !top.IsOnAnimation() {
		resetNode(sess.scene, top.st.content)
		show(sess.scene, top)
	}
}

// SetNavBarWidth sets the user-declared navBar width.
func (c *Controller) SetNavBarWidth(width float64) {
	c.constraints.NavBarWidth = width
	c.constraints.NavBarWidthSet = width > 0
	c.requestFrame()
}

// SetConstraints replaces all sizing rules.
func (c *Controller) SetConstraints(constraints Constraints) {
	hidden := c.constraints.HideNavBar
	c.constraints = constraints
	if hidden != constraints.HideNavBar {
		c.syncNavBar()
	}
	c.requestFrame()
}

// SetMode sets the requested mode. The resolved mode follows on the next layout.
func (c *Controller) SetMode(mode Mode) {
	c.mode = mode
	c.requestFrame()
}

// SetNavBarHidden hides or shows the navBar in Split mode.
func (c *Controller) SetNavBarHidden(hidden bool) {
	if c.constraints.HideNavBar == hidden {
		return
	}
	c.constraints.HideNavBar = hidden
	c.syncNavBar()
	c.requestFrame()
}

func (c *Controller) syncNavBar() {
	sess := c.activeSession("navbar_visibility")
	if sess == nil {
		return
	}
	wasShown := c.navBar.st.shown
	c.applyLifecycle(sess, c.top, c.stack.Top())
	switch {
	case c.navBar.st.shown && !wasShown:
		show(sess.scene, c.navBar)
	case !c.navBar.st.shown && wasShown:
		sess.scene.SetVisible(c.navBar.st.content.Root, false)
		c.navBar.st.visible = false
	}
}

func (c *Controller) requestFrame() {
	if sess := c.activeSession("request_frame"); sess != nil {
		sess.scene.RequestFrame()
	}
}

// BeginDividerDrag starts an interactive navBar resize. It is refused
// outside Split mode.
func (c *Controller) BeginDividerDrag() bool {
	if c.resolved != ModeSplit || c.divider.Empty() {
		return false
	}
	c.drag = Drag{Active: true, StartWidth: c.size.NavBarWidth}
	return true
}

// UpdateDividerDrag moves the divider by offset relative to the drag start.
func (c *Controller) UpdateDividerDrag(offset float64) {
	if !c.drag.Active {
		return
	}
	c.drag.Offset = offset
	c.requestFrame()
}

// EndDividerDrag commits the dragged width as the user navBar width. A drag
// that no longer has a Split divider is dropped without a commit.
func (c *Controller) EndDividerDrag() {
	if !c.drag.Active {
		return
	}
	size := Size(c.container, c.constraints, c.drag, c.mode)
	c.drag = Drag{}
	if size.Mode != ModeSplit || size.NavBarWidth <= 0 {
		c.logger().Debug("Divider drag dropped", "mode", size.Mode.String())
		return
	}
	width := size.NavBarWidth
	c.constraints.NavBarWidth = width
	c.constraints.NavBarWidthSet = true
	for _, fn := range c.onNavBarWidth {
		fn(width)
	}
	c.requestFrame()
}

// Dragging reports whether a divider drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.Active
}

// OnLifecycle subscribes to shown / hidden events of every surface.
func (c *Controller) OnLifecycle(fn func(s Surface, ev LifecycleEvent)) {
	c.onLifecycle = append(c.onLifecycle, fn)
}

// OnModeChange subscribes to flips of the resolved mode.
func (c *Controller) OnModeChange(fn func(m Mode)) {
	c.onModeChange = append(c.onModeChange, fn)
}

// OnNavBarVisibilityChange subscribes to the navBar being shown or hidden.
func (c *Controller) OnNavBarVisibilityChange(fn func(visible bool)) {
	c.onNavBarVisible = append(c.onNavBarVisible, fn)
}

// OnNavBarWidthChange subscribes to navBar widths committed by a divider drag.
func (c *Controller) OnNavBarWidthChange(fn func(width float64)) {
	c.onNavBarWidth = append(c.onNavBarWidth, fn)
}

// Stack exposes the stack for inspection. Mutate it only through the controller.
func (c *Controller) Stack() *Stack { return c.stack }

// Top returns the top destination, or nil when the navBar is the visible page.
func (c *Controller) Top() *Destination { return c.stack.Top() }

// NavBar returns the navBar surface.
func (c *Controller) NavBar() *NavBar { return c.navBar }

// Engine returns the transition engine.
func (c *Controller) Engine() *Engine { return c.engine }

// Mode returns the resolved mode of the latest layout pass.
func (c *Controller) Mode() Mode { return c.resolved }

// Size returns the result of the latest layout pass.
func (c *Controller) Size() SizeState { return c.size }

// Constraints returns the current sizing rules.
func (c *Controller) Constraints() Constraints { return c.constraints }

// DividerRegion returns the divider hit-test rectangle of the latest layout.
func (c *Controller) DividerRegion() Rect { return c.divider }
