package navigator

import "image/color"

// Scene is the rendering collaborator. Property setters called inside a
// RunAnimation mutate block become animation targets; outside of it they
// apply immediately. onFinish may be called from any goroutine.
type Scene interface {
	Attach(h Handle)
	Detach(h Handle)
	SetVisible(h Handle, visible bool)
	SetInputEnabled(h Handle, enabled bool)
	Translate(h Handle, x, y float64)
	ClipToRect(h Handle, r Rect)
	SetOpacity(h Handle, opacity float64)
	SetMask(h Handle, c color.NRGBA)
	RunAnimation(timing Timing, mutate func(), onFinish func())
	RequestFrame()
}

// Focus is the focus collaborator.
type Focus interface {
	RequestFocus(h Handle)
	LoseFocus(h Handle)
}

// Accessibility receives page change announcements.
type Accessibility interface {
	NotifyPageChanged(announcement string)
}

// ContentProvider materializes destination content by name.
// Unknown names must return an error wrapping ErrRouteNotFound.
type ContentProvider interface {
	Materialize(name string, params any) (Content, error)
}

// RouteLister is optionally implemented by a ContentProvider so unknown
// names can carry a suggestion.
type RouteLister interface {
	Routes() []string
}

// ContentProviderFunc adapts a function to ContentProvider.
type ContentProviderFunc func(name string, params any) (Content, error)

func (f ContentProviderFunc) Materialize(name string, params any) (Content, error) {
	return f(name, params)
}

// AnimateOpacity sets the start opacity and animates towards to.
func AnimateOpacity(scene Scene, h Handle, from, to float64, timing Timing, onFinish func()) {
	if h == NoHandle {
		if onFinish != nil {
			onFinish()
		}
		return
	}
	scene.SetOpacity(h, from)
	scene.RunAnimation(timing, func() {
		scene.SetOpacity(h, to)
	}, onFinish)
}

type noopFocus struct{}

func (noopFocus) RequestFocus(Handle) {}
func (noopFocus) LoseFocus(Handle)    {}

type noopAccessibility struct{}

func (noopAccessibility) NotifyPageChanged(string) {}
