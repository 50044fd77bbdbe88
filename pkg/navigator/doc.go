// Package navigator implements a navigation container: an ordered stack of
// destinations shown either one at a time (Stack mode) or next to a
// persistent navBar (Split mode), with animated push, pop and replace.
//
// # Basic Usage
//
//	routes := router.New().
//	    Register("list", buildList).
//	    Register("detail", buildDetail)
//
//	ctrl := navigator.New(navigator.Options{
//	    Provider: routes,
//	    NavBar:   navBarContent,
//	    Mode:     navigator.ModeAuto,
//	})
//
//	sess, err := navigator.NewSession(navigator.SessionOptions{Scene: scene})
//	if err != nil {
//	    return err
//	}
//	ctrl.Attach(sess)
//
//	// every frame, on the UI goroutine
//	sess.Tick()
//	ctrl.Layout(width, height)
//
// # Ordering
//
// Mutations fire OnHidden / OnShown immediately and queue the transition and
// the focus request until the next layout pass. Animation completions are
// posted back to the session and run on Tick. A completion whose surface has
// started another transition in the meantime does nothing.
//
// # Modes
//
// In Auto mode the container is Split when its width is at least the minimum
// navBar width plus the minimum content width, and Stack otherwise. Split
// sizing shrinks the navBar towards its minimum before letting the content
// drop below its minimum.
package navigator
