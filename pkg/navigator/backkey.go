package navigator

import (
	"context"
	"sync"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// BackKeyWatcher forwards hardware back key presses from a Linux evdev
// device to a controller.
type BackKeyWatcher struct {
	wg   sync.WaitGroup
	errc chan error
}

// WatchBackKey reads back key presses from devicePath until ctx is done.
// Each press is posted to the session queue as a BackPressed call, then wake
// is called so the UI loop runs the next Tick.
func WatchBackKey(ctx context.Context, sess *Session, ctrl *Controller, devicePath string, wake func()) *BackKeyWatcher {
	w := &BackKeyWatcher{errc: make(chan error, 1)}
	cfg := internal.DefaultBackKeyConfig(devicePath)

	w.wg.Add(1)
	go func() {
		w.errc <- internal.BackKeyHandler(ctx, &w.wg, cfg, func() {
			sess.Post(func() {
				sess.logger.Debug("Hardware back key pressed")
				ctrl.BackPressed()
			})
			if wake != nil {
				wake()
			}
		})
	}()
	return w
}

// Wait blocks until the watcher stops and returns its error, nil after a
// clean cancellation.
func (w *BackKeyWatcher) Wait() error {
	w.wg.Wait()
	return <-w.errc
}
