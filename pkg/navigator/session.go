package navigator

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// SessionOptions configures a Session.
type SessionOptions struct {
	Scene         Scene         // Required
	Focus         Focus         // Optional, defaults to a no-op
	Accessibility Accessibility // Optional, defaults to a no-op
	Logger        *slog.Logger  // Optional, defaults to the internal logger
	Language      string        // BCP 47 tag for announcements, defaults to English
	Timings       *Timings      // Optional, defaults to DefaultTimings()
}

// Session is the explicit context threaded through every controller and
// engine call: collaborators, logging, localized messages and the UI task
// queue. One Session belongs to one UI goroutine.
type Session struct {
	scene    Scene
	focus    Focus
	a11y     Accessibility
	logger   *slog.Logger
	messages *internal.Messages
	timings  Timings

	mu          sync.Mutex
	posted      []func()
	afterLayout []func()
}

// NewSession creates a session. A Scene is required.
func NewSession(opts SessionOptions) (*Session, error) {
	if opts.Scene == nil {
		return nil, errors.New("navigator: session requires a scene")
	}

	s := &Session{
		scene:    opts.Scene,
		focus:    opts.Focus,
		a11y:     opts.Accessibility,
		logger:   opts.Logger,
		messages: internal.NewMessages(opts.Language),
		timings:  DefaultTimings(),
	}
	if s.focus == nil {
		s.focus = noopFocus{}
	}
	if s.a11y == nil {
		s.a11y = noopAccessibility{}
	}
	if s.logger == nil {
		s.logger = internal.GetInternalLogger()
	}
	if opts.Timings != nil {
		s.timings = *opts.Timings
	}
	return s, nil
}

func (s *Session) Scene() Scene {
	return s.scene
}

func (s *Session) Logger() *slog.Logger {
	return s.logger
}

func (s *Session) Timings() Timings {
	return s.timings
}

// BackButtonLabel returns the localized accessibility label of back buttons.
func (s *Session) BackButtonLabel() string {
	return s.messages.BackButton()
}

// Post queues fn for the next UI tick. Safe to call from any goroutine,
// including animation driver callbacks.
func (s *Session) Post(fn func()) {
	s.mu.Lock()
	s.posted = append(s.posted, fn)
	s.mu.Unlock()
}

// Tick runs every task posted before the call, in order, and returns how
// many ran. Tasks posted while draining run on the next Tick.
// Must be called from the UI goroutine.
func (s *Session) Tick() int {
	s.mu.Lock()
	tasks := s.posted
	s.posted = nil
	s.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// Pending returns the number of queued UI and after-layout tasks.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posted) + len(s.afterLayout)
}

func (s *Session) postAfterLayout(fn func()) {
	s.mu.Lock()
	s.afterLayout = append(s.afterLayout, fn)
	s.mu.Unlock()
}

// flushAfterLayout runs the tasks queued until the current layout pass
// completed. Tasks queued by those tasks wait for the next pass.
func (s *Session) flushAfterLayout() {
	s.mu.Lock()
	tasks := s.afterLayout
	s.afterLayout = nil
	s.mu.Unlock()

	for _, task := range tasks {
		task()
	}
}
