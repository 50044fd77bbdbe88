// Package demo wires a navigator controller to a scene graph with a small
// game library catalog. Both demo binaries drive it.
package demo

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/router"
	"github.com/BrandonKowalski/navigator/pkg/navigator/scenegraph"
)

// BarHeight is the title bar height in layout units.
const BarHeight = 48.0

var games = []string{
	"Chrono Trigger",
	"Metroid Fusion",
	"Advance Wars",
	"Golden Sun",
	"Kirby Super Star",
}

// App is the demo state shared by the terminal and SDL front ends.
type App struct {
	Graph   *scenegraph.Graph
	Session *navigator.Session
	Ctrl    *navigator.Controller
	Routes  *router.Router

	navBar   navigator.Content
	nextGame int
}

// New builds the demo. wake is called when the graph needs a frame and may be nil.
func New(cfg navigator.Config, wake func()) (*App, error) {
	theme := navigator.GetTheme()
	graph := scenegraph.New(wake)

	page := func(title string, withBack bool) navigator.Content {
		return graph.NewSurface(title, theme.ContentColor, theme.TitleBarColor, theme.BackButtonColor, withBack)
	}

	routes := router.New().
		Register("library", func(any) (navigator.Content, error) {
			return page("All games", true), nil
		}).
		Register("game", func(params any) (navigator.Content, error) {
			title, ok := params.(string)
			if !ok || title == "" {
				return navigator.Content{}, fmt.Errorf("game needs a title, got %v", params)
			}
			return page(title, true), nil
		}).
		Register("settings", func(any) (navigator.Content, error) {
			return page("Settings", true), nil
		}).
		Register("about", func(any) (navigator.Content, error) {
			return page("About", true), nil
		})

	timings := cfg.Timings()
	sess, err := navigator.NewSession(navigator.SessionOptions{
		Scene:    graph,
		Logger:   navigator.GetLogger(),
		Language: cfg.Language,
		Timings:  &timings,
	})
	if err != nil {
		return nil, err
	}

	navBar := graph.NewSurface("Library", theme.NavBarColor, theme.TitleBarColor, theme.BackButtonColor, false)
	ctrl := navigator.New(navigator.Options{
		Provider:    routes,
		NavBar:      navBar,
		Mode:        cfg.ResolvedMode(),
		Constraints: cfg.Constraints(),
		AutoHeight:  cfg.AutoHeight,
	})
	ctrl.Attach(sess)

	ctrl.OnModeChange(func(m navigator.Mode) {
		navigator.GetLogger().Info("Mode changed", "mode", m.String())
	})
	ctrl.OnNavBarWidthChange(func(w float64) {
		navigator.GetLogger().Info("NavBar resized", "width", w)
	})

	return &App{
		Graph:   graph,
		Session: sess,
		Ctrl:    ctrl,
		Routes:  routes,
		navBar:  navBar,
	}, nil
}

// Frame runs one UI frame: queued tasks, layout, placement and animation.
// It reports whether another frame is needed soon.
func (a *App) Frame(width, height float64, now time.Time) (navigator.SizeState, bool) {
	a.Session.Tick()
	size := a.Ctrl.Layout(width, height)
	a.place(size)

	animating := a.Graph.Advance(now)
	a.Session.Tick()
	a.collect()
	return size, animating || a.Session.Pending() > 0
}

func (a *App) place(size navigator.SizeState) {
	a.Graph.PlaceSurface(a.navBar, navigator.NavBarRect(size), BarHeight)
	content := navigator.ContentRect(size)
	for _, d := range a.Ctrl.Stack().Destinations() {
		a.Graph.PlaceSurface(d.Content(), content, BarHeight)
	}
	for _, d := range a.Ctrl.Stack().Backup() {
		a.Graph.PlaceSurface(d.Content(), content, BarHeight)
	}
}

// collect removes the nodes of destinations the stack has released.
func (a *App) collect() {
	live := map[navigator.Handle]bool{a.navBar.Root: true}
	for _, d := range a.Ctrl.Stack().Destinations() {
		live[d.Content().Root] = true
	}
	for _, d := range a.Ctrl.Stack().Backup() {
		live[d.Content().Root] = true
	}
	for _, h := range a.Graph.Roots() {
		if !live[h] {
			a.Graph.Remove(h)
		}
	}
}

// OpenGame pushes the next game of the catalog.
func (a *App) OpenGame() error {
	title := games[a.nextGame%len(games)]
	a.nextGame++
	return a.Ctrl.Push("game", title, navigator.LaunchStandard)
}

// OpenLibrary brings the library list to the top, reusing it if present.
func (a *App) OpenLibrary() error {
	return a.Ctrl.Push("library", nil, navigator.LaunchSingle)
}

// OpenSettings pops back to the settings page, or pushes it.
func (a *App) OpenSettings() error {
	return a.Ctrl.Push("settings", nil, navigator.LaunchPopToSingle)
}

// Open pushes a destination by name, for typed route names.
func (a *App) Open(name string) error {
	return a.Ctrl.Push(name, nil, navigator.LaunchStandard)
}

// ReplaceGame swaps the top page for the next game.
func (a *App) ReplaceGame() error {
	title := games[a.nextGame%len(games)]
	a.nextGame++
	return a.Ctrl.Replace("game", title)
}

// Back handles a back press.
func (a *App) Back() bool {
	return a.Ctrl.BackPressed()
}

// Home pops every destination.
func (a *App) Home() bool {
	return a.Ctrl.Clear()
}

// CycleMode switches Auto, Stack and Split in turn.
func (a *App) CycleMode(current navigator.Mode) navigator.Mode {
	next := (current + 1) % 3
	a.Ctrl.SetMode(next)
	return next
}

// ToggleNavBar hides or shows the navBar in split mode.
func (a *App) ToggleNavBar() {
	a.Ctrl.SetNavBarHidden(!a.Ctrl.Constraints().HideNavBar)
}

// ResizeNavBar moves the divider by delta as one drag gesture.
func (a *App) ResizeNavBar(delta float64) bool {
	if !a.Ctrl.BeginDividerDrag() {
		return false
	}
	a.Ctrl.UpdateDividerDrag(delta)
	a.Ctrl.EndDividerDrag()
	return true
}

// Breadcrumb describes the stack for status lines.
func (a *App) Breadcrumb() string {
	out := a.navBar.Title
	for _, d := range a.Ctrl.Stack().Destinations() {
		out += " › " + d.Content().Title
	}
	return out
}
