package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/scenegraph"
)

const frameInterval = 16 * time.Millisecond

type frameMsg time.Time

// wakeMsg is sent from other goroutines, such as the back key watcher.
type wakeMsg struct{}

type model struct {
	app      *App
	keys     keyMap
	help     help.Model
	mode     navigator.Mode
	width    int
	height   int
	size     navigator.SizeState
	status   string
	ticking  bool
	showHelp bool
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Padding(0, 1)
)

func newModel(app *App, mode navigator.Mode) model {
	return model{app: app, keys: defaultKeyMap(), help: help.New(), mode: mode}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) scheduleFrame() (model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// frame runs one App frame sized to the terminal.
func (m model) frame(now time.Time) (model, bool) {
	w := float64(m.width) * CellWidth
	h := float64(max(m.height-2, 0)) * CellHeight
	size, more := m.app.Frame(w, h, now)
	m.size = size
	return m, more
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.ticking = false

	case wakeMsg:

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		m.status = m.handleKey(msg)
	}

	m, more := m.frame(time.Now())
	if more {
		return m.scheduleFrame()
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) string {
	var err error
	switch {
	case key.Matches(msg, m.keys.Open):
		err = m.app.OpenGame()
	case key.Matches(msg, m.keys.Library):
		err = m.app.OpenLibrary()
	case key.Matches(msg, m.keys.Settings):
		err = m.app.OpenSettings()
	case key.Matches(msg, m.keys.Replace):
		err = m.app.ReplaceGame()
	case key.Matches(msg, m.keys.Back):
		if !m.app.Back() {
			return "nothing to go back to"
		}
	case key.Matches(msg, m.keys.Home):
		m.app.Home()
	case key.Matches(msg, m.keys.Mode):
		m.mode = m.app.CycleMode(m.mode)
		return "requested mode: " + m.mode.String()
	case key.Matches(msg, m.keys.NavBar):
		m.app.ToggleNavBar()
	case key.Matches(msg, m.keys.Wider):
		if !m.app.ResizeNavBar(4 * CellWidth) {
			return "resize needs split mode"
		}
	case key.Matches(msg, m.keys.Narrower):
		if !m.app.ResizeNavBar(-4 * CellWidth) {
			return "resize needs split mode"
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	if err != nil {
		return "error: " + err.Error()
	}
	return ""
}

func (m model) View() string {
	if m.width == 0 || m.height < 3 {
		return ""
	}
	theme := navigator.GetTheme()
	c := newCanvas(m.width, m.height-2, theme.ContentColor)
	m.app.Graph.Visit(func(n scenegraph.Node) {
		c.drawSurface(m.app.Graph, n, theme)
	})
	c.drawDivider(m.app.Ctrl.DividerRegion(), theme.DividerColor)

	status := statusStyle.Render(fmt.Sprintf("%s · %s · nav %.0f content %.0f",
		m.app.Ctrl.Mode(), m.app.Breadcrumb(), m.size.NavBarWidth, m.size.ContentWidth))
	if m.status != "" {
		status += errorStyle.Render(m.status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.String(), status, m.help.View(m.keys))
}

// RunTerminal runs the demo in the terminal until the user quits. When
// backDevice is set, hardware back key presses from that evdev device are
// forwarded as well.
func RunTerminal(ctx context.Context, app *App, mode navigator.Mode, backDevice string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(newModel(app, mode), tea.WithAltScreen(), tea.WithContext(ctx))

	var watcher *navigator.BackKeyWatcher
	if backDevice != "" {
		watcher = navigator.WatchBackKey(ctx, app.Session, app.Ctrl, backDevice, func() {
			program.Send(wakeMsg{})
		})
	}

	_, err := program.Run()
	interrupted := ctx.Err() != nil
	cancel()
	if watcher != nil {
		if werr := watcher.Wait(); werr != nil {
			navigator.GetLogger().Warn("Back key watcher stopped", "error", werr)
		}
	}
	if err != nil && !interrupted {
		return err
	}
	return nil
}
