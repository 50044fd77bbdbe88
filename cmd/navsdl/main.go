package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navigator/internal/demo"
	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/sdlscene"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "navsdl",
	Short:        "SDL2 demo of the adaptive stack / split navigation container",
	SilenceUsage: true,
	RunE:         run,
}

var borderless bool

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()

	demo.RegisterFlags(rootCmd.Flags())
	rootCmd.Flags().BoolVar(&borderless, "borderless", false, "Open a borderless window")
}

func run(cmd *cobra.Command, args []string) error {
	defer navigator.CloseLog()

	cfg, err := demo.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if path := os.Getenv(constants.LogPathEnvVar); path != "" {
		navigator.SetLogPath(path)
	}
	navigator.SetRawLogLevel(cfg.LogLevel)
	navigator.SetEngineLogLevel(cfg.LogLevel)

	win, err := sdlscene.Open("Navigator", sdlscene.WindowOptions{Resizable: true, Borderless: borderless})
	if err != nil {
		return err
	}
	defer win.Close()

	app, err := demo.New(cfg, win.Wake)
	if err != nil {
		return err
	}
	renderer := sdlscene.NewRenderer(win, app.Graph)
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	device, _ := cmd.Flags().GetString("back-device")
	if device == "" {
		device = os.Getenv(constants.BackDeviceEnvVar)
	}
	if device != "" {
		watcher := navigator.WatchBackKey(ctx, app.Session, app.Ctrl, device, win.Wake)
		defer func() {
			stop()
			if err := watcher.Wait(); err != nil {
				navigator.GetLogger().Warn("Back key watcher stopped", "error", err)
			}
		}()
	}

	loop := &eventLoop{app: app, mode: cfg.ResolvedMode()}
	for ctx.Err() == nil && !loop.quit {
		w, h := win.Size()
		size, more := app.Frame(float64(w), float64(h), time.Now())
		renderer.Draw(dividerLine(size))

		event := sdl.PollEvent()
		if event == nil && !more {
			event = sdl.WaitEventTimeout(250)
		}
		for ; event != nil; event = sdl.PollEvent() {
			loop.handle(event)
		}
	}
	return nil
}

func dividerLine(size navigator.SizeState) navigator.Rect {
	if size.Mode != navigator.ModeSplit || size.DividerWidth <= 0 {
		return navigator.Rect{}
	}
	return navigator.Rect{X: size.NavBarWidth, W: size.DividerWidth, H: size.Height}
}

type eventLoop struct {
	app       *demo.App
	mode      navigator.Mode
	dragStart float64
	quit      bool
}

func (l *eventLoop) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		l.quit = true

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			l.handleKey(e.Keysym.Sym)
		}

	case *sdl.MouseButtonEvent:
		x, y := float64(e.X), float64(e.Y)
		switch {
		case e.Type == sdl.MOUSEBUTTONDOWN && l.app.Ctrl.DividerRegion().Contains(x, y):
			if l.app.Ctrl.BeginDividerDrag() {
				l.dragStart = x
			}
		case e.Type == sdl.MOUSEBUTTONUP && l.app.Ctrl.Dragging():
			l.app.Ctrl.EndDividerDrag()
		}

	case *sdl.MouseMotionEvent:
		if l.app.Ctrl.Dragging() {
			l.app.Ctrl.UpdateDividerDrag(float64(e.X) - l.dragStart)
		}
	}
}

func (l *eventLoop) handleKey(sym sdl.Keycode) {
	var err error
	switch sym {
	case sdl.K_RETURN, sdl.K_RIGHT:
		err = l.app.OpenGame()
	case sdl.K_g:
		err = l.app.OpenLibrary()
	case sdl.K_s:
		err = l.app.OpenSettings()
	case sdl.K_r:
		err = l.app.ReplaceGame()
	case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_LEFT:
		l.app.Back()
	case sdl.K_0, sdl.K_HOME:
		l.app.Home()
	case sdl.K_m:
		l.mode = l.app.CycleMode(l.mode)
	case sdl.K_n:
		l.app.ToggleNavBar()
	case sdl.K_q:
		l.quit = true
	}
	if err != nil {
		navigator.GetLogger().Error("Navigation failed", "error", err)
	}
}
