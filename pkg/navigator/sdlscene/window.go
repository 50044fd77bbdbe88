package sdlscene

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/constants"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
)

// Window wraps the SDL window and renderer the scene draws into.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	frameEvent      uint32
	hasVSync        bool
	lastPresentTime uint64
}

// WindowOptions selects SDL window creation flags.
type WindowOptions struct {
	Borderless bool
	Resizable  bool
	Fullscreen bool
	Hidden     bool
}

func (o WindowOptions) flags() uint32 {
	var flags uint32 = sdl.WINDOW_SHOWN
	if o.Hidden {
		flags = sdl.WINDOW_HIDDEN
	}
	if o.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if o.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if o.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return flags
}

// Open initializes SDL video and creates a window. Outside dev mode the
// window covers the current display.
func Open(title string, opts WindowOptions) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, navigator.NewInfrastructureError("sdl_init", err)
	}

	x, y := int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED)
	width, height := int32(1024), int32(768)
	if constants.IsDevMode() {
		opts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, width)
		height = envSize(constants.WindowHeightEnvVar, height)
	} else if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		width, height = mode.W, mode.H
	} else {
		internal.GetInternalLogger().Error("Failed to get display mode", "error", err)
	}

	internal.GetInternalLogger().Debug("Initializing SDL window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.flags())
	if err != nil {
		sdl.Quit()
		return nil, navigator.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, navigator.NewInfrastructureError("create_renderer", err)
	}
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:     window,
		Renderer:   renderer,
		Title:      title,
		frameEvent: sdl.RegisterEvents(1),
		hasVSync:   vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size returns the drawable size of the window.
func (w *Window) Size() (int32, int32) {
	return w.Window.GetSize()
}

// Wake pushes a frame event so a loop blocked in WaitEvent renders again.
// Safe to call from any goroutine.
func (w *Window) Wake() {
	if _, err := sdl.PushEvent(&sdl.UserEvent{Type: w.frameEvent}); err != nil {
		internal.GetInternalLogger().Debug("Failed to push frame event", "error", err)
	}
}

// IsFrameEvent reports whether e was pushed by Wake.
func (w *Window) IsFrameEvent(e sdl.Event) bool {
	ue, ok := e.(*sdl.UserEvent)
	return ok && ue.Type == w.frameEvent
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available.
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the renderer and window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	sdl.Quit()
}
