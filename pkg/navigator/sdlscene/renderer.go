// Package sdlscene draws a scenegraph.Graph with SDL2. The graph is the
// navigator.Scene; this package only turns its nodes into rectangles and
// back arrow textures every frame.
package sdlscene

import (
	"image/color"
	"math"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/icons"
	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/BrandonKowalski/navigator/pkg/navigator/scenegraph"
)

// Renderer draws graph nodes into a window.
type Renderer struct {
	win   *Window
	graph *scenegraph.Graph
	cache *IconCache
}

// NewRenderer creates a renderer for graph. The graph's frame requests
// should be wired to win.Wake.
func NewRenderer(win *Window, graph *scenegraph.Graph) *Renderer {
	return &Renderer{win: win, graph: graph, cache: NewIconCache(defaultIconCacheSize)}
}

// Draw renders one frame. divider is the split mode divider line, empty in
// stack mode.
func (r *Renderer) Draw(divider navigator.Rect) {
	theme := internal.GetTheme()
	rend := r.win.Renderer

	setColor(rend, theme.ContentColor, 1)
	rend.Clear()

	r.graph.Visit(func(n scenegraph.Node) {
		r.drawSurface(n)
	})

	if !divider.Empty() {
		setColor(rend, theme.DividerColor, 1)
		rend.FillRect(toSDL(divider))
	}
	r.win.Present()
}

func (r *Renderer) drawSurface(n scenegraph.Node) {
	rend := r.win.Renderer
	if !n.Clip.Empty() {
		rend.SetClipRect(toSDL(n.Clip))
		defer rend.SetClipRect(nil)
	}

	origin := n.Bounds
	origin.X += n.X
	origin.Y += n.Y
	setColor(rend, n.Fill, n.Opacity)
	rend.FillRect(toSDL(origin))

	for _, child := range r.graph.Children(n.Handle) {
		if n.Opacity*child.Opacity <= 0 {
			continue
		}
		rect := child.Bounds
		rect.X += origin.X + child.X
		rect.Y += origin.Y + child.Y
		switch child.Kind {
		case scenegraph.KindTitleBar:
			setColor(rend, child.Fill, n.Opacity*child.Opacity)
			rend.FillRect(toSDL(rect))
		case scenegraph.KindBackButton:
			r.drawBackArrow(rect, child.Fill, n.Opacity*child.Opacity)
		}
	}

	if n.Mask.A > 0 {
		mask := n.Mask
		setColor(rend, color.NRGBA{R: mask.R, G: mask.G, B: mask.B, A: 0xFF}, float64(mask.A)/0xFF)
		rend.FillRect(toSDL(origin))
	}
}

func (r *Renderer) drawBackArrow(rect navigator.Rect, fill color.NRGBA, opacity float64) {
	size := int(math.Round(math.Min(rect.W, rect.H)))
	if size <= 0 {
		return
	}
	key := iconKey{glyph: icons.BackArrow, size: size, fill: fill}
	texture, err := r.cache.Icon(key, func() (*sdl.Texture, error) {
		return r.rasterize(icons.BackArrow, size, fill)
	})
	if err != nil {
		internal.GetInternalLogger().Error("Failed to create back arrow texture", "error", err)
		return
	}
	texture.SetAlphaMod(alpha(opacity))
	r.win.Renderer.Copy(texture, nil, toSDL(rect))
}

func (r *Renderer) rasterize(glyph icons.Glyph, size int, fill color.NRGBA) (*sdl.Texture, error) {
	img, err := icons.Rasterize(glyph, size, fill)
	if err != nil {
		return nil, navigator.NewInfrastructureError("rasterize_icon", err)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(size), int32(size), 32, sdl.PIXELFORMAT_RGBA32)
	if err != nil {
		return nil, navigator.NewInfrastructureError("create_surface", err)
	}
	defer surface.Free()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			surface.Set(x, y, img.At(x, y))
		}
	}

	texture, err := r.win.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, navigator.NewInfrastructureError("create_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Close releases cached textures.
func (r *Renderer) Close() {
	r.cache.Destroy()
}

func setColor(rend *sdl.Renderer, c color.NRGBA, opacity float64) {
	rend.SetDrawColor(c.R, c.G, c.B, alpha(float64(c.A)/0xFF*opacity))
}

func alpha(opacity float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(opacity, 1)) * 0xFF))
}

func toSDL(r navigator.Rect) *sdl.Rect {
	return &sdl.Rect{
		X: int32(math.Round(r.X)),
		Y: int32(math.Round(r.Y)),
		W: int32(math.Round(r.W)),
		H: int32(math.Round(r.H)),
	}
}
