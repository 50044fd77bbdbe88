package demo

import (
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/navigator/pkg/navigator"
	"github.com/BrandonKowalski/navigator/pkg/navigator/scenegraph"
)

// Layout units per terminal cell.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

type styleKey struct {
	bg, fg string
	faint  bool
}

type cell struct {
	ch    rune
	style styleKey
}

// canvas rasterizes scene graph nodes into terminal cells.
type canvas struct {
	w, h   int
	cells  []cell
	styles map[styleKey]lipgloss.Style
}

type cellRect struct {
	x0, y0, x1, y1 int
}

func newCanvas(w, h int, bg color.NRGBA) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h), styles: make(map[styleKey]lipgloss.Style)}
	base := styleKey{bg: navigator.HexColor(bg)}
	for i := range c.cells {
		c.cells[i] = cell{ch: ' ', style: base}
	}
	return c
}

func toCells(r navigator.Rect) cellRect {
	return cellRect{
		x0: int(math.Round(r.X / CellWidth)),
		y0: int(math.Round(r.Y / CellHeight)),
		x1: int(math.Round((r.X + r.W) / CellWidth)),
		y1: int(math.Round((r.Y + r.H) / CellHeight)),
	}
}

func (r cellRect) intersect(o cellRect) cellRect {
	return cellRect{
		x0: max(r.x0, o.x0),
		y0: max(r.y0, o.y0),
		x1: min(r.x1, o.x1),
		y1: min(r.y1, o.y1),
	}
}

func (c *canvas) bounds() cellRect {
	return cellRect{x1: c.w, y1: c.h}
}

func (c *canvas) fill(r cellRect, style styleKey) {
	r = r.intersect(c.bounds())
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			c.cells[y*c.w+x] = cell{ch: ' ', style: style}
		}
	}
}

func (c *canvas) text(x, y int, s string, clip cellRect) {
	clip = clip.intersect(c.bounds())
	if y < clip.y0 || y >= clip.y1 {
		return
	}
	for _, ch := range s {
		if x >= clip.x0 && x < clip.x1 {
			i := y*c.w + x
			c.cells[i].ch = ch
		}
		x++
	}
}

func (c *canvas) setForeground(r cellRect, fg color.NRGBA) {
	r = r.intersect(c.bounds())
	hex := navigator.HexColor(fg)
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			c.cells[y*c.w+x].style.fg = hex
		}
	}
}

// drawSurface paints a root and its title bar. Nodes below half opacity are
// skipped; a mask renders the surface faint.
func (c *canvas) drawSurface(g *scenegraph.Graph, n scenegraph.Node, theme navigator.Theme) {
	if n.Opacity < 0.5 {
		return
	}
	rect := n.Bounds
	rect.X += n.X
	area := toCells(rect)
	clip := c.bounds()
	if !n.Clip.Empty() {
		clip = toCells(n.Clip)
	}
	area = area.intersect(clip)
	faint := n.Mask.A > 0

	c.fill(area, styleKey{bg: navigator.HexColor(n.Fill), faint: faint})

	var back, bar *scenegraph.Node
	for _, child := range g.Children(n.Handle) {
		child := child
		switch child.Kind {
		case scenegraph.KindTitleBar:
			bar = &child
		case scenegraph.KindBackButton:
			back = &child
		}
	}
	if bar == nil {
		return
	}

	barRow := cellRect{x0: area.x0, y0: area.y0, x1: area.x1, y1: area.y0 + 1}
	c.fill(barRow, styleKey{bg: navigator.HexColor(bar.Fill), faint: faint})
	c.setForeground(barRow, theme.TitleTextColor)

	x := int(math.Round((rect.X + bar.X) / CellWidth))
	if back != nil && back.Opacity*n.Opacity >= 0.5 {
		c.text(area.x0+1, area.y0, "←", barRow)
	}
	if bar.Opacity*n.Opacity >= 0.5 {
		c.text(x+3, area.y0, n.Label, barRow)
	}
}

func (c *canvas) drawDivider(r navigator.Rect, col color.NRGBA) {
	if r.Empty() {
		return
	}
	x := int(math.Round((r.X + r.W/2) / CellWidth))
	c.fill(cellRect{x0: x, y0: 0, x1: x + 1, y1: c.h}, styleKey{bg: navigator.HexColor(col)})
}

func (c *canvas) style(k styleKey) lipgloss.Style {
	s, ok := c.styles[k]
	if !ok {
		s = lipgloss.NewStyle().Background(lipgloss.Color(k.bg)).Faint(k.faint)
		if k.fg != "" {
			s = s.Foreground(lipgloss.Color(k.fg))
		}
		c.styles[k] = s
	}
	return s
}

func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		row := c.cells[y*c.w : (y+1)*c.w]
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].style == row[start].style {
				continue
			}
			var run strings.Builder
			for _, cl := range row[start:x] {
				run.WriteRune(cl.ch)
			}
			b.WriteString(c.style(row[start].style).Render(run.String()))
			start = x
		}
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
