// Package term renders the heart swarm in a terminal with tcell.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// halfBlock paints the upper pixel of a cell in the foreground colour and
// the lower one in the background colour.
const halfBlock = '▀'

// cellWriter is the part of tcell.Screen the canvas flushes to.
type cellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Canvas is a float framebuffer two pixels tall per terminal row.
type Canvas struct {
	w, h int
	pix  []colorful.Color
}

// NewCanvas returns a black canvas for a cols x rows terminal.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize reallocates the framebuffer. The previous frame is discarded.
func (c *Canvas) Resize(cols, rows int) {
	c.w, c.h = max(cols, 0), max(rows, 0)*2
	c.pix = make([]colorful.Color, c.w*c.h)
}

// Size returns the pixel dimensions.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

func (c *Canvas) at(x, y int) colorful.Color { return c.pix[y*c.w+x] }

func (c *Canvas) blend(x, y int, clr color.NRGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h || clr.A == 0 {
		return
	}
	src := colorful.Color{R: float64(clr.R) / 255, G: float64(clr.G) / 255, B: float64(clr.B) / 255}
	i := y*c.w + x
	c.pix[i] = c.pix[i].BlendRgb(src, float64(clr.A)/255)
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	x0, y0 := clampInt(int(math.Floor(x)), 0, c.w), clampInt(int(math.Floor(y)), 0, c.h)
	x1, y1 := clampInt(int(math.Ceil(x+w)), 0, c.w), clampInt(int(math.Ceil(y+h)), 0, c.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blend(px, py, clr)
		}
	}
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if clr.A == 0 || !finite(cx, cy) {
		return
	}
	hit := false
	c.eachInBox(cx, cy, r, func(px, py int, d float64) {
		if d <= r {
			c.blend(px, py, clr)
			hit = true
		}
	})
	// Dots smaller than a pixel still light the pixel they sit in.
	if !hit {
		c.blend(int(math.Floor(cx)), int(math.Floor(cy)), clr)
	}
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	if clr.A == 0 || !finite(cx, cy) {
		return
	}
	half := math.Max(width/2, 0.5)
	c.eachInBox(cx, cy, r+half, func(px, py int, d float64) {
		if math.Abs(d-r) <= half {
			c.blend(px, py, clr)
		}
	})
}

// eachInBox calls fn for every on-canvas pixel whose centre lies in the
// square of half-size r around (cx, cy), with the centre distance.
func (c *Canvas) eachInBox(cx, cy, r float64, fn func(px, py int, d float64)) {
	if r < 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return
	}
	x0 := clampInt(int(math.Floor(cx-r)), 0, c.w)
	x1 := clampInt(int(math.Ceil(cx+r))+1, 0, c.w)
	y0 := clampInt(int(math.Floor(cy-r)), 0, c.h)
	y1 := clampInt(int(math.Ceil(cy+r))+1, 0, c.h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fn(px, py, math.Hypot(float64(px)+0.5-cx, float64(py)+0.5-cy))
		}
	}
}

// Flush writes the framebuffer to the terminal cells.
func (c *Canvas) Flush(s cellWriter) {
	for row := 0; row*2 < c.h; row++ {
		for x := 0; x < c.w; x++ {
			top := cellColor(c.at(x, row*2))
			bottom := cellColor(c.at(x, row*2+1))
			s.SetContent(x, row, halfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
