package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// trailCanvas paints scene frames onto a persistent offscreen image. The
// image is never cleared, so the scene's translucent wash leaves trails.
type trailCanvas struct {
	img *ebiten.Image
}

func newTrailCanvas(w, h int) *trailCanvas {
	img := ebiten.NewImage(w, h)
	img.Fill(color.Black)
	return &trailCanvas{img: img}
}

func (c *trailCanvas) size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *trailCanvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (c *trailCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) {
	if clr.A == 0 || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.img, float32(cx), float32(cy), float32(r), clr, true)
}

func (c *trailCanvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) {
	if clr.A == 0 || r <= 0 {
		return
	}
	vector.StrokeCircle(c.img, float32(cx), float32(cy), float32(r), float32(width), clr, true)
}

// resized returns a canvas of the new size carrying over the old pixels.
func (c *trailCanvas) resized(w, h int) *trailCanvas {
	next := newTrailCanvas(w, h)
	next.img.DrawImage(c.img, nil)
	c.img.Deallocate()
	return next
}
