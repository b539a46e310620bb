package swarm

import "image/color"

// Canvas is the 2D surface a Scene paints on. Coordinates are in the same
// units as the scene size; colours are straight (non-premultiplied) alpha.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
}
