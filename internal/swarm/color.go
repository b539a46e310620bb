package swarm

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a colour with real-valued channels on the 0..255 scale. Channels are
// only floored and clamped when the colour is rendered.
type RGB struct {
	R, G, B float64
}

// White is the colour every particle starts with.
var White = RGB{R: 255, G: 255, B: 255}

// GradientColor returns the pink/violet colour the heart cycles through at
// phase t. It has period 2π.
func GradientColor(t float64) RGB {
	return RGB{
		R: math.Floor(200 + 55*math.Abs(math.Sin(t))),
		G: 0,
		B: math.Floor(200 + 55*math.Abs(math.Cos(t))),
	}
}

// Lerp linearly interpolates between a and b by w.
func Lerp(a, b, w float64) float64 {
	return a + (b-a)*w
}

// NRGBA floors each channel, clamps it into [0,255] and attaches alpha
// (clamped into [0,1]) as a straight-alpha colour.
func (c RGB) NRGBA(alpha float64) color.NRGBA {
	r, g, b := colorful.Color{
		R: math.Floor(c.R) / 255,
		G: math.Floor(c.G) / 255,
		B: math.Floor(c.B) / 255,
	}.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(a float64) uint8 {
	switch {
	case math.IsNaN(a), a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(math.Round(a * 255))
}
