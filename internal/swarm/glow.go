package swarm

import "math"

const glowRate = 0.05

// Glow tracks the halo colour of the title overlay. It follows the heart
// gradient while a heart is held and eases back to white otherwise.
type Glow struct {
	c RGB
}

// NewGlow returns a white glow.
func NewGlow() *Glow {
	return &Glow{c: White}
}

// Update advances the glow by one frame and returns the rounded colour.
func (g *Glow) Update(forming bool, elapsedMs float64) (r, gr, b uint8) {
	target := White
	if forming {
		target = GradientColor(elapsedMs / 1000)
	}
	g.c.R = Lerp(g.c.R, target.R, glowRate)
	g.c.G = Lerp(g.c.G, target.G, glowRate)
	g.c.B = Lerp(g.c.B, target.B, glowRate)
	return roundByte(g.c.R), roundByte(g.c.G), roundByte(g.c.B)
}

func roundByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
