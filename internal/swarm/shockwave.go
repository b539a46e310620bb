package swarm

const (
	shockwaveOpacity = 0.4
	shockwaveGrowth  = 8
	shockwaveFade    = 0.01
	shockwaveWidth   = 2
)

// Shockwave is the white ring left behind where a heart was released.
type Shockwave struct {
	X, Y    float64
	Radius  float64
	Opacity float64
	alive   bool
}

func newShockwave(x, y float64) *Shockwave {
	return &Shockwave{X: x, Y: y, Opacity: shockwaveOpacity, alive: true}
}

// Alive reports whether the ring is still visible.
func (s *Shockwave) Alive() bool { return s.alive }

func (s *Shockwave) update() {
	s.Radius += shockwaveGrowth
	s.Opacity -= shockwaveFade
	if s.Opacity <= 0 {
		s.alive = false
	}
}

func (s *Shockwave) draw(c Canvas) {
	c.StrokeCircle(s.X, s.Y, s.Radius, shockwaveWidth, White.NRGBA(s.Opacity))
}
