package swarm

import (
	"image/color"
	"log"
	"math"
	"math/rand/v2"
)

// State is the scene's phase. It replaces the forming/exploded/respawning
// flag trio so contradictory combinations cannot exist.
type State uint8

const (
	// Idle: particles drift. Initial state.
	Idle State = iota
	// Forming: a gesture is held and particles seek the heart.
	Forming
	// Exploding: the heart was released and the respawn timer runs.
	Exploding
	// Respawning: a fresh generation is fading in. It lasts until the next
	// gesture starts; once every particle has faded in it looks like Idle.
	Respawning
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Forming:
		return "forming"
	case Exploding:
		return "exploding"
	case Respawning:
		return "respawning"
	}
	return "unknown"
}

// Scene owns the particles, the shockwave slot and the gesture state. It is
// driven by a single caller: one Tick per frame plus the gesture calls, all
// from the same goroutine.
type Scene struct {
	params        Params
	rng           *rand.Rand
	logger        *log.Logger
	width, height float64

	state            State
	originX, originY float64
	respawnTimer     int
	frames           uint64

	particles []Particle
	shockwave *Shockwave
}

// NewScene creates a scene of the given size populated with a first
// generation of drifting particles. A nil rng gets a time-seeded source.
func NewScene(width, height float64, p Params, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Scene{
		params:  p,
		rng:     rng,
		logger:  log.Default(),
		width:   width,
		height:  height,
		originX: width / 2,
		originY: height / 2,
	}
	s.particles = s.spawn(false)
	return s
}

// SetLogger replaces the logger used for precondition reports.
func (s *Scene) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Resize updates the bounds particles bounce against. Particles are not
// moved; ones left outside reflect back on their next frame.
func (s *Scene) Resize(width, height float64) {
	s.checkFinite("Resize", width, height)
	s.width, s.height = width, height
}

// SetHeartScale changes the size of the heart. Particles already seeking it
// follow the new curve from the next frame.
func (s *Scene) SetHeartScale(scale float64) {
	s.checkFinite("SetHeartScale", scale, 0)
	s.params.HeartScale = scale
}

// Size returns the current scene bounds.
func (s *Scene) Size() (width, height float64) { return s.width, s.height }

// StartForming centres the heart on (x, y) and makes every particle seek it
// from wherever it currently is.
func (s *Scene) StartForming(x, y float64) {
	s.checkFinite("StartForming", x, y)
	s.originX, s.originY = x, y
	s.state = Forming
	s.respawnTimer = 0
}

// StopForming releases the heart: a shockwave starts at the heart centre and
// every particle is launched radially away from it.
func (s *Scene) StopForming() {
	s.state = Exploding
	s.shockwave = newShockwave(s.originX, s.originY)

	lo, hi := s.params.BurstSpeedMin, s.params.BurstSpeedMax
	for i := range s.particles {
		speed := lo
		if hi > lo {
			speed += s.rng.Float64() * (hi - lo)
		}
		s.particles[i].burst(s.originX, s.originY, speed)
	}
}

// Tick advances the scene by one frame and paints it on c. elapsedMs is the
// monotonic clock used for the heart pulse and colour cycling only; motion
// is stepped per frame. A nil canvas steps the simulation without drawing.
func (s *Scene) Tick(elapsedMs float64, c Canvas) {
	if c == nil {
		c = nopCanvas{}
	}

	bg := s.params.TrailAlpha
	if s.state == Exploding {
		bg = 1
	}
	c.FillRect(0, 0, s.width, s.height, color.NRGBA{A: alphaByte(bg)})

	f := frame{
		params:    &s.params,
		state:     s.state,
		originX:   s.originX,
		originY:   s.originY,
		width:     s.width,
		height:    s.height,
		elapsedMs: elapsedMs,
		rng:       s.rng,
	}
	for i := range s.particles {
		pt := &s.particles[i]
		pt.update(&f)
		pt.draw(c, s.params.BaseSize)
	}

	if s.shockwave != nil {
		s.shockwave.update()
		s.shockwave.draw(c)
		if !s.shockwave.Alive() {
			s.shockwave = nil
		}
	}

	if s.state == Exploding {
		s.respawnTimer++
		if s.respawnTimer > s.params.RespawnFrames {
			s.state = Respawning
			s.particles = s.spawn(true)
			s.respawnTimer = 0
		}
	}
	s.frames++
}

// State returns the current scene phase.
func (s *Scene) State() State { return s.state }

// Forming reports whether a heart is being held.
func (s *Scene) Forming() bool { return s.state == Forming }

// Exploded reports whether the last heart was released and no new gesture
// has started since.
func (s *Scene) Exploded() bool { return s.state == Exploding || s.state == Respawning }

// Respawning reports whether the current generation was created by a respawn.
func (s *Scene) Respawning() bool { return s.state == Respawning }

// Origin returns the current heart centre.
func (s *Scene) Origin() (x, y float64) { return s.originX, s.originY }

// RespawnTimer is the number of frames counted since the last release.
func (s *Scene) RespawnTimer() int { return s.respawnTimer }

// Frames is the number of ticks run so far.
func (s *Scene) Frames() uint64 { return s.frames }

// Particles returns the live particle slice. Callers must not modify it.
func (s *Scene) Particles() []Particle { return s.particles }

// Shockwave returns the active ring, or nil.
func (s *Scene) Shockwave() *Shockwave { return s.shockwave }

// Params returns the scene tuning.
func (s *Scene) Params() Params { return s.params }

func (s *Scene) spawn(fresh bool) []Particle {
	n := max(s.params.ParticleCount, 0)
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = newParticle(i, fresh, s.width, s.height, &s.params, s.rng)
	}
	return ps
}

func (s *Scene) checkFinite(op string, x, y float64) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		s.logger.Printf("swarm: %s called with non-finite coordinates (%v, %v)", op, x, y)
	}
}

type nopCanvas struct{}

func (nopCanvas) FillRect(x, y, w, h float64, c color.NRGBA)           {}
func (nopCanvas) FillCircle(cx, cy, r float64, c color.NRGBA)          {}
func (nopCanvas) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {}
