package swarm

import (
	"math"
	"math/rand/v2"
)

type particleKind uint8

const (
	kindNormal particleKind = iota
	// kindFresh particles belong to a respawned generation. They stay
	// hidden until their spawn delay runs out, then fade in.
	kindFresh
	// kindExploding is sticky until the particle set is replaced.
	kindExploding
)

// Particle is one point of the swarm. Index doubles as its slot on the heart.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Scale   float64
	Opacity float64
	Color   RGB
	Index   int

	kind       particleKind
	spawnDelay int
	colorSeed  float64
}

// frame carries the read-only scene values a particle needs for one update.
type frame struct {
	params        *Params
	state         State
	originX       float64
	originY       float64
	width, height float64
	elapsedMs     float64
	rng           *rand.Rand
}

func newParticle(i int, fresh bool, w, h float64, p *Params, rng *rand.Rand) Particle {
	pt := Particle{
		X:         rng.Float64() * w,
		Y:         rng.Float64() * h,
		VX:        (rng.Float64() - 0.5) * p.InitialSpeed,
		VY:        (rng.Float64() - 0.5) * p.InitialSpeed,
		Scale:     1,
		Opacity:   1,
		Color:     White,
		Index:     i,
		colorSeed: rng.Float64() * 1000,
	}
	if fresh {
		pt.kind = kindFresh
		pt.Scale = p.FreshScale
		pt.Opacity = 0
		pt.spawnDelay = p.SpawnDelayMin
		if span := p.SpawnDelayMax - p.SpawnDelayMin; span > 0 {
			pt.spawnDelay += rng.IntN(span)
		}
	}
	return pt
}

// Exploding reports whether the particle is flying out of a released heart.
func (pt *Particle) Exploding() bool { return pt.kind == kindExploding }

// Fresh reports whether the particle was created by a respawn.
func (pt *Particle) Fresh() bool { return pt.kind == kindFresh }

// SpawnDelay is the number of frames a fresh particle still waits.
func (pt *Particle) SpawnDelay() int { return pt.spawnDelay }

// Pending reports whether the particle is still counting down and hidden.
func (pt *Particle) Pending() bool { return pt.kind == kindFresh && pt.spawnDelay > 0 }

func (pt *Particle) update(f *frame) {
	p := f.params
	switch {
	case pt.kind == kindFresh && f.state == Respawning:
		if pt.spawnDelay > 0 {
			pt.spawnDelay--
			return
		}
		pt.Opacity = Lerp(pt.Opacity, 1, p.FadeRate)
		pt.Scale = Lerp(pt.Scale, 1, p.FadeRate)
		pt.drift(f)
	case pt.kind == kindExploding:
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.Scale += p.BurstGrowth
		return
	case f.state == Forming:
		pt.seek(f)
	default:
		pt.drift(f)
	}

	pt.X += pt.VX
	pt.Y += pt.VY
	if pt.X < 0 || pt.X > f.width {
		pt.VX = -pt.VX
	}
	if pt.Y < 0 || pt.Y > f.height {
		pt.VY = -pt.VY
	}
}

// drift kicks the velocity by a small random amount and damps it.
func (pt *Particle) drift(f *frame) {
	j := f.params.Jitter
	if j != 0 {
		pt.VX += (f.rng.Float64()*2 - 1) * j
		pt.VY += (f.rng.Float64()*2 - 1) * j
	}
	pt.VX *= f.params.Damping
	pt.VY *= f.params.Damping
}

// seek steers toward the particle's slot on the breathing heart and pulls
// its colour toward the heart gradient.
func (pt *Particle) seek(f *frame) {
	p := f.params
	tx, ty := HeartPoint(
		heartPhase(pt.Index, p.ParticleCount),
		breathe(f.elapsedMs, p.PulseAmp),
		f.originX, f.originY, p.HeartScale,
	)
	pt.VX = (tx - pt.X) * p.SeekGain
	pt.VY = (ty - pt.Y) * p.SeekGain

	target := GradientColor(f.elapsedMs/1000 + pt.colorSeed)
	pt.Color.R = Lerp(pt.Color.R, target.R, p.ColorRateR)
	pt.Color.G = Lerp(pt.Color.G, target.G, p.ColorRateGB)
	pt.Color.B = Lerp(pt.Color.B, target.B, p.ColorRateGB)
}

func (pt *Particle) draw(c Canvas, baseSize float64) {
	if pt.Pending() {
		return
	}
	c.FillCircle(pt.X, pt.Y, baseSize*pt.Scale, pt.Color.NRGBA(pt.Opacity))
}

// burst launches the particle radially away from (ox, oy).
func (pt *Particle) burst(ox, oy, speed float64) {
	angle := math.Atan2(pt.Y-oy, pt.X-ox)
	pt.VX = math.Cos(angle) * speed
	pt.VY = math.Sin(angle) * speed
	pt.kind = kindExploding
}
