package swarm

import (
	"math"
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func quietParams() Params {
	p := DefaultParams()
	p.Jitter = 0
	return p
}

func testFrame(p *Params, st State) *frame {
	return &frame{
		params: p,
		state:  st,
		width:  1000,
		height: 1000,
		rng:    testRand(),
	}
}

func TestIdleDriftDecaysGeometrically(t *testing.T) {
	p := quietParams()
	f := testFrame(&p, Idle)
	pt := Particle{X: 500, Y: 500, VX: 3, VY: 4, Scale: 1, Opacity: 1}

	const n = 25
	for i := 0; i < n; i++ {
		pt.update(f)
	}
	got := math.Hypot(pt.VX, pt.VY)
	want := 5 * math.Pow(0.94, n)
	if !near(got, want, 1e-9) {
		t.Errorf("speed after %d frames = %v, want %v", n, got, want)
	}
}

func TestIdleJitterBounded(t *testing.T) {
	p := DefaultParams()
	p.Damping = 1
	f := testFrame(&p, Idle)
	for i := 0; i < 100; i++ {
		pt := Particle{X: 500, Y: 500}
		pt.update(f)
		if math.Abs(pt.VX) > p.Jitter || math.Abs(pt.VY) > p.Jitter {
			t.Fatalf("jitter kick (%v, %v) exceeds ±%v", pt.VX, pt.VY, p.Jitter)
		}
	}
}

func TestBoundaryBounceReflectsWithoutClamping(t *testing.T) {
	p := quietParams()
	f := testFrame(&p, Idle)
	pt := Particle{X: f.width + 0.5, Y: 10, VX: 1, VY: 0}
	pt.update(f)

	if pt.VX >= 0 {
		t.Errorf("VX = %v, want negative after crossing the right edge", pt.VX)
	}
	if want := f.width + 0.5 + 0.94; !near(pt.X, want, eps) {
		t.Errorf("X = %v, want %v (unclamped)", pt.X, want)
	}

	pt = Particle{X: 10, Y: -0.2, VX: 0, VY: -1}
	pt.update(f)
	if pt.VY <= 0 {
		t.Errorf("VY = %v, want positive after crossing the top edge", pt.VY)
	}
	if pt.Y >= 0 {
		t.Errorf("Y = %v, want still outside", pt.Y)
	}
}

func TestFormingSeeksHeartTarget(t *testing.T) {
	p := quietParams()
	f := testFrame(&p, Forming)
	f.originX, f.originY = 300, 300
	pt := Particle{X: 10, Y: 20, Index: 30, Color: White}
	tx, ty := HeartPoint(heartPhase(30, p.ParticleCount), 1, 300, 300, p.HeartScale)

	pt.update(f)
	wantVX := (tx - 10) * 0.015
	wantVY := (ty - 20) * 0.015
	if !near(pt.VX, wantVX, eps) || !near(pt.VY, wantVY, eps) {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", pt.VX, pt.VY, wantVX, wantVY)
	}
	if !near(pt.X, 10+wantVX, eps) || !near(pt.Y, 20+wantVY, eps) {
		t.Errorf("position = (%v, %v), want integrated velocity", pt.X, pt.Y)
	}
}

func TestFormingShiftsColourAtChannelRates(t *testing.T) {
	p := quietParams()
	f := testFrame(&p, Forming)
	pt := Particle{X: 500, Y: 500, Color: White}

	pt.update(f)
	target := GradientColor(0)
	if want := Lerp(255, target.R, 0.01); !near(pt.Color.R, want, eps) {
		t.Errorf("R = %v, want %v", pt.Color.R, want)
	}
	if want := Lerp(255, 0, 0.03); !near(pt.Color.G, want, eps) {
		t.Errorf("G = %v, want %v", pt.Color.G, want)
	}
	if want := Lerp(255, target.B, 0.03); !near(pt.Color.B, want, eps) {
		t.Errorf("B = %v, want %v", pt.Color.B, want)
	}
}

func TestExplodingIsBallistic(t *testing.T) {
	p := DefaultParams()
	f := testFrame(&p, Forming)
	pt := Particle{X: f.width - 1, Y: 5, Scale: 1, Color: White}
	pt.burst(0, 5, 18)

	for i := 0; i < 10; i++ {
		pt.update(f)
	}
	if !near(pt.VX, 18, eps) || !near(pt.VY, 0, eps) {
		t.Errorf("velocity = (%v, %v), want (18, 0) unchanged", pt.VX, pt.VY)
	}
	if want := f.width - 1 + 180; !near(pt.X, want, eps) {
		t.Errorf("X = %v, want %v with no bounce", pt.X, want)
	}
	if !near(pt.Scale, 1.5, eps) {
		t.Errorf("Scale = %v, want 1.5", pt.Scale)
	}
	if pt.Color != White {
		t.Errorf("Color = %v, want unchanged white", pt.Color)
	}
}

func TestFreshCountdownThenFadeIn(t *testing.T) {
	p := quietParams()
	f := testFrame(&p, Respawning)
	pt := Particle{X: 40, Y: 40, VX: 2, Scale: p.FreshScale, kind: kindFresh, spawnDelay: 3}
	rec := &recorder{}

	for i := 0; i < 3; i++ {
		pt.update(f)
		pt.draw(rec, p.BaseSize)
	}
	if pt.X != 40 || pt.Y != 40 {
		t.Errorf("pending particle moved to (%v, %v)", pt.X, pt.Y)
	}
	if pt.Pending() {
		t.Fatal("particle still pending after its delay")
	}
	// The frame that reaches zero still draws, fully transparent.
	if rec.count("circle") != 1 {
		t.Fatalf("drawn %d times during the countdown, want 1", rec.count("circle"))
	}
	if a := rec.ops[0].c.A; a != 0 {
		t.Errorf("first visible draw alpha = %d, want 0", a)
	}

	prev := pt.Opacity
	for i := 0; i < 400; i++ {
		pt.update(f)
		pt.draw(rec, p.BaseSize)
		if pt.Opacity < prev || pt.Opacity > 1 || pt.Scale > 1 {
			t.Fatalf("frame %d: opacity %v (prev %v), scale %v", i, pt.Opacity, prev, pt.Scale)
		}
		prev = pt.Opacity
	}
	if pt.Opacity < 0.99 || pt.Scale < 0.99 {
		t.Errorf("after fade-in opacity = %v, scale = %v, want close to 1", pt.Opacity, pt.Scale)
	}
	if rec.count("circle") != 401 {
		t.Errorf("drawn %d times, want 401", rec.count("circle"))
	}
}

func TestFreshCountdownHoldsOutsideRespawn(t *testing.T) {
	p := quietParams()
	f := testFrame(&p, Forming)
	pt := Particle{X: 40, Y: 40, kind: kindFresh, spawnDelay: 5}
	pt.update(f)
	if pt.SpawnDelay() != 5 {
		t.Errorf("SpawnDelay = %d, want 5 while forming", pt.SpawnDelay())
	}
	if pt.X == 40 && pt.Y == 40 {
		t.Error("fresh particle should still seek the heart while forming")
	}
}

func TestDrawUsesScaledRadiusAndOpacity(t *testing.T) {
	rec := &recorder{}
	pt := Particle{X: 3, Y: 4, Scale: 1.5, Opacity: 0.5, Color: RGB{R: 210.6, G: 0, B: 240.2}}
	pt.draw(rec, 2)

	if len(rec.ops) != 1 {
		t.Fatalf("ops = %d, want 1", len(rec.ops))
	}
	o := rec.ops[0]
	if o.x != 3 || o.y != 4 || o.a != 3 {
		t.Errorf("circle = (%v, %v) r=%v, want (3, 4) r=3", o.x, o.y, o.a)
	}
	if o.c.R != 210 || o.c.B != 240 || o.c.A != 128 {
		t.Errorf("colour = %v, want floored channels with alpha 128", o.c)
	}
}

func TestNewFreshParticle(t *testing.T) {
	p := DefaultParams()
	rng := testRand()
	for i := 0; i < 200; i++ {
		pt := newParticle(i, true, 800, 600, &p, rng)
		if !pt.Fresh() || !pt.Pending() {
			t.Fatalf("particle %d not fresh and pending", i)
		}
		if pt.SpawnDelay() < 20 || pt.SpawnDelay() >= 50 {
			t.Errorf("spawn delay = %d, want [20,50)", pt.SpawnDelay())
		}
		if pt.Opacity != 0 || pt.Scale != p.FreshScale {
			t.Errorf("opacity/scale = %v/%v, want 0/%v", pt.Opacity, pt.Scale, p.FreshScale)
		}
		if pt.X < 0 || pt.X >= 800 || pt.Y < 0 || pt.Y >= 600 {
			t.Errorf("position (%v, %v) outside canvas", pt.X, pt.Y)
		}
		if math.Abs(pt.VX) > 0.75 || math.Abs(pt.VY) > 0.75 {
			t.Errorf("initial velocity (%v, %v) outside ±0.75", pt.VX, pt.VY)
		}
	}
}
