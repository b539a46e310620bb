package swarm

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestHeartPointSamples(t *testing.T) {
	const cx, cy, scale, pulse = 100.0, 200.0, 10.0, 1.05
	k := scale * pulse
	s := math.Sqrt2 / 2

	tests := []struct {
		name   string
		phase  float64
		hx, hy float64
	}{
		{"bottom cusp", 0, 0, 5},
		{"quarter", math.Pi / 2, 16, 4},
		{"top notch", math.Pi, 0, -17},
		{"three quarters", 3 * math.Pi / 2, -16, 4},
		{"eighth", math.Pi / 4, 16 * s * s * s, 13*s + 2*s + 1},
		{"full turn", 2 * math.Pi, 0, 5},
	}
	for _, tt := range tests {
		x, y := HeartPoint(tt.phase, pulse, cx, cy, scale)
		wantX := cx + tt.hx*k
		wantY := cy - tt.hy*k
		if !near(x, wantX, 1e-6) || !near(y, wantY, 1e-6) {
			t.Errorf("%s: HeartPoint(%v) = (%v, %v), want (%v, %v)", tt.name, tt.phase, x, y, wantX, wantY)
		}
	}
}

func TestHeartPointScalesAroundCentre(t *testing.T) {
	x1, y1 := HeartPoint(1.3, 1, 0, 0, 1)
	x2, y2 := HeartPoint(1.3, 2, 0, 0, 3)
	if !near(x2, 6*x1, eps) || !near(y2, 6*y1, eps) {
		t.Errorf("scaled point = (%v, %v), want (%v, %v)", x2, y2, 6*x1, 6*y1)
	}
}

func TestHeartPhaseSpacing(t *testing.T) {
	if got := heartPhase(0, 150); got != 0 {
		t.Errorf("heartPhase(0) = %v, want 0", got)
	}
	if got, want := heartPhase(75, 150), math.Pi; !near(got, want, eps) {
		t.Errorf("heartPhase(75) = %v, want %v", got, want)
	}
	if got := heartPhase(3, 0); got != 0 {
		t.Errorf("heartPhase with no particles = %v, want 0", got)
	}
}

func TestBreathe(t *testing.T) {
	if got := breathe(0, 0.05); got != 1 {
		t.Errorf("breathe(0) = %v, want 1", got)
	}
	if got := breathe(1000*math.Pi/2, 0.05); !near(got, 1.05, eps) {
		t.Errorf("breathe(peak) = %v, want 1.05", got)
	}
}
