package swarm

import "math"

// HeartPoint returns the point of the parametric heart curve at phase,
// scaled by scale*pulse and centred on (cx, cy). The curve's y axis points
// up, so it is inverted for the y-down screen.
func HeartPoint(phase, pulse, cx, cy, scale float64) (x, y float64) {
	s := math.Sin(phase)
	hx := 16 * s * s * s
	hy := 13*math.Cos(phase) - 5*math.Cos(2*phase) - 2*math.Cos(3*phase) - math.Cos(4*phase)
	return cx + hx*scale*pulse, cy - hy*scale*pulse
}

// heartPhase is the fixed angular position of particle i out of n.
func heartPhase(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * math.Pi / float64(n) * float64(i)
}

// breathe is the slow pulse applied to the heart size while it is held.
func breathe(elapsedMs, amp float64) float64 {
	return 1 + amp*math.Sin(elapsedMs/1000)
}
