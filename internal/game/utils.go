package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/heartswarm/internal/swarm"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// statusLine is the debug HUD text.
func statusLine(s *swarm.Scene, uptime time.Duration, tps float64) string {
	visible := 0
	for i := range s.Particles() {
		if !s.Particles()[i].Pending() {
			visible++
		}
	}
	line := fmt.Sprintf("%s | particles %d/%d | up %s | %.0f TPS",
		s.State(), visible, len(s.Particles()), formatDuration(uptime), tps)
	if sw := s.Shockwave(); sw != nil {
		line += fmt.Sprintf(" | ring r=%.0f", sw.Radius)
	}
	if s.State() == swarm.Exploding {
		line += fmt.Sprintf(" | respawn %d", s.RespawnTimer())
	}
	return line
}

func helpLine() string {
	return "Hold mouse/touch: heart | S: screenshot | D/F1: HUD | Esc/Q: quit"
}
