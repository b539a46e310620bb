package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
)

// Burst decay rates, per second.
const (
	noiseDecay = 7.0
	thumpDecay = 4.0
	noiseMix   = 0.55
	thumpMix   = 0.45
)

// newBurst returns a finite mono streamer (copied to both channels) with a
// white-noise crack over a low sine thump, both decaying exponentially.
func newBurst(sr beep.SampleRate, d time.Duration, thumpHz float64, rng *rand.Rand) beep.Streamer {
	total := sr.N(d)
	pos := 0
	rate := float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			t := float64(pos) / rate
			noise := (rng.Float64()*2 - 1) * math.Exp(-noiseDecay*t)
			thump := math.Sin(2*math.Pi*thumpHz*t) * math.Exp(-thumpDecay*t)
			v := noiseMix*noise + thumpMix*thump
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

// gainToVolume maps a linear gain in (0,1] onto the base-2 exponent used by
// effects.Volume.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
