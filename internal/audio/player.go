package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// Player plays the release sound through the system speaker. A nil *Player
// is valid and silent, so callers can run without audio.
type Player struct {
	sr      beep.SampleRate
	d       time.Duration
	thumpHz float64
	volume  float64
	rng     *rand.Rand
}

// NewPlayer initialises the speaker. volume is a linear gain in [0,1].
func NewPlayer(sampleRate int, burst time.Duration, thumpHz, volume float64) (*Player, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{
		sr:      sr,
		d:       burst,
		thumpHz: thumpHz,
		volume:  volume,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// Burst plays one release sound. pan is in [-1,1], left to right.
func (p *Player) Burst(pan float64) {
	if p == nil || p.volume <= 0 {
		return
	}
	speaker.Play(p.streamer(pan))
}

func (p *Player) streamer(pan float64) beep.Streamer {
	return &effects.Volume{
		Streamer: &effects.Pan{
			Streamer: newBurst(p.sr, p.d, p.thumpHz, p.rng),
			Pan:      math.Max(-1, math.Min(1, pan)),
		},
		Base:   2,
		Volume: gainToVolume(p.volume),
		Silent: p.volume <= 0,
	}
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// PanFor maps an x position inside a surface of the given width to a pan.
func PanFor(x, width float64) float64 {
	if width <= 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, 2*x/width-1))
}
