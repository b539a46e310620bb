package term

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/heartswarm/internal/audio"
	"github.com/iburimskiy/heartswarm/internal/config"
	"github.com/iburimskiy/heartswarm/internal/swarm"
)

// heartScaleFor fits the heart (about 32x30 units) into a w x h pixel canvas.
func heartScaleFor(w, h int) float64 {
	return math.Max(float64(min(w, h))/config.TermScaleDivisor, config.TermMinHeartScale)
}

// session holds the scene and its terminal canvas between events.
type session struct {
	scene  *swarm.Scene
	canvas *Canvas
	sound  *audio.Player
	held   bool
	start  time.Time

	// zoom is the configured heart scale relative to the default one.
	zoom float64
}

func newSession(cols, rows int, p swarm.Params, rng *rand.Rand, sound *audio.Player) *session {
	c := NewCanvas(cols, rows)
	w, h := c.Size()
	zoom := 1.0
	if def := swarm.DefaultParams().HeartScale; p.HeartScale > 0 && def > 0 {
		zoom = p.HeartScale / def
	}
	p.HeartScale = heartScaleFor(w, h) * zoom
	return &session{
		scene:  swarm.NewScene(float64(w), float64(h), p, rng),
		canvas: c,
		sound:  sound,
		start:  time.Now(),
		zoom:   zoom,
	}
}

// handle applies one terminal event. It returns false when the user quits.
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !s.held:
			s.held = true
			// Aim at the middle of the cell, which spans two pixel rows.
			s.scene.StartForming(float64(x)+0.5, float64(y*2)+1)
		case !pressed && s.held:
			s.held = false
			ox, _ := s.scene.Origin()
			w, _ := s.scene.Size()
			s.scene.StopForming()
			s.sound.Burst(audio.PanFor(ox, w))
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.canvas.Resize(cols, rows)
		w, h := s.canvas.Size()
		s.scene.Resize(float64(w), float64(h))
		s.scene.SetHeartScale(heartScaleFor(w, h) * s.zoom)
	}
	return true
}

// frame advances the scene one tick and copies it to the terminal.
func (s *session) frame(out cellWriter, now time.Time) {
	elapsed := float64(now.Sub(s.start).Microseconds()) / 1000
	s.scene.Tick(elapsed, s.canvas)
	s.canvas.Flush(out)
}

// pollEvents forwards terminal events until the screen closes or quit is
// closed.
func pollEvents(screen tcell.Screen, out chan<- tcell.Event, quit <-chan struct{}) {
	defer close(out)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-quit:
			return
		}
	}
}

// Run takes over the terminal until the user quits.
func Run(p swarm.Params, rng *rand.Rand, sound *audio.Player) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	cols, rows := screen.Size()
	s := newSession(cols, rows, p, rng, sound)

	ticker := time.NewTicker(config.TermFrameMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go pollEvents(screen, eventChan, quit)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !s.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			s.frame(screen, now)
			screen.Show()
		}
	}
}
