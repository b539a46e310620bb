// Package game is the ebiten front end of the heart swarm.
package game

import (
	"errors"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/heartswarm/internal/audio"
	"github.com/iburimskiy/heartswarm/internal/config"
	"github.com/iburimskiy/heartswarm/internal/swarm"
)

// Game adapts a swarm.Scene to ebiten.Game.
type Game struct {
	scene  *swarm.Scene
	canvas *trailCanvas
	title  *titleOverlay
	sound  *audio.Player

	start time.Time
	w, h  int

	gesture  gesture
	touchBuf []ebiten.TouchID

	showHUD  bool
	wantShot bool
	grab     *frameGrab
	shotDir  string
	lastErr  error
}

// New wires a scene to the window. sound may be nil.
func New(scene *swarm.Scene, settings *config.Settings, sound *audio.Player) (*Game, error) {
	title, err := newTitleOverlay(settings.Title)
	if err != nil {
		return nil, err
	}
	w, h := scene.Size()
	return &Game{
		scene:   scene,
		title:   title,
		sound:   sound,
		start:   time.Now(),
		w:       int(w),
		h:       int(h),
		shotDir: settings.ScreenshotDir,
	}, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.wantShot = true
	}
	if g.grab != nil {
		g.saveGrab()
	}

	g.ensureCanvas()

	var in pointerInput
	in, g.touchBuf = pollPointer(g.touchBuf)
	switch g.gesture.step(in) {
	case gestureStart:
		g.scene.StartForming(float64(g.gesture.x), float64(g.gesture.y))
	case gestureEnd:
		x, _ := g.scene.Origin()
		g.scene.StopForming()
		g.sound.Burst(audio.PanFor(x, float64(g.w)))
	}

	elapsed := float64(time.Since(g.start).Microseconds()) / 1000
	g.scene.Tick(elapsed, g.canvas)
	g.title.update(g.scene.Forming(), elapsed)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas.img, nil)
	}
	g.title.draw(screen)

	if g.wantShot {
		g.grab = grabFrame(screen)
		g.wantShot = false
	}

	if g.showHUD {
		status := statusLine(g.scene, time.Since(g.start), ebiten.ActualTPS())
		if g.lastErr != nil {
			status += " | Error: " + g.lastErr.Error()
		}
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
		ebitenutil.DebugPrintAt(screen, helpLine(), 12, 28)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = max(outsideWidth, 1), max(outsideHeight, 1)
	return g.w, g.h
}

// ensureCanvas keeps the trail image and the scene bounds in step with the
// window size.
func (g *Game) ensureCanvas() {
	if g.canvas == nil {
		g.canvas = newTrailCanvas(g.w, g.h)
		g.scene.Resize(float64(g.w), float64(g.h))
		return
	}
	if cw, ch := g.canvas.size(); cw != g.w || ch != g.h {
		g.canvas = g.canvas.resized(g.w, g.h)
		g.scene.Resize(float64(g.w), float64(g.h))
	}
}

func (g *Game) saveGrab() {
	grab := g.grab
	g.grab = nil
	path, err := saveWithDialog(grab, g.shotDir)
	if err != nil {
		log.Printf("Screenshot failed: %v", err)
		g.lastErr = err
		return
	}
	if path != "" {
		log.Printf("Saved screenshot to %s", path)
	}
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Heart Swarm - hold to form a heart, release to burst")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
