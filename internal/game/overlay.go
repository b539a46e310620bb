package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/heartswarm/internal/config"
	"github.com/iburimskiy/heartswarm/internal/swarm"
)

// glowOffsets are the eight directions the halo copies are drawn in.
var glowOffsets = [8][2]float64{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-0.7, -0.7}, {0.7, -0.7}, {-0.7, 0.7}, {0.7, 0.7},
}

// titleOverlay draws the title with a halo whose colour follows the heart.
type titleOverlay struct {
	text  string
	face  *text.GoTextFace
	fade  *gween.Tween
	alpha float32
	glow  *swarm.Glow
	halo  color.RGBA
}

func newTitleOverlay(title string) (*titleOverlay, error) {
	if title == "" {
		return nil, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load title font: %w", err)
	}
	return &titleOverlay{
		text: title,
		face: &text.GoTextFace{Source: src, Size: config.TitleFontSize},
		fade: gween.New(0, 1, config.TitleFadeInSec, ease.OutCubic),
		glow: swarm.NewGlow(),
		halo: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}, nil
}

// update advances the fade-in by one tick and the halo by one frame.
func (o *titleOverlay) update(forming bool, elapsedMs float64) {
	if o == nil {
		return
	}
	o.alpha, _ = o.fade.Update(1.0 / config.TPS)
	r, g, b := o.glow.Update(forming, elapsedMs)
	o.halo = color.RGBA{R: r, G: g, B: b, A: 255}
}

func (o *titleOverlay) draw(screen *ebiten.Image) {
	if o == nil || o.alpha <= 0 {
		return
	}
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()
	x := float64(w) / 2
	y := float64(h) * config.TitleOffsetY

	for _, off := range glowOffsets {
		op := o.options(x+off[0]*config.TitleGlowSize, y+off[1]*config.TitleGlowSize)
		op.ColorScale.ScaleWithColor(o.halo)
		op.ColorScale.ScaleAlpha(0.35 * o.alpha)
		text.Draw(screen, o.text, o.face, op)
	}

	op := o.options(x, y)
	op.ColorScale.ScaleAlpha(o.alpha)
	text.Draw(screen, o.text, o.face, op)
}

func (o *titleOverlay) options(x, y float64) *text.DrawOptions {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	return op
}
