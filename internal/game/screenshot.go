package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// frameGrab is a copy of the rendered frame waiting to be saved.
type frameGrab struct {
	pixels []byte
	w, h   int
	at     time.Time
}

func grabFrame(screen *ebiten.Image) *frameGrab {
	b := screen.Bounds()
	g := &frameGrab{w: b.Dx(), h: b.Dy(), at: time.Now()}
	g.pixels = make([]byte, 4*g.w*g.h)
	screen.ReadPixels(g.pixels)
	return g
}

// image converts ebiten's premultiplied pixels to straight alpha.
func (g *frameGrab) image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.w, g.h))
	for i := 0; i+3 < len(g.pixels); i += 4 {
		r, gr, b, a := g.pixels[i], g.pixels[i+1], g.pixels[i+2], g.pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			gr = uint8(min(int(gr)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = gr
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func (g *frameGrab) defaultName(dir string) string {
	return filepath.Join(dir, "heartswarm_"+g.at.Format("20060102_150405")+".png")
}

// saveWithDialog asks where to save the grab. Cancelling is not an error.
func saveWithDialog(g *frameGrab, dir string) (string, error) {
	path, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename(g.defaultName(dir)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}
	return path, writePNG(path, g.image())
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
