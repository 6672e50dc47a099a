//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a Canvas into a GPU image and draws it onto the screen.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter returns an empty painter; the image is allocated on first Blit.
func NewPainter() *Painter {
	return &Painter{}
}

// Blit uploads the canvas pixels and draws them at the origin of dst.
func (p *Painter) Blit(dst *ebiten.Image, canvas *Canvas) {
	size := canvas.Size()
	if size.Empty() {
		return
	}
	if p.img == nil || p.w != size.W || p.h != size.H {
		if p.img != nil {
			p.img.Dispose()
		}
		p.img = ebiten.NewImage(size.W, size.H)
		p.w, p.h = size.W, size.H
	}
	p.img.WritePixels(canvas.Image().Pix)
	dst.DrawImage(p.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
