//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"skyplayer/internal/sky"
)

// Overlay draws optional debugging visuals on top of the sky.
type Overlay struct {
	pixelSize  int
	showStats  bool
	showTarget bool
	brush      brush

	maskImg *ebiten.Image
	maskBuf []byte
}

// NewOverlay constructs a new overlay for blocks pixelSize pixels wide.
func NewOverlay(pixelSize int) *Overlay {
	return &Overlay{pixelSize: pixelSize, brush: newBrush()}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showTarget = !o.showTarget
	}
}

// Draw renders the enabled layers for st.
func (o *Overlay) Draw(screen *ebiten.Image, st sky.State) {
	if !st.Ready() {
		return
	}
	if o.showTarget {
		o.drawMask(screen, st.Target, color.RGBA{R: 255, G: 120, B: 40})
	}
	if o.showStats {
		b := screen.Bounds()
		rect := image.Rect(b.Max.X-230, b.Max.Y-86, b.Max.X-8, b.Max.Y-8)
		o.brush.fill(screen, rect, panelColor)
		lines := []string{
			fmt.Sprintf("fps %.1f  grid %dx%d", ebiten.ActualFPS(), st.Grid.W, st.Grid.H),
			fmt.Sprintf("blend %.3f", st.Blend),
			fmt.Sprintf("offset %.4f, %.4f", st.OffsetX, st.OffsetY),
			fmt.Sprintf("since regen %s", st.SinceRegen.Truncate(1e6)),
		}
		for i, line := range lines {
			drawText(screen, line, rect.Min.X+8, rect.Min.Y+16+i*17, rect.Dx()-16, textColor)
		}
	}
}

// drawMask tints each block by its target density so the next sky can be
// seen before the blend reaches it.
func (o *Overlay) drawMask(screen *ebiten.Image, field *sky.Field, tint color.RGBA) {
	w, h := field.W(), field.H()
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != w || o.maskImg.Bounds().Dy() != h {
		if o.maskImg != nil {
			o.maskImg.Dispose()
		}
		o.maskImg = ebiten.NewImage(w, h)
		o.maskBuf = make([]byte, 4*w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := field.At(x, y) / 255 * 160
			i := 4 * (y*w + x)
			o.maskBuf[i+0] = uint8(float64(tint.R) * a / 255)
			o.maskBuf[i+1] = uint8(float64(tint.G) * a / 255)
			o.maskBuf[i+2] = uint8(float64(tint.B) * a / 255)
			o.maskBuf[i+3] = uint8(a)
		}
	}
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.pixelSize), float64(o.pixelSize))
	screen.DrawImage(o.maskImg, op)
}
