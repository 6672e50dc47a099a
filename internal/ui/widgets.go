//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 12
	glyphWidth   = 7
	rowHeight    = 24
	headerHeight = 26
	buttonWidth  = 64
	buttonHeight = 26
	thumbSize    = 60
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 200}
	textColor   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	activeColor = color.RGBA{R: 70, G: 90, B: 130, A: 220}
	dragColor   = color.RGBA{R: 54, G: 56, B: 64, A: 220}
	cueColor    = color.RGBA{R: 120, G: 170, B: 255, A: 255}
)

// brush fills rectangles by scaling a single white pixel.
type brush struct {
	pixel *ebiten.Image
}

func newBrush() brush {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return brush{pixel: px}
}

func (b brush) fill(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	if rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(b.pixel, op)
}

func (b brush) button(dst *ebiten.Image, rect image.Rectangle, label string) {
	b.fill(dst, rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, textColor)
}

func drawText(dst *ebiten.Image, s string, x, y, width int, c color.Color) {
	text.Draw(dst, Fit(s, width, glyphWidth), basicfont.Face7x13, x, y, c)
}
