// Package render provides drawing surfaces for the sky compositor.
package render

import (
	"image"
	"image/color"

	"skyplayer/internal/core"
)

// Canvas is a CPU-side drawing surface backed by an RGBA image.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas of the given pixel size.
func NewCanvas(w, h int) *Canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size reports the canvas dimensions in pixels.
func (c *Canvas) Size() core.Size {
	b := c.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Resize reallocates the backing image when the dimensions change.
func (c *Canvas) Resize(w, h int) {
	if s := c.Size(); s.W == w && s.H == h {
		return
	}
	*c = *NewCanvas(w, h)
}

// Clear resets every pixel to transparent black.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// FillRect replaces the pixels of the rectangle with col, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col color.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	fillRectRGBA(c.img.Pix, c.img.Stride, r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, col)
}

// StrokeLine draws a one pixel wide line from (x0, y0) to (x1, y1), compositing
// col over the existing pixels. Points outside the canvas are skipped.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 int, col color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	bounds := c.img.Bounds()
	e := dx + dy
	for {
		if (image.Point{X: x0, Y: y0}).In(bounds) {
			blendPixelRGBA(c.img.Pix, c.img.PixOffset(x0, y0), col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Image exposes the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Snapshot returns a copy of the current frame.
func (c *Canvas) Snapshot() *image.RGBA {
	cp := image.NewRGBA(c.img.Bounds())
	copy(cp.Pix, c.img.Pix)
	return cp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
