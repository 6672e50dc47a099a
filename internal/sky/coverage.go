package sky

import (
	"image/color"

	"skyplayer/internal/core"
)

// Coverage is a Surface that measures how much area each palette band covers
// instead of drawing anything.
type Coverage struct {
	size    core.Size
	palette Palette

	Bright int
	Mid    int
	Dim    int
	Other  int
	Lines  int
}

// NewCoverage returns a w×h counting surface for palette p.
func NewCoverage(w, h int, p Palette) *Coverage {
	return &Coverage{size: core.Size{W: w, H: h}, palette: p}
}

// Size returns the dimensions of the measured surface.
func (c *Coverage) Size() core.Size { return c.size }

// Clear resets the counters.
func (c *Coverage) Clear() {
	c.Bright, c.Mid, c.Dim, c.Other, c.Lines = 0, 0, 0, 0, 0
}

// FillRect adds the on-surface area of the rectangle to the band of col.
func (c *Coverage) FillRect(x, y, w, h int, col color.Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.size.W), min(y+h, c.size.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	area := (x1 - x0) * (y1 - y0)
	switch color.GrayModel.Convert(col).(color.Gray).Y {
	case c.palette.Bright:
		c.Bright += area
	case c.palette.Mid:
		c.Mid += area
	case c.palette.Dim:
		c.Dim += area
	default:
		c.Other += area
	}
}

// StrokeLine counts grid lines without measuring their area.
func (c *Coverage) StrokeLine(x0, y0, x1, y1 int, col color.Color) { c.Lines++ }

// Shares returns the fraction of the surface in each band.
func (c *Coverage) Shares() (bright, mid, dim float64) {
	total := float64(c.size.W * c.size.H)
	if total == 0 {
		return 0, 0, 0
	}
	return float64(c.Bright) / total, float64(c.Mid) / total, float64(c.Dim) / total
}
