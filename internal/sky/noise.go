// Package sky animates the pixelated cloud background: a bilinear value-noise
// generator and a compositor that blends successive noise fields over time.
package sky

import (
	"fmt"
	"math"

	"skyplayer/internal/core"
	pcore "skyplayer/pkg/core"
)

// Domain selects the range lattice values are drawn from.
type Domain int

const (
	// DomainUnit draws from [0, 1). Combined with Normalize this keeps the
	// field in the upper half of [0, 255], which is the look the bands are
	// tuned for.
	DomainUnit Domain = iota
	// DomainSigned draws from [-1, 1) so Normalize spans the full range.
	DomainSigned
)

// Field is an immutable grid of cloud density values in [0, 255], indexed by
// pixel-block column and row.
type Field struct {
	grid *core.FloatGrid
}

// W returns the number of columns.
func (f *Field) W() int { return f.grid.W }

// H returns the number of rows.
func (f *Field) H() int { return f.grid.H }

// At returns the density at column x, row y.
func (f *Field) At(x, y int) float64 { return f.grid.At(x, y) }

// Lattice is the grid of random corner values a Field is interpolated from.
// For a W×H field it holds (W+1)×(H+1) values.
type Lattice struct {
	grid *core.FloatGrid
}

// NewLattice draws a lattice for a w×h field from rng.
func NewLattice(w, h int, rng *pcore.RNG, d Domain) *Lattice {
	requirePositive(w, h)
	grid := core.NewFloatGrid(w+1, h+1)
	switch d {
	case DomainSigned:
		pcore.FillSigned(rng.Source(), grid.Cells())
	default:
		pcore.FillUnit(rng.Source(), grid.Cells())
	}
	return &Lattice{grid: grid}
}

// LatticeFromValues builds a lattice from row-major values.
func LatticeFromValues(cols, rows int, values []float64) *Lattice {
	if cols*rows != len(values) {
		panic(fmt.Sprintf("sky: lattice %dx%d needs %d values, got %d", cols, rows, cols*rows, len(values)))
	}
	grid := core.NewFloatGrid(cols, rows)
	copy(grid.Cells(), values)
	return &Lattice{grid: grid}
}

func (l *Lattice) at(x, y int) float64 {
	x, y = l.grid.Wrap(x, y)
	return l.grid.At(x, y)
}

// Sample interpolates the lattice at field cell (x, y) for the given scale
// and offset, returning the normalized density.
func (l *Lattice) Sample(x, y int, scale, ox, oy float64) float64 {
	px := (float64(x) + ox) / scale
	py := (float64(y) + oy) / scale
	gx := math.Floor(px)
	gy := math.Floor(py)
	fx := px - gx
	fy := py - gy
	ix, iy := int(gx), int(gy)

	v := Bilerp(
		l.at(ix, iy), l.at(ix+1, iy),
		l.at(ix, iy+1), l.at(ix+1, iy+1),
		fx, fy,
	)
	return clamp(Normalize(v), 0, 255)
}

// Field samples every cell of a w×h field.
func (l *Lattice) Field(w, h int, scale, ox, oy float64) *Field {
	requirePositive(w, h)
	if scale <= 0 {
		panic(fmt.Sprintf("sky: noise scale must be positive, got %v", scale))
	}
	grid := core.NewFloatGrid(w, h)
	cells := grid.Cells()
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			cells[row+x] = l.Sample(x, y, scale, ox, oy)
		}
	}
	return &Field{grid: grid}
}

// Generate draws a fresh lattice and samples a w×h field from it.
func Generate(w, h int, scale, ox, oy float64, rng *pcore.RNG, d Domain) *Field {
	return NewLattice(w, h, rng, d).Field(w, h, scale, ox, oy)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Bilerp interpolates the four corners first along x, then along y.
func Bilerp(tl, tr, bl, br, fx, fy float64) float64 {
	top := Lerp(tl, tr, fx)
	bottom := Lerp(bl, br, fx)
	return Lerp(top, bottom, fy)
}

// Normalize maps a [-1, 1] value onto [0, 255].
func Normalize(v float64) float64 {
	return (v + 1) / 2 * 255
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func requirePositive(w, h int) {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("sky: field dimensions must be positive, got %dx%d", w, h))
	}
}
