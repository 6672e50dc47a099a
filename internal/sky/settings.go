package sky

import (
	"image/color"
	"time"
)

// Palette maps blended density onto the three brightness bands.
type Palette struct {
	BrightAbove float64
	MidAbove    float64

	Bright uint8
	Mid    uint8
	Dim    uint8
}

// Shade quantizes a density value into a gray level.
func (p Palette) Shade(v float64) color.Gray {
	switch {
	case v > p.BrightAbove:
		return color.Gray{Y: p.Bright}
	case v > p.MidAbove:
		return color.Gray{Y: p.Mid}
	default:
		return color.Gray{Y: p.Dim}
	}
}

// Settings holds the tunables of the sky animation.
type Settings struct {
	// PixelSize is the edge of one pixel block in raw pixels.
	PixelSize int
	// NoiseScale is the size of one noise cell in pixel blocks.
	NoiseScale float64
	// SpeedX and SpeedY are drift speeds in noise-space units per second.
	SpeedX float64
	SpeedY float64

	RegenInterval time.Duration
	BlendDuration time.Duration

	Domain    Domain
	Palette   Palette
	GridColor color.Color
}

// DefaultSettings returns the standard sky look.
func DefaultSettings() Settings {
	return Settings{
		PixelSize:     5,
		NoiseScale:    30,
		SpeedX:        0.001,
		SpeedY:        0.0005,
		RegenInterval: 3500 * time.Millisecond,
		BlendDuration: 6000 * time.Millisecond,
		Domain:        DomainUnit,
		Palette: Palette{
			BrightAbove: 210,
			MidAbove:    180,
			Bright:      255,
			Mid:         230,
			Dim:         200,
		},
		GridColor: color.NRGBA{R: 255, G: 255, B: 255, A: 77},
	}
}
