package sky

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"skyplayer/internal/core"
	pcore "skyplayer/pkg/core"
)

// Compositor owns the sky settings and random source, and renders frames from
// a State.
type Compositor struct {
	settings Settings
	rng      *pcore.RNG
}

// NewCompositor validates the settings and returns a compositor drawing noise
// from rng.
func NewCompositor(settings Settings, rng *pcore.RNG) *Compositor {
	if settings.PixelSize <= 0 {
		panic(fmt.Sprintf("sky: pixel size must be positive, got %d", settings.PixelSize))
	}
	if settings.NoiseScale <= 0 {
		panic(fmt.Sprintf("sky: noise scale must be positive, got %v", settings.NoiseScale))
	}
	if settings.BlendDuration <= 0 {
		panic("sky: blend duration must be positive")
	}
	if rng == nil {
		rng = pcore.NewTimeRNG()
	}
	return &Compositor{settings: settings, rng: rng}
}

// Settings returns the compositor configuration.
func (c *Compositor) Settings() Settings { return c.settings }

// Grid returns the field size covering a surface of w×h pixels.
func (c *Compositor) Grid(w, h int) core.Size {
	p := c.settings.PixelSize
	return core.Size{W: core.CeilDiv(w, p), H: core.CeilDiv(h, p)}
}

// Init builds the state for a freshly mounted surface.
func (c *Compositor) Init(w, h int) State {
	return c.Resize(w, h)
}

// Resize discards the current state and starts over at the new surface size:
// offsets return to the origin and both fields are regenerated.
func (c *Compositor) Resize(w, h int) State {
	grid := c.Grid(w, h)
	field := c.generate(grid, 0, 0)
	log.Debug().Int("cols", grid.W).Int("rows", grid.H).Msg("sky resized")
	return State{Grid: grid, Prev: field, Target: field}
}

// Advance moves offsets, regenerates the target when due, and advances the
// blend factor by elapsed.
func (c *Compositor) Advance(st State, elapsed time.Duration) State {
	if elapsed < 0 {
		elapsed = 0
	}
	secs := elapsed.Seconds()
	st.OffsetX += c.settings.SpeedX * secs
	st.OffsetY += c.settings.SpeedY * secs

	st.SinceRegen += elapsed
	if st.SinceRegen > c.settings.RegenInterval {
		st.Target = c.generate(st.Grid, math.Floor(st.OffsetX), math.Floor(st.OffsetY))
		st.SinceRegen = 0
	}

	st.Blend += secs / c.settings.BlendDuration.Seconds()
	if st.Blend > 1 {
		st.Blend = 1
	}
	return st
}

// Render paints the blended field and the grid overlay onto surf.
func (c *Compositor) Render(st State, surf Surface) {
	size := surf.Size()
	p := c.settings.PixelSize
	pal := c.settings.Palette

	surf.Clear()
	for x := 0; x < st.Grid.W; x++ {
		for y := 0; y < st.Grid.H; y++ {
			v := Lerp(st.Prev.At(x, y), st.Target.At(x, y), st.Blend)
			surf.FillRect(x*p, y*p, p, p, pal.Shade(v))
		}
	}

	for x := 0; x <= size.W; x += p {
		surf.StrokeLine(x, 0, x, size.H, c.settings.GridColor)
	}
	for y := 0; y <= size.H; y += p {
		surf.StrokeLine(0, y, size.W, y, c.settings.GridColor)
	}
}

// Settle promotes the target once the blend has completed.
func Settle(st State) State {
	if st.Blend == 1 {
		st.Prev = st.Target
		st.Blend = 0
	}
	return st
}

// Frame renders one frame: advance, rasterize, then settle. A surface whose
// size no longer matches the state's grid is treated as a resize.
func (c *Compositor) Frame(st State, elapsed time.Duration, surf Surface) State {
	size := surf.Size()
	if !st.Ready() || c.Grid(size.W, size.H) != st.Grid {
		st = c.Resize(size.W, size.H)
	}
	st = c.Advance(st, elapsed)
	c.Render(st, surf)
	return Settle(st)
}

func (c *Compositor) generate(grid core.Size, ox, oy float64) *Field {
	return Generate(grid.W, grid.H, c.settings.NoiseScale, ox, oy, c.rng, c.settings.Domain)
}
