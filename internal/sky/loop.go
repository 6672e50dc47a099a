package sky

import (
	"context"
	"image"
	"time"

	"github.com/rs/zerolog/log"

	"skyplayer/internal/core"
	"skyplayer/internal/render"
)

// Loop drives a compositor on a ticker without a window. It owns its state and
// canvas; frames leave the loop only as snapshots handed to publish.
type Loop struct {
	comp     *Compositor
	canvas   *render.Canvas
	interval time.Duration
	clock    *core.FrameClock
	publish  func(*image.RGBA)
}

// NewLoop builds a loop rendering w×h frames at fps frames per second.
func NewLoop(comp *Compositor, w, h, fps int, publish func(*image.RGBA)) *Loop {
	if fps <= 0 {
		fps = 30
	}
	return &Loop{
		comp:     comp,
		canvas:   render.NewCanvas(w, h),
		interval: time.Second / time.Duration(fps),
		clock:    core.NewFrameClock(),
		publish:  publish,
	}
}

// Run renders frames until ctx is cancelled, then returns ctx.Err().
func (l *Loop) Run(ctx context.Context) error {
	size := l.canvas.Size()
	st := l.comp.Init(size.W, size.H)
	l.clock.Reset()
	l.clock.Tick()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	log.Info().Int("width", size.W).Int("height", size.H).Dur("interval", l.interval).Msg("sky loop started")
	defer log.Info().Msg("sky loop stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			st = l.comp.Frame(st, l.clock.Tick(), l.canvas)
			if l.publish != nil {
				l.publish(l.canvas.Snapshot())
			}
		}
	}
}
