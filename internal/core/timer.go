package core

import "time"

// FrameClock measures the time elapsed between consecutive frames.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock constructs a clock reading the wall clock.
func NewFrameClock() *FrameClock {
	return &FrameClock{now: time.Now}
}

// NewFrameClockWith constructs a clock driven by the provided time source.
func NewFrameClockWith(now func() time.Time) *FrameClock {
	if now == nil {
		now = time.Now
	}
	return &FrameClock{now: now}
}

// Tick returns the time since the previous Tick. The first call returns zero.
func (c *FrameClock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	return delta
}

// Reset forgets the previous frame so the next Tick returns zero.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
