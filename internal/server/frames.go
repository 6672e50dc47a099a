package server

import (
	"image"
	"sync/atomic"
)

// FrameStore holds the most recent sky frame published by a sky loop.
type FrameStore struct {
	latest atomic.Pointer[image.RGBA]
}

// Publish replaces the current frame. img must not be modified afterwards.
func (f *FrameStore) Publish(img *image.RGBA) { f.latest.Store(img) }

// Latest returns the current frame or nil before the first publish.
func (f *FrameStore) Latest() *image.RGBA { return f.latest.Load() }
