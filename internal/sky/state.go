package sky

import (
	"time"

	"skyplayer/internal/core"
)

// State is the animation state threaded through every frame. The compositor
// takes it by value and returns the successor; nothing else mutates it.
type State struct {
	// Grid is the field size in pixel blocks.
	Grid core.Size

	Prev   *Field
	Target *Field

	// Blend is the progress from Prev to Target in [0, 1].
	Blend float64

	OffsetX float64
	OffsetY float64

	// SinceRegen is the time since Target was last regenerated.
	SinceRegen time.Duration
}

// Ready reports whether the state holds a field pair.
func (s State) Ready() bool {
	return s.Prev != nil && s.Target != nil
}
