package sky

import (
	"image/color"

	"skyplayer/internal/core"
)

// Surface is the drawing target the compositor paints each frame onto.
type Surface interface {
	Size() core.Size
	Clear()
	FillRect(x, y, w, h int, c color.Color)
	StrokeLine(x0, y0, x1, y1 int, c color.Color)
}
