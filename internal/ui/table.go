//go:build ebiten

package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/playlist"
)

// PlaylistTable lists the tracks. Dragging a row onto another reorders the
// playlist and a double click activates a row.
type PlaylistTable struct {
	list   *playlist.Playlist
	layout TableLayout
	brush  brush
	drag   DragTracker
	clicks ClickTracker

	onActivate func(int)
}

// NewPlaylistTable builds a table over list.
func NewPlaylistTable(list *playlist.Playlist, onActivate func(int)) *PlaylistTable {
	return &PlaylistTable{
		list:       list,
		layout:     TableLayout{HeaderHeight: headerHeight, RowHeight: rowHeight},
		brush:      newBrush(),
		onActivate: onActivate,
	}
}

// SetBounds places the table.
func (t *PlaylistTable) SetBounds(r image.Rectangle) {
	t.layout.Bounds = r
	t.layout.Scroll(0, t.list.Len())
}

// Update handles scrolling, dragging and double clicks.
func (t *PlaylistTable) Update() {
	n := t.list.Len()
	mx, my := ebiten.CursorPosition()
	if _, dy := ebiten.Wheel(); dy != 0 && pointInRect(mx, my, t.layout.Bounds) {
		if dy > 0 {
			t.layout.Scroll(-1, n)
		} else {
			t.layout.Scroll(1, n)
		}
	}
	row := t.layout.RowAt(mx, my, n)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		t.drag.Begin(row)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		from, to, ok := t.drag.End(row)
		if ok {
			if err := t.list.Move(from, to); err != nil {
				log.Warn().Err(err).Int("from", from).Int("to", to).Msg("reorder failed")
			}
			return
		}
		if row >= 0 && from == row && t.clicks.Click(row, time.Now()) && t.onActivate != nil {
			t.onActivate(row)
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		t.drag.Hover(row)
	}
}

// Draw paints the table onto screen.
func (t *PlaylistTable) Draw(screen *ebiten.Image) {
	b := t.layout.Bounds
	if b.Empty() {
		return
	}
	t.brush.fill(screen, b, panelColor)

	inner := b.Dx() - 2*panelPadding
	lefts, widths := ColumnSpans(inner)
	x0 := b.Min.X + panelPadding
	for i, c := range Columns {
		drawText(screen, c.Title, x0+lefts[i], b.Min.Y+17, widths[i]-4, dimColor)
	}

	n := t.list.Len()
	if n == 0 {
		drawText(screen, "No tracks available", x0, b.Min.Y+headerHeight+16, inner, dimColor)
		return
	}

	active := t.list.Active()
	source, target := t.drag.Source(), t.drag.Target()
	last := t.layout.First + t.layout.Visible()
	if last > n {
		last = n
	}
	tracks := t.list.Tracks()
	for i := t.layout.First; i < last; i++ {
		rect := t.layout.RowRect(i)
		switch i {
		case active:
			t.brush.fill(screen, rect, activeColor)
		case source:
			t.brush.fill(screen, rect, dragColor)
		}
		if i == target {
			t.brush.fill(screen, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+2), cueColor)
		}
		for c, cell := range RowCells(i, tracks[i]) {
			drawText(screen, cell, x0+lefts[c], rect.Min.Y+16, widths[c]-4, textColor)
		}
	}
}
