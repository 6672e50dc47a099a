// Package ui holds the player widgets drawn over the sky: the now-playing
// panel and the playlist table.
package ui

import (
	"image"
	"strconv"
	"time"

	"skyplayer/internal/playlist"
)

// Column is one playlist table column with its width in pixels.
type Column struct {
	Title string
	Width int
}

// Columns lists the playlist table columns in display order.
var Columns = []Column{
	{Title: "#", Width: 36},
	{Title: "Artist", Width: 150},
	{Title: "Album", Width: 150},
	{Title: "Year", Width: 100},
	{Title: "Track", Width: 190},
	{Title: "Duration", Width: 70},
}

// ColumnSpans stretches Columns over width pixels and returns the left edge
// and width of each column.
func ColumnSpans(width int) (lefts, widths []int) {
	total := 0
	for _, c := range Columns {
		total += c.Width
	}
	lefts = make([]int, len(Columns))
	widths = make([]int, len(Columns))
	x := 0
	for i, c := range Columns {
		w := c.Width * width / total
		if i == len(Columns)-1 {
			w = width - x
		}
		lefts[i], widths[i] = x, w
		x += w
	}
	return lefts, widths
}

// RowCells returns the column texts of the track at index i.
func RowCells(i int, t playlist.Track) []string {
	return []string{
		strconv.Itoa(i + 1),
		t.ArtistName,
		t.AlbumName,
		t.YearLabel(),
		t.TrackName,
		t.Duration,
	}
}

// Fit shortens s so it spans at most width pixels of glyphs charWidth wide.
func Fit(s string, width, charWidth int) string {
	if charWidth <= 0 {
		return s
	}
	maxChars := width / charWidth
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	if maxChars <= 3 {
		if maxChars <= 0 {
			return ""
		}
		return string(runes[:maxChars])
	}
	return string(runes[:maxChars-3]) + "..."
}

// TableLayout maps screen positions onto playlist rows. Rows below First are
// scrolled out of view.
type TableLayout struct {
	Bounds       image.Rectangle
	HeaderHeight int
	RowHeight    int
	First        int
}

// Visible returns how many rows fit under the header.
func (l TableLayout) Visible() int {
	if l.RowHeight <= 0 {
		return 0
	}
	n := (l.Bounds.Dy() - l.HeaderHeight) / l.RowHeight
	if n < 0 {
		return 0
	}
	return n
}

// RowRect returns the rectangle of row i, which may lie outside Bounds.
func (l TableLayout) RowRect(i int) image.Rectangle {
	top := l.Bounds.Min.Y + l.HeaderHeight + (i-l.First)*l.RowHeight
	return image.Rect(l.Bounds.Min.X, top, l.Bounds.Max.X, top+l.RowHeight)
}

// RowAt returns the row under (x, y), or -1 when the point is outside the
// first n rows.
func (l TableLayout) RowAt(x, y, n int) int {
	if l.RowHeight <= 0 || !pointInRect(x, y, l.Bounds) {
		return -1
	}
	off := y - l.Bounds.Min.Y - l.HeaderHeight
	if off < 0 {
		return -1
	}
	row := l.First + off/l.RowHeight
	if row >= n || row-l.First >= l.Visible() {
		return -1
	}
	return row
}

// Scroll moves First by delta rows, clamped so the last page stays full.
func (l *TableLayout) Scroll(delta, n int) {
	maxFirst := n - l.Visible()
	if maxFirst < 0 {
		maxFirst = 0
	}
	l.First += delta
	if l.First > maxFirst {
		l.First = maxFirst
	}
	if l.First < 0 {
		l.First = 0
	}
}

// DragTracker follows a row being dragged onto another row.
type DragTracker struct {
	from   int
	over   int
	active bool
}

// Begin starts dragging row.
func (d *DragTracker) Begin(row int) {
	d.from, d.over, d.active = row, row, row >= 0
}

// Hover records the row currently under the pointer.
func (d *DragTracker) Hover(row int) {
	if d.active {
		d.over = row
	}
}

// Target returns the row that would receive the drop, or -1 when a drop
// would not move anything.
func (d *DragTracker) Target() int {
	if !d.active || d.over < 0 || d.over == d.from {
		return -1
	}
	return d.over
}

// Source returns the dragged row, or -1 when idle.
func (d *DragTracker) Source() int {
	if !d.active {
		return -1
	}
	return d.from
}

// End finishes the drag over row. ok is false when nothing should move.
func (d *DragTracker) End(row int) (from, to int, ok bool) {
	if !d.active {
		return -1, -1, false
	}
	d.active = false
	if row < 0 || row == d.from {
		return d.from, row, false
	}
	return d.from, row, true
}

// DoubleClickWindow is the longest gap between the clicks of a double click.
const DoubleClickWindow = 400 * time.Millisecond

// ClickTracker recognises two clicks on the same row within a window.
type ClickTracker struct {
	Window time.Duration

	row   int
	at    time.Time
	armed bool
}

// Click records a click on row at the given time and reports whether it
// completes a double click.
func (c *ClickTracker) Click(row int, at time.Time) bool {
	window := c.Window
	if window <= 0 {
		window = DoubleClickWindow
	}
	if c.armed && row == c.row && at.Sub(c.at) <= window {
		c.armed = false
		return true
	}
	c.row, c.at, c.armed = row, at, row >= 0
	return false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
