//go:build ebiten

package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/library"
	"skyplayer/internal/playlist"
)

// NowPlaying shows the active track with its cover and a play/pause button.
type NowPlaying struct {
	bounds image.Rectangle
	button image.Rectangle
	brush  brush

	track    playlist.Track
	hasTrack bool
	playing  bool

	thumb    *ebiten.Image
	thumbURI string

	onToggle func()
}

// NewNowPlaying builds the panel; onToggle runs when the button is clicked.
func NewNowPlaying(onToggle func()) *NowPlaying {
	return &NowPlaying{brush: newBrush(), onToggle: onToggle}
}

// Height is the vertical space the panel needs.
func (n *NowPlaying) Height() int { return thumbSize + 2*panelPadding }

// SetBounds places the panel.
func (n *NowPlaying) SetBounds(r image.Rectangle) {
	n.bounds = r
	top := r.Min.Y + (r.Dy()-buttonHeight)/2
	n.button = image.Rect(r.Max.X-panelPadding-buttonWidth, top, r.Max.X-panelPadding, top+buttonHeight)
}

// SetTrack shows t, or an empty panel when ok is false.
func (n *NowPlaying) SetTrack(t playlist.Track, ok bool) {
	n.track, n.hasTrack = t, ok
	if !ok || t.AlbumCover == n.thumbURI {
		return
	}
	n.thumbURI = t.AlbumCover
	if n.thumb != nil {
		n.thumb.Dispose()
		n.thumb = nil
	}
	if t.AlbumCover == "" {
		return
	}
	img, err := library.Thumbnail(t.AlbumCover, thumbSize)
	if err != nil {
		log.Debug().Err(err).Str("file", t.AudioFile).Msg("cover thumbnail failed")
		return
	}
	n.thumb = ebiten.NewImageFromImage(img)
}

// SetPlaying switches the button label.
func (n *NowPlaying) SetPlaying(playing bool) { n.playing = playing }

// Update handles clicks on the play/pause button.
func (n *NowPlaying) Update() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if pointInRect(mx, my, n.button) && n.onToggle != nil {
		n.onToggle()
	}
}

// Draw paints the panel onto screen.
func (n *NowPlaying) Draw(screen *ebiten.Image) {
	if n.bounds.Empty() {
		return
	}
	n.brush.fill(screen, n.bounds, panelColor)

	thumbRect := image.Rect(n.bounds.Min.X+panelPadding, n.bounds.Min.Y+panelPadding,
		n.bounds.Min.X+panelPadding+thumbSize, n.bounds.Min.Y+panelPadding+thumbSize)
	if n.thumb != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(thumbRect.Min.X), float64(thumbRect.Min.Y))
		screen.DrawImage(n.thumb, op)
	} else {
		n.brush.fill(screen, thumbRect, dragColor)
	}

	x := thumbRect.Max.X + panelPadding
	width := n.button.Min.X - panelPadding - x
	if !n.hasTrack {
		drawText(screen, "No track selected", x, thumbRect.Min.Y+20, width, dimColor)
	} else {
		drawText(screen, n.track.TrackName, x, thumbRect.Min.Y+14, width, textColor)
		drawText(screen, n.track.ArtistName, x, thumbRect.Min.Y+34, width, dimColor)
		drawText(screen, n.track.Duration, x, thumbRect.Min.Y+54, width, dimColor)
	}

	label := "Play"
	if n.playing {
		label = "Pause"
	}
	n.brush.button(screen, n.button, label)
}
