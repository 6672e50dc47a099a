// Package playlist holds the ordered track list and the active track pointer.
package playlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrIndexOutOfRange is returned when an index does not address a track.
var ErrIndexOutOfRange = errors.New("playlist: index out of range")

// Track is the display record for one audio file.
type Track struct {
	AlbumCover string `json:"albumCover"`
	ArtistName string `json:"artistName"`
	AlbumName  string `json:"albumName"`
	Year       int    `json:"year"`
	TrackName  string `json:"trackName"`
	Duration   string `json:"duration"`
	AudioFile  string `json:"audioFile"`
}

// YearLabel renders the year, or "Unknown Year" when the tag had none.
func (t Track) YearLabel() string {
	if t.Year <= 0 {
		return "Unknown Year"
	}
	return strconv.Itoa(t.Year)
}

// MarshalJSON writes a missing year as "Unknown Year" and a known one as a
// number.
func (t Track) MarshalJSON() ([]byte, error) {
	type plain Track
	var year any = t.Year
	if t.Year <= 0 {
		year = t.YearLabel()
	}
	return json.Marshal(struct {
		plain
		Year any `json:"year"`
	}{plain(t), year})
}

// UnmarshalJSON accepts both forms written by MarshalJSON; a non-numeric year
// reads back as zero.
func (t *Track) UnmarshalJSON(data []byte) error {
	type plain Track
	aux := struct {
		*plain
		Year json.RawMessage `json:"year"`
	}{plain: (*plain)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Year = 0
	raw := bytes.TrimSpace(aux.Year)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, &t.Year)
}

// Playlist is an ordered list of tracks with one active position. It is not
// safe for concurrent use.
type Playlist struct {
	tracks []Track
	active int
}

// New builds a playlist; the first track is active.
func New(tracks []Track) *Playlist {
	return &Playlist{tracks: append([]Track(nil), tracks...)}
}

// Len returns the number of tracks.
func (p *Playlist) Len() int { return len(p.tracks) }

// Tracks returns a copy of the current order.
func (p *Playlist) Tracks() []Track { return append([]Track(nil), p.tracks...) }

// At returns the track at index i.
func (p *Playlist) At(i int) (Track, error) {
	if i < 0 || i >= len(p.tracks) {
		return Track{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return p.tracks[i], nil
}

// Active returns the active index, or -1 when the playlist is empty.
func (p *Playlist) Active() int {
	if len(p.tracks) == 0 {
		return -1
	}
	return p.active
}

// ActiveTrack returns the active track and whether there is one.
func (p *Playlist) ActiveTrack() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}
	return p.tracks[p.active], true
}

// SetActive marks index i as the active track.
func (p *Playlist) SetActive(i int) error {
	if i < 0 || i >= len(p.tracks) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	p.active = i
	return nil
}

// Move removes the track at from and reinserts it at to. The active index
// follows the active track: if it was moved it lands on to, and if another
// track crossed over it, it shifts one step toward the vacated slot.
func (p *Playlist) Move(from, to int) error {
	n := len(p.tracks)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from %d", ErrIndexOutOfRange, from)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to %d", ErrIndexOutOfRange, to)
	}
	if from == to {
		return nil
	}

	moved := p.tracks[from]
	p.tracks = append(p.tracks[:from], p.tracks[from+1:]...)
	p.tracks = append(p.tracks[:to], append([]Track{moved}, p.tracks[to:]...)...)

	p.active = AdjustActive(p.active, from, to)
	return nil
}

// AdjustActive returns the active index after moving from -> to.
func AdjustActive(active, from, to int) int {
	switch {
	case from == active:
		return to
	case from < active && to >= active:
		return active - 1
	case from > active && to <= active:
		return active + 1
	default:
		return active
	}
}

// Replace swaps in a new track list, keeping the active track when its audio
// file is still present and clamping the index otherwise.
func (p *Playlist) Replace(tracks []Track) {
	var current string
	if t, ok := p.ActiveTrack(); ok {
		current = t.AudioFile
	}
	p.tracks = append([]Track(nil), tracks...)
	for i, t := range p.tracks {
		if current != "" && t.AudioFile == current {
			p.active = i
			return
		}
	}
	if p.active >= len(p.tracks) {
		p.active = len(p.tracks) - 1
	}
	if p.active < 0 {
		p.active = 0
	}
}
