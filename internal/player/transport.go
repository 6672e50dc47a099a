// Package player implements the play/pause transport for the active track.
package player

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrNoSource is returned when playback is requested with nothing loaded.
var ErrNoSource = errors.New("player: no source loaded")

// Status is the transport state.
type Status int

const (
	// Paused is the initial state and the state after a failed load.
	Paused Status = iota
	// Playing means the media handle is producing audio.
	Playing
)

func (s Status) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Media is a playable handle for one audio source at a time.
type Media interface {
	Load(path string) error
	Play() error
	Pause() error
	Release() error
}

// Transport is a two-state machine over a Media handle. It is driven by user
// intent (Toggle) and by the active track changing (Activate).
type Transport struct {
	media  Media
	status Status
	source string
}

// NewTransport wraps media. The transport starts paused with no source.
func NewTransport(media Media) *Transport {
	return &Transport{media: media}
}

// Status returns the current state.
func (t *Transport) Status() Status { return t.status }

// Source returns the loaded source path, if any.
func (t *Transport) Source() string { return t.source }

// Toggle flips between Playing and Paused.
func (t *Transport) Toggle() error {
	if t.status == Playing {
		return t.Pause()
	}
	return t.Play()
}

// Play starts playback of the loaded source.
func (t *Transport) Play() error {
	if t.source == "" {
		return ErrNoSource
	}
	if t.status == Playing {
		return nil
	}
	if err := t.media.Play(); err != nil {
		return fmt.Errorf("play %s: %w", t.source, err)
	}
	t.status = Playing
	return nil
}

// Pause halts playback.
func (t *Transport) Pause() error {
	if t.status == Paused {
		return nil
	}
	if err := t.media.Pause(); err != nil {
		return fmt.Errorf("pause %s: %w", t.source, err)
	}
	t.status = Paused
	return nil
}

// Activate switches to path and starts playing it. The previous source is
// released first; if loading fails the transport is left paused and empty.
func (t *Transport) Activate(path string) error {
	if path == t.source && t.source != "" {
		return t.Play()
	}
	if err := t.release(); err != nil {
		log.Warn().Err(err).Str("source", t.source).Msg("release previous source")
	}
	if err := t.media.Load(path); err != nil {
		if rerr := t.media.Release(); rerr != nil {
			log.Warn().Err(rerr).Str("source", path).Msg("release failed source")
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	t.source = path
	log.Debug().Str("source", path).Msg("source attached")
	return t.Play()
}

// Close releases the current source.
func (t *Transport) Close() error {
	return t.release()
}

func (t *Transport) release() error {
	t.status = Paused
	if t.source == "" {
		return nil
	}
	t.source = ""
	return t.media.Release()
}
