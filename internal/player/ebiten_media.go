//go:build ebiten

package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the output rate of the shared audio context.
const SampleRate = 44100

// EbitenMedia plays files through an ebiten audio context.
type EbitenMedia struct {
	ctx    *audio.Context
	file   *os.File
	player *audio.Player
}

// NewEbitenMedia returns a media handle bound to ctx. Pass nil to use the
// process-wide context, creating it on first use.
func NewEbitenMedia(ctx *audio.Context) *EbitenMedia {
	if ctx == nil {
		ctx = audio.CurrentContext()
	}
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &EbitenMedia{ctx: ctx}
}

// Load opens and decodes path. Any previous source must be released first.
func (m *EbitenMedia) Load(path string) error {
	if m.player != nil {
		return fmt.Errorf("media: source already loaded")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	stream, err := decode(m.ctx.SampleRate(), f, filepath.Ext(path))
	if err != nil {
		f.Close()
		return err
	}
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		f.Close()
		return err
	}
	m.file = f
	m.player = p
	return nil
}

// Play starts or resumes playback.
func (m *EbitenMedia) Play() error {
	if m.player == nil {
		return ErrNoSource
	}
	m.player.Play()
	return nil
}

// Pause halts playback at the current position.
func (m *EbitenMedia) Pause() error {
	if m.player == nil {
		return ErrNoSource
	}
	m.player.Pause()
	return nil
}

// Release closes the player and the underlying file.
func (m *EbitenMedia) Release() error {
	var err error
	if m.player != nil {
		m.player.Pause()
		err = m.player.Close()
		m.player = nil
	}
	if m.file != nil {
		if cerr := m.file.Close(); err == nil {
			err = cerr
		}
		m.file = nil
	}
	return err
}

func decode(sampleRate int, src io.ReadSeeker, ext string) (io.Reader, error) {
	switch strings.ToLower(ext) {
	case ".mp3":
		return mp3.DecodeWithSampleRate(sampleRate, src)
	case ".wav":
		return wav.DecodeWithSampleRate(sampleRate, src)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(sampleRate, src)
	default:
		return nil, fmt.Errorf("media: playback of %s files is not supported", ext)
	}
}
