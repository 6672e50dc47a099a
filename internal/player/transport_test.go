package player

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type fakeMedia struct {
	loaded   string
	playing  bool
	releases int
	loadErr    error
	releaseErr error
	calls      []string
}

func (m *fakeMedia) Load(path string) error {
	m.calls = append(m.calls, "load:"+path)
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = path
	return nil
}

func (m *fakeMedia) Play() error {
	m.calls = append(m.calls, "play")
	m.playing = true
	return nil
}

func (m *fakeMedia) Pause() error {
	m.calls = append(m.calls, "pause")
	m.playing = false
	return nil
}

func (m *fakeMedia) Release() error {
	m.calls = append(m.calls, "release")
	m.releases++
	m.playing = false
	m.loaded = ""
	return m.releaseErr
}

func TestToggleWithoutSource(t *testing.T) {
	tr := NewTransport(&fakeMedia{})
	if err := tr.Toggle(); !errors.Is(err, ErrNoSource) {
		t.Fatalf("Toggle err = %v, want ErrNoSource", err)
	}
	if tr.Status() != Paused {
		t.Fatalf("status = %v, want paused", tr.Status())
	}
}

func TestActivatePlaysAndToggles(t *testing.T) {
	m := &fakeMedia{}
	tr := NewTransport(m)
	if err := tr.Activate("/audio/a.mp3"); err != nil {
		t.Fatal(err)
	}
	if tr.Status() != Playing || !m.playing {
		t.Fatal("activate did not start playback")
	}
	if err := tr.Toggle(); err != nil {
		t.Fatal(err)
	}
	if tr.Status() != Paused || m.playing {
		t.Fatal("toggle did not pause")
	}
	if err := tr.Toggle(); err != nil {
		t.Fatal(err)
	}
	if tr.Status() != Playing {
		t.Fatal("toggle did not resume")
	}
}

func TestActivateReleasesPreviousSource(t *testing.T) {
	m := &fakeMedia{}
	tr := NewTransport(m)
	_ = tr.Activate("/audio/a.mp3")
	_ = tr.Activate("/audio/b.mp3")

	if m.releases != 1 {
		t.Fatalf("releases = %d, want 1", m.releases)
	}
	if tr.Source() != "/audio/b.mp3" || m.loaded != "/audio/b.mp3" {
		t.Fatalf("source = %q, loaded = %q", tr.Source(), m.loaded)
	}

	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if m.releases != 2 || tr.Source() != "" || tr.Status() != Paused {
		t.Fatal("close did not release the source")
	}
	if err := tr.Close(); err != nil || m.releases != 2 {
		t.Fatal("second close should be a no-op")
	}
}

func TestActivateSameSourceResumes(t *testing.T) {
	m := &fakeMedia{}
	tr := NewTransport(m)
	_ = tr.Activate("/audio/a.mp3")
	_ = tr.Pause()
	if err := tr.Activate("/audio/a.mp3"); err != nil {
		t.Fatal(err)
	}
	if m.releases != 0 || tr.Status() != Playing {
		t.Fatal("re-activating the same source should resume without reloading")
	}
}

func TestActivateLoadFailureLeavesPaused(t *testing.T) {
	m := &fakeMedia{}
	tr := NewTransport(m)
	_ = tr.Activate("/audio/a.mp3")

	m.loadErr = errors.New("corrupt")
	if err := tr.Activate("/audio/bad.mp3"); err == nil {
		t.Fatal("expected load error")
	}
	if tr.Status() != Paused || tr.Source() != "" {
		t.Fatalf("after failed load: status=%v source=%q", tr.Status(), tr.Source())
	}
	if m.releases != 2 {
		t.Fatalf("releases = %d, want 2 (old source and failed load)", m.releases)
	}
}

func TestActivateLoadFailureLogsReleaseError(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	m := &fakeMedia{loadErr: errors.New("corrupt"), releaseErr: errors.New("device busy")}
	tr := NewTransport(m)
	err := tr.Activate("/audio/bad.mp3")
	if err == nil || !strings.Contains(err.Error(), "corrupt") {
		t.Fatalf("Activate err = %v, want the load error", err)
	}
	if tr.Status() != Paused || tr.Source() != "" {
		t.Fatalf("after failed load: status=%v source=%q", tr.Status(), tr.Source())
	}
	if !strings.Contains(buf.String(), "device busy") {
		t.Fatalf("release error was not logged: %q", buf.String())
	}
}
