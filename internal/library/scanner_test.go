package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanReadsTagsAndCover(t *testing.T) {
	dir := t.TempDir()
	cover := pngCover(t, 32, 16)
	writeFile(t, dir, "song.mp3", taggedMP3("Night Drive", "Artist 1", "Album 1", "2021", cover))

	res, err := NewScanner(dir, "").Scan(context.Background())
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.Tracks, 1)

	tr := res.Tracks[0]
	assert.Equal(t, "Night Drive", tr.TrackName)
	assert.Equal(t, "Artist 1", tr.ArtistName)
	assert.Equal(t, "Album 1", tr.AlbumName)
	assert.Equal(t, 2021, tr.Year)
	assert.Equal(t, "/audio/song.mp3", tr.AudioFile)
	assert.Equal(t, DataURI("image/png", cover), tr.AlbumCover)
	assert.True(t, strings.HasPrefix(tr.AlbumCover, "data:image/png;base64,"))
}

func TestScanFallbacksForUntaggedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tone.wav", pcmWAV(2))

	res, err := NewScanner(dir, "/media/").Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Tracks, 1)

	tr := res.Tracks[0]
	assert.Equal(t, UnknownArtist, tr.ArtistName)
	assert.Equal(t, UnknownAlbum, tr.AlbumName)
	assert.Equal(t, UnknownTitle, tr.TrackName)
	assert.Equal(t, "Unknown Year", tr.YearLabel())
	assert.Empty(t, tr.AlbumCover)
	assert.Equal(t, "0:02", tr.Duration)
	assert.Equal(t, "/media/tone.wav", tr.AudioFile)
}

func TestScanMeasuresMP3AndFLAC(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "frames.mp3", mp3Frames(77))
	writeFile(t, dir, "long.flac", flacStreamInfo(44100, 44100*125))

	res, err := NewScanner(dir, "").Scan(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Tracks, 2)

	byFile := map[string]string{}
	for _, tr := range res.Tracks {
		byFile[tr.AudioFile] = tr.Duration
	}
	assert.Equal(t, "0:02", byFile["/audio/frames.mp3"])
	assert.Equal(t, "2:05", byFile["/audio/long.flac"])
}

func TestScanIsolatesBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.mp3", taggedMP3("First", "X", "Y", "2000", nil))
	writeFile(t, dir, "b.mp3", []byte("oops"))
	writeFile(t, dir, "c.wav", pcmWAV(1))
	writeFile(t, dir, "notes.txt", []byte("not audio"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755))

	res, err := NewScanner(dir, "").Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Tracks, 2)
	assert.Equal(t, "/audio/a.mp3", res.Tracks[0].AudioFile)
	assert.Equal(t, "/audio/c.wav", res.Tracks[1].AudioFile)

	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "b.mp3", res.Skipped[0].Name)
	assert.ErrorContains(t, res.Err(), "b.mp3")
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := NewScanner(filepath.Join(t.TempDir(), "missing"), "").Scan(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestScanRejectsFile(t *testing.T) {
	p := writeFile(t, t.TempDir(), "file.mp3", []byte("x"))
	_, err := NewScanner(p, "").Scan(context.Background())
	require.ErrorIs(t, err, ErrNotDirectory)
}

func TestScanHonoursCancellation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.wav", pcmWAV(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewScanner(dir, "").Scan(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolve(t *testing.T) {
	s := NewScanner("/music", "/audio")
	p, err := s.Resolve("/audio/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/music", "a.mp3"), p)

	for _, bad := range []string{"/audio/../etc/passwd", "/other/a.mp3", "/audio/", "/audio/x/y.mp3", "/audio/.."} {
		_, err := s.Resolve(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                 "0:00",
		-time.Second:      "0:00",
		59 * time.Second:  "0:59",
		210900 * time.Millisecond: "3:30",
		65 * time.Minute:  "65:00",
	}
	for d, want := range cases {
		assert.Equal(t, want, FormatDuration(d), d.String())
	}
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("a.MP3"))
	assert.True(t, IsAudioFile("b.flac"))
	assert.False(t, IsAudioFile("c.txt"))
	assert.False(t, IsAudioFile("mp3"))
}
