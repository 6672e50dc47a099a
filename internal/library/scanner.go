// Package library scans an audio directory and extracts the track metadata
// shown in the playlist.
package library

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/playlist"
)

// ErrNotDirectory is returned when the audio path exists but is a file.
var ErrNotDirectory = errors.New("library: not a directory")

// Fallback values for missing tags.
const (
	UnknownArtist = "Unknown Artist"
	UnknownAlbum  = "Unknown Album"
	UnknownTitle  = "Unknown Title"
)

// DefaultPrefix is the URL path audio files are published under.
const DefaultPrefix = "/audio"

var supportedExt = map[string]struct{}{
	".mp3":  {},
	".wav":  {},
	".flac": {},
	".ogg":  {},
}

// IsAudioFile reports whether name has a supported audio extension.
func IsAudioFile(name string) bool {
	_, ok := supportedExt[strings.ToLower(filepath.Ext(name))]
	return ok
}

// FileError records a file that could not be read.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string { return e.Name + ": " + e.Err.Error() }

func (e FileError) Unwrap() error { return e.Err }

// Result is the outcome of one scan. Skipped files do not abort the scan.
type Result struct {
	Tracks  []playlist.Track
	Skipped []FileError
}

// Err joins the per-file failures, or returns nil when every file was read.
func (r Result) Err() error {
	if len(r.Skipped) == 0 {
		return nil
	}
	errs := make([]error, len(r.Skipped))
	for i, fe := range r.Skipped {
		errs[i] = fe
	}
	return errors.Join(errs...)
}

// Scanner reads the audio files of a single directory.
type Scanner struct {
	dir    string
	prefix string
}

// NewScanner returns a scanner for dir publishing files under prefix.
func NewScanner(dir, prefix string) *Scanner {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Scanner{dir: dir, prefix: "/" + strings.Trim(prefix, "/")}
}

// Dir returns the scanned directory.
func (s *Scanner) Dir() string { return s.dir }

// Prefix returns the URL prefix of audio file references.
func (s *Scanner) Prefix() string { return s.prefix }

// Scan lists the directory in name order and reads every audio file. The
// returned error is non-nil only when the directory itself cannot be listed
// or ctx is done; unreadable files are reported in Result.Skipped.
func (s *Scanner) Scan(ctx context.Context) (Result, error) {
	info, err := os.Stat(s.dir)
	if err != nil {
		return Result{}, fmt.Errorf("read audio dir: %w", err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("read audio dir %s: %w", s.dir, ErrNotDirectory)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return Result{}, fmt.Errorf("read audio dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	res := Result{Tracks: []playlist.Track{}}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		track, err := ReadTrack(filepath.Join(s.dir, entry.Name()), s.prefix)
		if err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("skipping unreadable audio file")
			res.Skipped = append(res.Skipped, FileError{Name: entry.Name(), Err: err})
			continue
		}
		res.Tracks = append(res.Tracks, track)
	}

	log.Debug().
		Str("dir", s.dir).
		Int("tracks", len(res.Tracks)).
		Int("skipped", len(res.Skipped)).
		Msg("audio dir scanned")
	return res, nil
}

// Resolve maps an audio file reference back to a path inside the directory.
func (s *Scanner) Resolve(ref string) (string, error) {
	name := strings.TrimPrefix(ref, s.prefix+"/")
	if name == ref || name == "" || strings.Contains(name, "/") || name != path.Base(name) || name == ".." {
		return "", fmt.Errorf("library: %q is not a file under %s", ref, s.prefix)
	}
	return filepath.Join(s.dir, name), nil
}

// ReadTrack extracts the display metadata of one audio file.
func ReadTrack(filePath, prefix string) (playlist.Track, error) {
	track := playlist.Track{
		ArtistName: UnknownArtist,
		AlbumName:  UnknownAlbum,
		TrackName:  UnknownTitle,
		Duration:   FormatDuration(0),
		AudioFile:  strings.TrimSuffix(prefix, "/") + "/" + filepath.Base(filePath),
	}

	f, err := os.Open(filePath)
	if err != nil {
		return playlist.Track{}, err
	}
	m, err := tag.ReadFrom(f)
	f.Close()
	switch {
	case err == nil:
		applyTags(&track, m)
	case errors.Is(err, tag.ErrNoTagsFound):
	default:
		return playlist.Track{}, fmt.Errorf("read tags: %w", err)
	}

	d, err := MeasureDuration(filePath)
	switch {
	case err == nil:
		track.Duration = FormatDuration(d)
	case errors.Is(err, errUnknownDuration):
	default:
		log.Debug().Err(err).Str("file", filePath).Msg("duration unreadable")
	}
	return track, nil
}

func applyTags(t *playlist.Track, m tag.Metadata) {
	if v := strings.TrimSpace(m.Artist()); v != "" {
		t.ArtistName = v
	}
	if v := strings.TrimSpace(m.Album()); v != "" {
		t.AlbumName = v
	}
	if v := strings.TrimSpace(m.Title()); v != "" {
		t.TrackName = v
	}
	t.Year = m.Year()
	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		t.AlbumCover = DataURI(pictureMIME(pic), pic.Data)
	}
}

func pictureMIME(pic *tag.Picture) string {
	if pic.MIMEType != "" {
		return pic.MIMEType
	}
	if byExt := mime.TypeByExtension("." + pic.Ext); byExt != "" {
		return byExt
	}
	return "image/jpeg"
}

// DataURI encodes data as a base64 data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
