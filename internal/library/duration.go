package library

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/go-flac/go-flac"
	"github.com/tcolgate/mp3"
)

var errUnknownDuration = errors.New("duration unavailable")

// FormatDuration renders d as M:SS with whole seconds.
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0:00"
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// MeasureDuration measures the playing time of the audio file at path.
func MeasureDuration(path string) (time.Duration, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return mp3Duration(path)
	case ".flac":
		return flacDuration(path)
	case ".wav":
		return wavDuration(path)
	default:
		return 0, errUnknownDuration
	}
}

func mp3Duration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d := mp3.NewDecoder(f)
	var frame mp3.Frame
	var skipped int
	var duration time.Duration
	for {
		if err := d.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return 0, err
		}
		duration += frame.Duration()
	}
	return duration, nil
}

func flacDuration(path string) (time.Duration, error) {
	f, err := flac.ParseFile(path)
	if err != nil {
		return 0, err
	}
	for _, block := range f.Meta {
		if block.Type != flac.StreamInfo {
			continue
		}
		return streamInfoDuration(block.Data)
	}
	return 0, errUnknownDuration
}

// streamInfoDuration reads the sample rate (20 bits at byte 10) and the total
// sample count (36 bits following the channel and depth fields).
func streamInfoDuration(data []byte) (time.Duration, error) {
	if len(data) < 18 {
		return 0, fmt.Errorf("streaminfo block too short: %d bytes", len(data))
	}
	packed := binary.BigEndian.Uint64(data[10:18])
	rate := packed >> 44
	samples := packed & (1<<36 - 1)
	if rate == 0 || samples == 0 {
		return 0, errUnknownDuration
	}
	return time.Duration(samples) * time.Second / time.Duration(rate), nil
}

func wavDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	d, err := wav.NewDecoder(f).Duration()
	if err != nil {
		return 0, fmt.Errorf("wav duration: %w", err)
	}
	return d, nil
}
