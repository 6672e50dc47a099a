package server

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/library"
)

// TrackController serves the track listing and the audio files behind it.
type TrackController struct {
	scanner *library.Scanner
}

// NewTrackController serves the directory read by scanner.
func NewTrackController(scanner *library.Scanner) *TrackController {
	return &TrackController{scanner: scanner}
}

// ListTracks rescans the directory on every request.
func (tc *TrackController) ListTracks(c *gin.Context) {
	res, err := tc.scanner.Scan(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Str("dir", tc.scanner.Dir()).Msg("error reading audio files")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read audio files"})
		return
	}
	if skipErr := res.Err(); skipErr != nil {
		log.Warn().Err(skipErr).Int("skipped", len(res.Skipped)).Msg("some audio files were skipped")
	}
	c.JSON(http.StatusOK, res.Tracks)
}

// ServeAudio streams one audio file; anything outside the directory is 404.
func (tc *TrackController) ServeAudio(c *gin.Context) {
	p, err := tc.scanner.Resolve(c.Request.URL.Path)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	info, err := os.Stat(p)
	if err != nil || info.IsDir() || !library.IsAudioFile(p) {
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("file", p).Msg("stat audio file")
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.File(p)
}
