// Package server exposes the track listing, the audio files and the live sky
// frame over HTTP.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/library"
)

// NewRouter wires every route onto a fresh gin engine.
func NewRouter(scanner *library.Scanner, frames *FrameStore) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	tracks := NewTrackController(scanner)
	sky := NewSkyController(frames)

	api := r.Group("/api")
	api.GET("/tracks", tracks.ListTracks)

	r.GET(scanner.Prefix()+"/*file", tracks.ServeAudio)
	r.HEAD(scanner.Prefix()+"/*file", tracks.ServeAudio)
	r.GET("/sky.png", sky.Frame)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
