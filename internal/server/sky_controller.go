package server

import (
	"bytes"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SkyController serves the latest animated sky frame as a PNG.
type SkyController struct {
	frames  *FrameStore
	encoder png.Encoder
}

// NewSkyController serves frames published to frames.
func NewSkyController(frames *FrameStore) *SkyController {
	return &SkyController{frames: frames, encoder: png.Encoder{CompressionLevel: png.BestSpeed}}
}

// Frame encodes the latest frame, or answers 503 before the first one.
func (sc *SkyController) Frame(c *gin.Context) {
	img := sc.frames.Latest()
	if img == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No frame rendered yet"})
		return
	}
	var buf bytes.Buffer
	if err := sc.encoder.Encode(&buf, img); err != nil {
		log.Error().Err(err).Msg("encode sky frame")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode frame"})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
