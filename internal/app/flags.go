package app

import (
	"flag"

	"skyplayer/internal/library"
	"skyplayer/internal/sky"
	pcore "skyplayer/pkg/core"
)

// Config represents the command-line parameters of the desktop player.
type Config struct {
	AudioDir        string
	PixelSize       int
	NoiseScale      float64
	Seed            int64
	TPS             int
	Width           int
	Height          int
	Watch           bool
	Debug           bool
	LegacyNormalize bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := sky.DefaultSettings()
	return &Config{
		AudioDir:        "audio",
		PixelSize:       d.PixelSize,
		NoiseScale:      d.NoiseScale,
		TPS:             60,
		Width:           1024,
		Height:          720,
		Watch:           true,
		LegacyNormalize: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.AudioDir, "audio-dir", c.AudioDir, "directory holding the audio files")
	fs.IntVar(&c.PixelSize, "pixel", c.PixelSize, "edge of one sky pixel block")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "noise cell size in pixel blocks")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed (0 seeds from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "rescan the audio dir when it changes")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	fs.BoolVar(&c.LegacyNormalize, "legacy-normalize", c.LegacyNormalize,
		"draw lattice values from [0,1) so the sky stays bright; false uses [-1,1)")
}

// SkySettings applies the flags onto the default sky tunables.
func (c *Config) SkySettings() sky.Settings {
	return skySettings(c.PixelSize, c.NoiseScale, c.LegacyNormalize)
}

// RNG returns the noise source selected by Seed.
func (c *Config) RNG() *pcore.RNG { return seededRNG(c.Seed) }

// ServerConfig represents the command-line parameters of tracksd.
type ServerConfig struct {
	Addr        string
	AudioDir    string
	AudioPrefix string
	SkyWidth    int
	SkyHeight   int
	SkyFPS      int
	Seed        int64
	Debug       bool
}

// NewServerConfig returns a ServerConfig populated with sensible defaults.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:        ":3000",
		AudioDir:    "public/audio",
		AudioPrefix: library.DefaultPrefix,
		SkyWidth:    640,
		SkyHeight:   360,
		SkyFPS:      10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *ServerConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
	fs.StringVar(&c.AudioDir, "audio-dir", c.AudioDir, "directory holding the audio files")
	fs.StringVar(&c.AudioPrefix, "audio-prefix", c.AudioPrefix, "URL path audio files are served under")
	fs.IntVar(&c.SkyWidth, "sky-width", c.SkyWidth, "width of the served sky frame")
	fs.IntVar(&c.SkyHeight, "sky-height", c.SkyHeight, "height of the served sky frame")
	fs.IntVar(&c.SkyFPS, "sky-fps", c.SkyFPS, "sky frames rendered per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed (0 seeds from the clock)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
}

// SkySettings returns the default sky tunables.
func (c *ServerConfig) SkySettings() sky.Settings { return sky.DefaultSettings() }

// RNG returns the noise source selected by Seed.
func (c *ServerConfig) RNG() *pcore.RNG { return seededRNG(c.Seed) }

func skySettings(pixel int, scale float64, legacy bool) sky.Settings {
	s := sky.DefaultSettings()
	if pixel > 0 {
		s.PixelSize = pixel
	}
	if scale > 0 {
		s.NoiseScale = scale
	}
	if !legacy {
		s.Domain = sky.DomainSigned
	}
	return s
}

func seededRNG(seed int64) *pcore.RNG {
	if seed == 0 {
		return pcore.NewTimeRNG()
	}
	return pcore.NewRNG(seed)
}
