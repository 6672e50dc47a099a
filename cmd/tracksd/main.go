package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/app"
	"skyplayer/internal/library"
	"skyplayer/internal/server"
	"skyplayer/internal/sky"
)

func main() {
	cfg := app.NewServerConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	app.SetupLogging(cfg.Debug)
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info().
		Str("addr", cfg.Addr).
		Str("audio_dir", cfg.AudioDir).
		Str("audio_prefix", cfg.AudioPrefix).
		Int("sky_width", cfg.SkyWidth).
		Int("sky_height", cfg.SkyHeight).
		Msg("Configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := &server.FrameStore{}
	comp := sky.NewCompositor(cfg.SkySettings(), cfg.RNG())
	loop := sky.NewLoop(comp, cfg.SkyWidth, cfg.SkyHeight, cfg.SkyFPS, frames.Publish)
	go func() {
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error().Err(err).Msg("sky loop failed")
		}
	}()

	scanner := library.NewScanner(cfg.AudioDir, cfg.AudioPrefix)
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     server.NewRouter(scanner, frames),
		ReadTimeout: 30 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		log.Info().Msg("Shutting down...")
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	log.Info().Str("addr", cfg.Addr).Msg("HTTP server listening")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("HTTP server error")
	}
	log.Info().Msg("Server stopped")
}
