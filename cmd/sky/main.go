//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"skyplayer/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	app.SetupLogging(cfg.Debug)

	game := app.New(cfg)
	defer func() {
		if err := game.Close(); err != nil {
			log.Error().Err(err).Msg("teardown")
		}
	}()

	ebiten.SetWindowTitle("skyplayer")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop failed")
	}
}
