package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"gridsnake/app"
	"gridsnake/config"
	"gridsnake/ui/ebitenui"
)

// Kept apart from the main binary: raylib and ebiten both link GLFW.
func main() {
	cfg, err := config.Load(os.Args[1:], config.FrontendEbiten)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Frontend != config.FrontendEbiten {
		log.Fatal().Str("frontend", cfg.Frontend).Msg("this binary only runs the ebiten frontend")
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer a.Close()

	f := ebitenui.New(a.Game, cfg.ScreenWidth, cfg.ScreenHeight, cfg.CellSize)
	if err := f.Run(cfg.TicksPerSecond); err != nil {
		log.Error().Err(err).Msg("game stopped")
	}
}
