package main

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"gridsnake/app"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/ui"
	"gridsnake/ui/headless"
	"gridsnake/ui/term"
)

func main() {
	cfg, err := config.Load(os.Args[1:], config.FrontendRaylib)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.Frontend == config.FrontendEbiten {
		log.Fatal().Msg("the ebiten frontend is a separate binary: snake-ebiten")
	}

	a, err := app.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}

	if err := run(a); err != nil {
		a.Close()
		log.Fatal().Err(err).Msg("game stopped")
	}
	a.Close()
}

func run(a *app.App) error {
	cfg := a.Config
	g := a.Game

	switch cfg.Frontend {
	case config.FrontendTerminal:
		t, err := term.NewTerminal(g.Grid)
		if err != nil {
			return err
		}
		defer t.Close()

		clock := game.NewTickerClock(cfg.TicksPerSecond)
		defer clock.Stop()
		return g.Run(t, t, clock)

	case config.FrontendHeadless:
		rec := headless.NewRecorder()
		start := time.Now()
		if err := g.Run(headless.NewPlayer(a.Seed, cfg.Ticks), rec, game.NoClock{}); err != nil {
			return err
		}
		rec.Report(os.Stdout, time.Since(start))
		return nil

	default:
		w := ui.NewWindow(cfg.ScreenWidth, cfg.ScreenHeight, cfg.CellSize, cfg.TicksPerSecond, "Snake")
		defer w.Close()
		// EndDrawing waits for the target FPS
		return g.Run(w, w, game.NoClock{})
	}
}
