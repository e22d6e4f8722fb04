// Package app wires a configured session: logger, game and optional sound.
// Frontends are picked by the binaries.
package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gridsnake/audio"
	"gridsnake/config"
	"gridsnake/game"
)

type App struct {
	Config config.Config
	Game   *game.Game
	// Seed is the one the session actually uses, drawn from the clock when
	// the config leaves it at 0
	Seed uint64

	sound   *audio.SoundManager
	logFile *os.File
}

// New sets up logging and creates the session. cfg must already be valid.
func New(cfg config.Config) (*App, error) {
	a := &App{Config: cfg}

	if err := a.setupLogger(); err != nil {
		return nil, err
	}

	grid, err := cfg.Grid()
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Seed = cfg.Seed
	if a.Seed == 0 {
		a.Seed = uint64(time.Now().UnixNano())
	}

	a.Game = game.NewGame(game.Options{
		Grid:               grid,
		CollisionExemption: cfg.CollisionExemption,
		Seed:               a.Seed,
	})

	if cfg.Sound {
		sound, err := audio.Open()
		if err != nil {
			log.Warn().Err(err).Msg("audio unavailable, playing without sound")
		} else {
			a.sound = sound
			a.Game.AddListener(sound)
		}
	}

	log.Info().
		Str("session", a.Game.Stats().SessionID).
		Str("frontend", cfg.Frontend).
		Int("width", grid.Width).
		Int("height", grid.Height).
		Int("speed", cfg.TicksPerSecond).
		Int("exempt", cfg.CollisionExemption).
		Uint64("seed", a.Seed).
		Msg("session started")

	return a, nil
}

func (a *App) setupLogger() error {
	lvl, err := zerolog.ParseLevel(a.Config.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", a.Config.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer
	switch {
	case a.Config.LogFile != "":
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = f
		out = f
	case a.Config.Frontend == config.FrontendTerminal:
		// tcell owns the terminal
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

// Close logs the session summary and releases audio and the log file
func (a *App) Close() {
	if a.Game != nil {
		stats := a.Game.Stats()
		log.Info().
			Str("session", stats.SessionID).
			Int("ticks", stats.Ticks).
			Int("best", stats.BestScore).
			Int("food", stats.FoodEaten).
			Int("collisions", stats.Collisions).
			Dur("elapsed", time.Since(stats.StartTime)).
			Msg("session ended")
	}
	if a.sound != nil {
		a.sound.Close()
	}
	if a.logFile != nil {
		a.logFile.Close()
	}
}
