package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
	FrontendHeadless = "headless"
	FrontendEbiten   = "ebiten"
)

// Config holds everything fixed at startup
type Config struct {
	ScreenWidth        int
	ScreenHeight       int
	CellSize           int
	TicksPerSecond     int
	CollisionExemption int
	Seed               uint64 // 0 picks a time based seed
	Frontend           string
	Ticks              int // headless session length
	Sound              bool
	LogLevel           string
	LogFile            string
}

func Default() Config {
	return Config{
		ScreenWidth:        types.DefaultScreenWidth,
		ScreenHeight:       types.DefaultScreenHeight,
		CellSize:           types.DefaultCellSize,
		TicksPerSecond:     types.DefaultTicksPerSec,
		CollisionExemption: entity.ExemptNone,
		Frontend:           FrontendRaylib,
		Ticks:              1000,
		LogLevel:           "info",
	}
}

// Load builds the config from defaults, an optional .env file, SNAKE_*
// variables and finally command line flags, each overriding the previous.
func Load(args []string, frontend string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	cfg.Frontend = frontend
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// RegisterFlags binds flags to cfg, using its current values as defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "Screen width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "Screen height in pixels")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "Cell size in pixels")
	fs.IntVar(&c.TicksPerSecond, "speed", c.TicksPerSecond, "Game speed in ticks per second")
	fs.IntVar(&c.CollisionExemption, "exempt", c.CollisionExemption, "Leading segments skipped by the self-collision check (0 or 2)")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed for food placement (0 = time based)")
	fs.StringVar(&c.Frontend, "frontend", c.Frontend, "Frontend: raylib, terminal, ebiten or headless")
	fs.IntVar(&c.Ticks, "ticks", c.Ticks, "Number of ticks for a headless session")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Play sound cues")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file instead of stderr")
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"SNAKE_SCREEN_WIDTH":  &c.ScreenWidth,
		"SNAKE_SCREEN_HEIGHT": &c.ScreenHeight,
		"SNAKE_CELL_SIZE":     &c.CellSize,
		"SNAKE_SPEED":         &c.TicksPerSecond,
		"SNAKE_EXEMPT":        &c.CollisionExemption,
		"SNAKE_TICKS":         &c.Ticks,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = n
	}

	if v, ok := lookup("SNAKE_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v, ok := lookup("SNAKE_SOUND"); ok && v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_SOUND: %w", err)
		}
		c.Sound = on
	}
	if v, ok := lookup("SNAKE_FRONTEND"); ok && v != "" {
		c.Frontend = strings.ToLower(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("SNAKE_LOG_FILE"); ok && v != "" {
		c.LogFile = v
	}
	return nil
}

// Validate rejects settings the game cannot start with
func (c Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.TicksPerSecond)
	}
	if c.CollisionExemption != entity.ExemptNone && c.CollisionExemption != entity.ExemptNeck {
		return fmt.Errorf("collision exemption must be %d or %d, got %d",
			entity.ExemptNone, entity.ExemptNeck, c.CollisionExemption)
	}
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal, FrontendEbiten:
	case FrontendHeadless:
		if c.Ticks <= 0 {
			return fmt.Errorf("headless ticks must be positive, got %d", c.Ticks)
		}
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// Grid derives the play field from the screen settings
func (c Config) Grid() (types.Grid, error) {
	return types.NewGrid(c.ScreenWidth, c.ScreenHeight, c.CellSize)
}
