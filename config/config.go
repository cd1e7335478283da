// Package config loads the program settings from the environment, optionally seeded from a .env
// file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Front-ends selectable with BLOCKS_FRONTEND.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	// Frontend selects the window (ebiten) or terminal (bubbletea) front-end
	Frontend string `env:"BLOCKS_FRONTEND" envDefault:"window"`
	// Seed seeds the piece generator. Zero picks a seed from the clock.
	Seed uint64 `env:"BLOCKS_SEED"`
	// CellSize is the edge of a board cell in pixels, window front-end only
	CellSize int `env:"BLOCKS_CELL_SIZE" envDefault:"32"`
	// LogLevel is a logrus level name
	LogLevel string `env:"BLOCKS_LOG_LEVEL" envDefault:"info"`
	// LogFile receives the log instead of stderr. The terminal front-end discards logs without it.
	LogFile string `env:"BLOCKS_LOG_FILE"`
	// TimelineWindow is how far back the event timeline reaches
	TimelineWindow time.Duration `env:"BLOCKS_TIMELINE_WINDOW" envDefault:"3s"`
}

// Load reads .env files (missing ones are fine) and parses the environment into a Config.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}
	return Parse()
}

// Parse parses the environment into a Config without reading any file.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	if c.TimelineWindow <= 0 {
		return fmt.Errorf("timeline window must be positive, got %s", c.TimelineWindow)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Level is the parsed LogLevel. It assumes Validate passed.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
