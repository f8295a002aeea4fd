package app

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config represents the window and startup parameters. Board parameters live
// in the config file instead.
type Config struct {
	// WindowSize is the target window edge used to pick a cell size when the
	// config file does not set one.
	WindowSize int `env:"LIFE_WINDOW_SIZE" envDefault:"640"`
	TPS        int `env:"LIFE_TPS" envDefault:"60"`
	// Pre is the pre-run count; negative means ask on stdin.
	Pre      int  `env:"LIFE_PRE" envDefault:"-1"`
	ShowGrid bool `env:"LIFE_SHOW_GRID" envDefault:"false"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{WindowSize: 640, TPS: 60, Pre: -1}
}

// LoadEnv overrides the defaults from LIFE_* environment variables.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowSize, "window", c.WindowSize, "target window size in pixels when cell_size is unset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Pre, "pre", c.Pre, "stop after this many generations (0 = never, negative = ask)")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "start with grid lines shown")
}
