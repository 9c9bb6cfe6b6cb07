package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds game command configuration.
type Config struct {
	Scale   int    `env:"STACKFALL_SCALE" envDefault:"1"`
	Seed    uint64 `env:"STACKFALL_SEED"`
	DebugUI bool   `env:"STACKFALL_DEBUG_UI"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "Window scale factor")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Piece sequence seed, 0 picks a random one")
	fs.BoolVar(&cfg.DebugUI, "debug-ui", cfg.DebugUI, "Show the Dear ImGui inspector")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Scale < 1 || cfg.Scale > 4 {
		return Config{}, errors.New("scale must be between 1 and 4")
	}
	return cfg, nil
}
