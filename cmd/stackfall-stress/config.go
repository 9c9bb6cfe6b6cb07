package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds stress command configuration.
type Config struct {
	Duration       time.Duration `env:"STACKFALL_STRESS_DURATION" envDefault:"10s"`
	Sessions       int           `env:"STACKFALL_STRESS_SESSIONS" envDefault:"4"`
	Seed           uint64        `env:"STACKFALL_SEED"`
	GCPauseMetrics bool          `env:"STACKFALL_STRESS_GC_PAUSE_METRICS"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "The total duration the test should run for.")
	fs.IntVar(&cfg.Sessions, "sessions", cfg.Sessions, "The number of sessions played concurrently.")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Base piece sequence seed, 0 picks a random one.")
	fs.BoolVar(&cfg.GCPauseMetrics, "gc-pause-metrics", cfg.GCPauseMetrics, "Enable detailed GC pause metrics in the report.")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Sessions < 1 {
		return Config{}, errors.New("sessions must be at least 1")
	}
	if cfg.Duration <= 0 {
		return Config{}, errors.New("duration must be positive")
	}
	return cfg, nil
}
