package main

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("stackfall", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, Config{Scale: 1}, cfg)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("STACKFALL_SCALE", "2")
	t.Setenv("STACKFALL_SEED", "42")
	t.Setenv("STACKFALL_DEBUG_UI", "true")

	cfg, err := ParseConfig(flag.NewFlagSet("stackfall", flag.ContinueOnError), nil)
	require.NoError(t, err)
	assert.Equal(t, Config{Scale: 2, Seed: 42, DebugUI: true}, cfg)
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("STACKFALL_SEED", "42")

	fs := flag.NewFlagSet("stackfall", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-seed", "7", "-scale", "3"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 3, cfg.Scale)
}

func TestParseConfigRejectsScale(t *testing.T) {
	fs := flag.NewFlagSet("stackfall", flag.ContinueOnError)
	_, err := ParseConfig(fs, []string{"-scale", "0"})
	assert.Error(t, err)
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("STACKFALL_SEED", "not-a-number")

	_, err := ParseConfig(flag.NewFlagSet("stackfall", flag.ContinueOnError), nil)
	assert.Error(t, err)
}
