package main

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotPlaysToGameOver(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s := session.New(tetromino.NewSeededBag(3))
	result := NewBot(3).Play(ctx, s)

	assert.True(t, result.Finished)
	assert.Equal(t, session.GameOver, s.Phase())
	assert.Positive(t, result.Steps)
	assert.Positive(t, result.Stats.Pieces)
	assert.NotEmpty(t, result.StepTimes)
}

func TestBotIsDeterministic(t *testing.T) {
	ctx := context.Background()

	a := NewBot(9).Play(ctx, session.New(tetromino.NewSeededBag(9)))
	b := NewBot(9).Play(ctx, session.New(tetromino.NewSeededBag(9)))

	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestBotStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewBot(1).Play(ctx, session.New(tetromino.NewSeededBag(1)))
	assert.False(t, result.Finished)
	assert.Zero(t, result.Steps)
}

func TestRunBots(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	results, err := RunBots(ctx, 2, 11)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(results), 2)
	for _, res := range results {
		assert.GreaterOrEqual(t, res.Level, 1)
	}
}
