package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/session"
	"github.com/stretchr/testify/assert"
)

func held(frames map[ebiten.Key]int) func(ebiten.Key) int {
	return func(k ebiten.Key) int {
		return frames[k]
	}
}

func TestPollActionsOnPress(t *testing.T) {
	tests := []struct {
		key    ebiten.Key
		action session.Action
	}{
		{ebiten.KeyArrowLeft, session.MoveLeft},
		{ebiten.KeyArrowRight, session.MoveRight},
		{ebiten.KeyArrowDown, session.SoftDrop},
		{ebiten.KeyArrowUp, session.Rotate},
		{ebiten.KeySpace, session.HardDrop},
		{ebiten.KeyC, session.Hold},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			actions := pollActions(held(map[ebiten.Key]int{tt.key: 1}))
			assert.Equal(t, []session.Action{tt.action}, actions)
		})
	}
}

func TestPollActionsNothingHeld(t *testing.T) {
	assert.Empty(t, pollActions(held(nil)))
}

func TestPollActionsRepeat(t *testing.T) {
	var moves int
	for frame := 1; frame <= repeatDelay+2*repeatInterval; frame++ {
		moves += len(pollActions(held(map[ebiten.Key]int{ebiten.KeyArrowLeft: frame})))
	}
	// Initial press, first repeat at the delay, then two more.
	assert.Equal(t, 4, moves)
}

func TestPollActionsNoRepeatForRotate(t *testing.T) {
	for frame := 2; frame <= repeatDelay+repeatInterval; frame++ {
		assert.Empty(t, pollActions(held(map[ebiten.Key]int{ebiten.KeyArrowUp: frame})))
	}
}

func TestPollActionsOrder(t *testing.T) {
	actions := pollActions(held(map[ebiten.Key]int{
		ebiten.KeySpace:     1,
		ebiten.KeyArrowLeft: 1,
	}))
	assert.Equal(t, []session.Action{session.MoveLeft, session.HardDrop}, actions)
}
