package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stackfall/session"
)

// Held keys repeat after repeatDelay frames, then every repeatInterval
// frames.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

type binding struct {
	key    ebiten.Key
	action session.Action
	repeat bool
}

var bindings = []binding{
	{key: ebiten.KeyArrowLeft, action: session.MoveLeft, repeat: true},
	{key: ebiten.KeyArrowRight, action: session.MoveRight, repeat: true},
	{key: ebiten.KeyArrowDown, action: session.SoftDrop, repeat: true},
	{key: ebiten.KeyArrowUp, action: session.Rotate},
	{key: ebiten.KeySpace, action: session.HardDrop},
	{key: ebiten.KeyC, action: session.Hold},
}

func keyPressDuration(key ebiten.Key) int {
	return inpututil.KeyPressDuration(key)
}

// pollActions returns the actions triggered this frame. duration reports how
// many frames a key has been held, zero when it is up.
func pollActions(duration func(ebiten.Key) int) []session.Action {
	var actions []session.Action
	for _, b := range bindings {
		d := duration(b.key)
		if d == 1 || (b.repeat && repeats(d)) {
			actions = append(actions, b.action)
		}
	}
	return actions
}

func repeats(frames int) bool {
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}
