package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/debugui"
	"github.com/plus3/stackfall/internal/random"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetromino"
)

const windowTitle = "stackfall"

// Run opens the game window and blocks until it is closed or ctx is
// cancelled.
func Run(ctx context.Context, cfg Config) error {
	seed, err := random.Resolve(cfg.Seed)
	if err != nil {
		return err
	}
	log.Printf("piece seed %d", seed)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s := session.New(tetromino.NewSeededBag(seed))
	driver := session.NewDriver(s, session.WithLogger(log.Default()))
	go driver.Run(ctx)

	layout := newLayout(cfg.Scale)
	game := &Game{
		driver:        driver,
		layout:        layout,
		palette:       DefaultPalette,
		pressDuration: keyPressDuration,
		lastUpdate:    time.Now(),
	}

	width, height := layout.screenSize()
	if cfg.DebugUI {
		game.overlay = debugui.NewOverlay(windowTitle, width, height,
			debugui.NewSessionPanel(),
			debugui.NewPerformancePanel(120),
		)
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(windowTitle)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
