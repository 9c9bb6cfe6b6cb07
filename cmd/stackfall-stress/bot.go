package main

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/plus3/stackfall/internal/random"
	"github.com/plus3/stackfall/session"
	"github.com/plus3/stackfall/tetromino"
	"golang.org/x/sync/errgroup"
)

// stepsPerSample is how many bot steps pass between step timing samples.
const stepsPerSample = 64

// GameResult summarises one finished or interrupted game.
type GameResult struct {
	Score    int
	Level    int
	Lines    int
	Steps    int
	Finished bool
	Stats    session.StatsSummary
	Duration time.Duration
	// StepTimes holds a sample of individual step durations.
	StepTimes []time.Duration
}

// Bot plays a session with uniformly random inputs interleaved with gravity
// ticks.
type Bot struct {
	rng *rand.Rand
}

func NewBot(seed uint64) *Bot {
	return &Bot{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

// Step performs one tick or one random action.
func (b *Bot) Step(s *session.Session) {
	n := b.rng.IntN(len(session.Actions) + 1)
	if n == len(session.Actions) {
		s.Tick()
		return
	}
	s.Input(session.Actions[n])
}

// Play runs one game on s until it ends or ctx is done.
func (b *Bot) Play(ctx context.Context, s *session.Session) GameResult {
	var result GameResult
	start := time.Now()

	s.Start()
	for s.Phase() == session.Playing {
		if result.Steps%stepsPerSample == 0 {
			if ctx.Err() != nil {
				break
			}
			stepStart := time.Now()
			b.Step(s)
			result.StepTimes = append(result.StepTimes, time.Since(stepStart))
		} else {
			b.Step(s)
		}
		result.Steps++
	}

	snap := s.Snapshot()
	result.Score = snap.Score
	result.Level = snap.Level
	result.Lines = snap.Lines
	result.Finished = snap.GameOver()
	result.Stats = snap.Stats
	result.Duration = time.Since(start)
	return result
}

// RunBots plays games on n independent sessions until ctx is done. A zero
// seed picks a random base seed; session i uses base seed + i.
func RunBots(ctx context.Context, n int, seed uint64) ([]GameResult, error) {
	base, err := random.Resolve(seed)
	if err != nil {
		return nil, err
	}

	perSession := make([][]GameResult, n)
	g, ctx := errgroup.WithContext(ctx)
	for i := range n {
		g.Go(func() error {
			sessionSeed := base + uint64(i)
			s := session.New(tetromino.NewSeededBag(sessionSeed))
			bot := NewBot(sessionSeed)
			for ctx.Err() == nil {
				perSession[i] = append(perSession[i], bot.Play(ctx, s))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []GameResult
	for _, games := range perSession {
		results = append(results, games...)
	}
	return results, nil
}
