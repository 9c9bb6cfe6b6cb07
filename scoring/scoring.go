// Package scoring turns the rows cleared by each lock into score, level and
// gravity pace.
package scoring

import "time"

// LineClearPoints is the base award for clearing 0–4 rows with one lock. It is
// multiplied by the level the lock happened at.
var LineClearPoints = [...]int{0, 100, 300, 500, 800}

const (
	LinesPerLevel = 10

	BaseInterval = 1000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond
	MinInterval  = 100 * time.Millisecond
)

// Pacing is the scoring and speed state of a game.
type Pacing struct {
	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration
}

// New returns the pacing of a fresh game: level 1, one second per row.
func New() Pacing {
	return Pacing{
		Level:        1,
		DropInterval: BaseInterval,
	}
}

// Points returns the award for clearing lines rows at level.
func Points(lines, level int) int {
	if lines <= 0 {
		return 0
	}
	lines = min(lines, len(LineClearPoints)-1)
	return LineClearPoints[lines] * level
}

// LevelFor returns the level reached after clearing lines rows in total.
func LevelFor(lines int) int {
	return lines/LinesPerLevel + 1
}

// IntervalFor returns the gravity period at level, never below MinInterval.
func IntervalFor(level int) time.Duration {
	return max(MinInterval, BaseInterval-time.Duration(level-1)*IntervalStep)
}

// Apply records a lock that cleared lines rows. A lock that clears nothing
// leaves the pacing unchanged.
func (p Pacing) Apply(lines int) Pacing {
	if lines <= 0 {
		return p
	}

	p.Score += Points(lines, p.Level)
	p.Lines += lines
	p.Level = LevelFor(p.Lines)
	p.DropInterval = IntervalFor(p.Level)
	return p
}
