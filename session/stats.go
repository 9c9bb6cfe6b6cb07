package session

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/stackfall/tetromino"
)

// maxClear is the most rows a single lock can clear.
const maxClear = 4

// Stats accumulates per-game counters. It is owned by a Session and reset
// with it.
type Stats struct {
	spawns    *intmap.Map[tetromino.Kind, int]
	clears    *intmap.Map[int, int]
	locks     int
	holds     int
	hardDrops int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[tetromino.Kind, int](tetromino.KindCount),
		clears: intmap.New[int, int](maxClear),
	}
}

func (s *Stats) reset() {
	s.spawns.Clear()
	s.clears.Clear()
	s.locks = 0
	s.holds = 0
	s.hardDrops = 0
}

func (s *Stats) spawned(kind tetromino.Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

func (s *Stats) locked(lines int) {
	s.locks++
	if lines <= 0 {
		return
	}
	n, _ := s.clears.Get(lines)
	s.clears.Put(lines, n+1)
}

// Summary copies the counters into a value that is safe to hand to other
// goroutines.
func (s *Stats) Summary() StatsSummary {
	summary := StatsSummary{
		Locks:     s.locks,
		Holds:     s.holds,
		HardDrops: s.hardDrops,
	}
	for _, kind := range tetromino.Kinds {
		n, _ := s.spawns.Get(kind)
		summary.Spawned[kind] = n
		summary.Pieces += n
	}
	for lines := 1; lines <= maxClear; lines++ {
		summary.Clears[lines], _ = s.clears.Get(lines)
	}
	return summary
}

// StatsSummary is an immutable copy of a game's counters.
type StatsSummary struct {
	// Spawned counts pieces dealt from the next queue, indexed by kind.
	Spawned [tetromino.L + 1]int
	// Clears counts locks by the number of rows they cleared, indexed 1–4.
	Clears    [maxClear + 1]int
	Pieces    int
	Locks     int
	Holds     int
	HardDrops int
}
