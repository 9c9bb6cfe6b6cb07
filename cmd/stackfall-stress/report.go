package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/stackfall/tetromino"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Sessions int
	Seed     uint64

	// Results
	Games          int
	FinishedGames  int
	TotalSteps     int
	TotalTime      time.Duration
	BestScore      int
	BestLines      int
	MaxLevel       int
	TotalLines     int
	Clears         [5]int
	Spawned        map[string]int
	StepTime       Stats
	GameTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Add folds game results into the report and finalizes the timing stats.
func (r *Report) Add(results ...GameResult) {
	if r.Spawned == nil {
		r.Spawned = make(map[string]int, tetromino.KindCount)
	}
	for _, res := range results {
		r.Games++
		if res.Finished {
			r.FinishedGames++
		}
		r.TotalSteps += res.Steps
		r.TotalLines += res.Lines
		r.BestScore = max(r.BestScore, res.Score)
		r.BestLines = max(r.BestLines, res.Lines)
		r.MaxLevel = max(r.MaxLevel, res.Level)
		for lines, count := range res.Stats.Clears {
			r.Clears[lines] += count
		}
		for _, kind := range tetromino.Kinds {
			r.Spawned[kind.String()] += res.Stats.Spawned[kind]
		}
		r.StepTime.Samples = append(r.StepTime.Samples, res.StepTimes...)
		r.GameTime.Samples = append(r.GameTime.Samples, res.Duration)
	}
	r.StepTime.Finalize()
	r.GameTime.Finalize()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stackfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Sessions:** {{.Sessions}}
- **Seed:** {{if .Seed}}{{.Seed}}{{else}}random{{end}}

## Game Results
- **Games Played:** {{.Games}} ({{.FinishedGames}} ended by top-out)
- **Best Score:** {{.BestScore}}
- **Best Lines:** {{.BestLines}}
- **Highest Level:** {{.MaxLevel}}
- **Total Lines:** {{.TotalLines}}
- **Line Clears:** single {{index .Clears 1}}, double {{index .Clears 2}}, triple {{index .Clears 3}}, tetris {{index .Clears 4}}
- **Pieces Dealt:**{{range $kind, $count := .Spawned}} {{$kind}}={{$count}}{{end}}

## Performance Results
- **Total Steps:** {{.TotalSteps}}
- **Total Test Time:** {{.TotalTime}}
- **Step Time (sampled):**
  - **Avg:** {{.StepTime.Avg}}
  - **Min:** {{.StepTime.Min}}
  - **Max:** {{.StepTime.Max}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
- **Num GC Cycles:** {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
