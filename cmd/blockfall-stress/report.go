package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	Seed       uint64
	Cols       int
	Rows       int
	Randomizer string

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	UpdateTime     Stats
	Games          int
	TotalPieces    int
	TotalLines     int
	BestScore      int
	AvgScore       float64
	Applied        int64
	Ignored        int64
	Drops          int64
	Systems        []loop.SystemStats
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

// Collect fills the result fields from finished games and scheduler stats.
func (r *Report) Collect(games []GameResult, stats *loop.SchedulerStats) {
	r.Games = len(games)
	r.TotalPieces, r.TotalLines, r.BestScore, r.AvgScore = 0, 0, 0, 0

	var totalScore int
	for _, g := range games {
		r.TotalPieces += g.Pieces
		r.TotalLines += g.Lines
		totalScore += g.Score
		if g.Score > r.BestScore {
			r.BestScore = g.Score
		}
	}
	if len(games) > 0 {
		r.AvgScore = float64(totalScore) / float64(len(games))
	}

	if stats != nil {
		r.TotalFrames = stats.Frames
		r.Applied = stats.Applied
		r.Ignored = stats.Ignored
		r.Drops = stats.Drops
		r.Systems = stats.Systems
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Board:** {{.Cols}}x{{.Rows}}
- **Randomizer:** {{.Randomizer}}

## Game Results
- **Games Finished:** {{.Games}}
- **Pieces Locked:** {{.TotalPieces}}
- **Lines Cleared:** {{.TotalLines}}
- **Best Score:** {{.BestScore}}
- **Average Score:** {{printf "%.1f" .AvgScore}}
- **Commands:** {{.Applied}} applied, {{.Ignored}} ignored
- **Gravity Drops:** {{.Drops}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Systems}}
- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

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
		return err
	}

	return tmpl.Execute(w, r)
}
