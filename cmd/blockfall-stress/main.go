package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

func main() {
	var (
		duration       time.Duration
		step           time.Duration
		gcPauseMetrics bool
	)
	cfg, err := config.Load("blockfall-stress", os.Args[1:], func(fs *flag.FlagSet) {
		fs.DurationVar(&duration, "duration", 10*time.Second, "The total duration the test should run for.")
		fs.DurationVar(&step, "step", time.Second/60, "Simulated time per frame.")
		fs.BoolVar(&gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	})
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	log.Println("Starting blockfall stress test...")

	// Session logs one line per game; keep them out of the report unless asked.
	sessionLog := log.New(io.Discard, "", log.LstdFlags)
	if cfg.Debug {
		sessionLog = log.Default()
	}

	session := tetris.NewSession(cfg.Game,
		tetris.WithSource(cfg.Source()),
		tetris.WithLogger(sessionLog),
	)
	scheduler := loop.NewScheduler(tetris.NewDriver(session, nil))
	bot := NewBotSystem(cfg.Seed)
	scheduler.Register(bot)
	scheduler.Register(&loop.ClockSystem{})

	report := &Report{
		Duration:       duration,
		Seed:           cfg.Seed,
		Cols:           cfg.Game.Cols,
		Rows:           cfg.Game.Rows,
		Randomizer:     cfg.Randomizer,
		GCPauseMetrics: gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", duration)
	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	startTime := time.Now()
	dt := step.Seconds()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(dt)
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	report.Collect(bot.Games, scheduler.GetStats())
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
