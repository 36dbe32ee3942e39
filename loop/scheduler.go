package loop

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Applied         int64
	Ignored         int64
	Drops           int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order and flushes their commands
// into a single driver.
type Scheduler struct {
	driver      *tetris.Driver
	systems     []System
	systemStats []*systemStatsInternal

	frames  int64
	applied int64
	ignored int64
	drops   int64
}

// NewScheduler creates a new scheduler feeding the given driver.
func NewScheduler(driver *tetris.Driver) *Scheduler {
	return &Scheduler{
		driver:  driver,
		systems: make([]System, 0),
	}
}

// Driver returns the driver commands are flushed into.
func (s *Scheduler) Driver() *tetris.Driver {
	return s.driver
}

// Register adds a system to the end of the execution order.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time in
// seconds, then flushes the frame's commands.
func (s *Scheduler) Once(dt float64) FlushResult {
	frame := newFrame(dt, s.driver.Session())

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	result := frame.Commands.Flush(s.driver)
	s.frames++
	s.applied += int64(result.Applied)
	s.ignored += int64(result.Ignored)
	s.drops += int64(result.Drops)
	return result
}

// Run executes all systems repeatedly at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Applied:     s.applied,
		Ignored:     s.ignored,
		Drops:       s.drops,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
