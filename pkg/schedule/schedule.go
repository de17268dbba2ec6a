// Package schedule runs recurring background tasks on fixed intervals
// with a fluent registration API:
//
//	schedule.Every(5 * time.Minute).Named("dashboard-stats").Do(refresh)
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/chitralaya/chitralaya/pkg/logger"
)

type Task struct {
	name     string
	interval time.Duration
	runNow   bool
	fn       func(ctx context.Context) error
}

var (
	mu    sync.Mutex
	tasks []*Task
)

// Every starts building a task that runs on the given interval.
func Every(interval time.Duration) *Task {
	return &Task{interval: interval}
}

func (t *Task) Named(name string) *Task {
	t.name = name
	return t
}

// Immediately also runs the task once at startup.
func (t *Task) Immediately() *Task {
	t.runNow = true
	return t
}

// Do registers the task body and adds it to the scheduler.
func (t *Task) Do(fn func(ctx context.Context) error) {
	t.fn = fn
	mu.Lock()
	tasks = append(tasks, t)
	mu.Unlock()
}

// Run executes all registered tasks until ctx is cancelled.
func Run(ctx context.Context) {
	mu.Lock()
	registered := append([]*Task(nil), tasks...)
	mu.Unlock()

	var wg sync.WaitGroup
	for _, t := range registered {
		wg.Add(1)
		go func(t *Task) {
			defer wg.Done()
			t.loop(ctx)
		}(t)
	}
	wg.Wait()
}

// Reset clears every registered task, used by tests.
func Reset() {
	mu.Lock()
	tasks = nil
	mu.Unlock()
}

func (t *Task) loop(ctx context.Context) {
	if t.runNow {
		t.run(ctx)
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.run(ctx)
		}
	}
}

func (t *Task) run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("schedule: task panicked", "task", t.name, "panic", rec)
		}
	}()

	if err := t.fn(ctx); err != nil {
		logger.Warn("schedule: task failed", "task", t.name, "error", err)
	}
}
