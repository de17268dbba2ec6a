// Package queue runs background jobs (order mails, repaint alerts)
// off the request path. Jobs are registered by name, dispatched with a
// JSON payload, and retried up to maxAttempts before being dropped.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/chitralaya/chitralaya/config"
	"github.com/chitralaya/chitralaya/pkg/logger"
	"github.com/chitralaya/chitralaya/pkg/metrics"
)

const maxAttempts = 3

// Handler processes one job payload.
type Handler func(ctx context.Context, payload []byte) error

type envelope struct {
	Name     string          `json:"name"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Driver moves job envelopes between Dispatch and the worker loop.
type Driver interface {
	Enqueue(ctx context.Context, job envelope) error
	// Dequeue blocks until a job is available or ctx is done.
	Dequeue(ctx context.Context) (envelope, error)
	Close() error
}

var (
	mu       sync.RWMutex
	handlers = make(map[string]Handler)
	driver   Driver
)

// Register binds a handler to a job name. Call during boot.
func Register(name string, h Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[name] = h
}

// Init selects the driver from configuration.
func Init() error {
	switch config.QueueDriver() {
	case "redis":
		d, err := newRedisDriver()
		if err != nil {
			return err
		}
		driver = d
	case "memory", "":
		driver = newMemoryDriver(256)
	default:
		return fmt.Errorf("queue: unknown driver %q", config.QueueDriver())
	}
	return nil
}

// SetDriver overrides the driver, used by tests.
func SetDriver(d Driver) { driver = d }

// Dispatch enqueues a job. The payload is marshalled to JSON.
func Dispatch(ctx context.Context, name string, payload any) error {
	if driver == nil {
		return fmt.Errorf("queue: not initialized")
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("queue: marshal %s payload: %w", name, err)
	}

	return driver.Enqueue(ctx, envelope{Name: name, Payload: raw, Attempts: 0})
}

// Work runs the consume loop until ctx is cancelled. Failed jobs are
// re-enqueued until maxAttempts, then dropped with a log line.
func Work(ctx context.Context) {
	for {
		job, err := driver.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("queue: dequeue failed", "error", err)
			continue
		}

		process(ctx, job)
	}
}

func process(ctx context.Context, job envelope) {
	mu.RLock()
	h, ok := handlers[job.Name]
	mu.RUnlock()

	if !ok {
		logger.Error("queue: no handler registered", "job", job.Name)
		metrics.JobProcessed(job.Name, "failed")
		return
	}

	if err := h(ctx, job.Payload); err != nil {
		job.Attempts++
		if job.Attempts >= maxAttempts {
			logger.Error("queue: job dropped after max attempts",
				"job", job.Name, "attempts", job.Attempts, "error", err)
			metrics.JobProcessed(job.Name, "failed")
			return
		}

		logger.Warn("queue: job retrying",
			"job", job.Name, "attempt", job.Attempts, "error", err)
		metrics.JobProcessed(job.Name, "retry")

		if err := driver.Enqueue(ctx, job); err != nil {
			logger.Error("queue: re-enqueue failed", "job", job.Name, "error", err)
		}
		return
	}

	metrics.JobProcessed(job.Name, "ok")
}

// Close shuts the driver down.
func Close() error {
	if driver == nil {
		return nil
	}
	return driver.Close()
}
