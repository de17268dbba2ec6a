package queue

import (
	"context"
	"errors"
	"sync"
)

// memoryDriver is a buffered in-process channel, the development and
// test default. Jobs are lost on process exit.
type memoryDriver struct {
	jobs chan envelope
	once sync.Once
}

func newMemoryDriver(size int) *memoryDriver {
	return &memoryDriver{jobs: make(chan envelope, size)}
}

func (d *memoryDriver) Enqueue(ctx context.Context, job envelope) error {
	select {
	case d.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.New("queue: memory queue full")
	}
}

func (d *memoryDriver) Dequeue(ctx context.Context) (envelope, error) {
	select {
	case job, ok := <-d.jobs:
		if !ok {
			return envelope{}, errors.New("queue: closed")
		}
		return job, nil
	case <-ctx.Done():
		return envelope{}, ctx.Err()
	}
}

func (d *memoryDriver) Close() error {
	d.once.Do(func() { close(d.jobs) })
	return nil
}
