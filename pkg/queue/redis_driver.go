package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chitralaya/chitralaya/pkg/cache"
)

const redisQueueKey = "chitralaya:queue:jobs"

// redisDriver persists jobs in a Redis list so they survive restarts
// and can be consumed by a separate worker process.
type redisDriver struct {
	client *redis.Client
}

func newRedisDriver() (*redisDriver, error) {
	client := cache.Client()
	if client == nil {
		return nil, errors.New("queue: redis driver requires a cache connection")
	}
	return &redisDriver{client: client}, nil
}

func (d *redisDriver) Enqueue(ctx context.Context, job envelope) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.client.LPush(ctx, redisQueueKey, raw).Err()
}

func (d *redisDriver) Dequeue(ctx context.Context) (envelope, error) {
	return pollLoop(func() (string, error) {
		res, err := d.client.BRPop(ctx, 5*time.Second, redisQueueKey).Result()
		if err != nil {
			return "", err
		}
		return res[1], nil
	})
}

// pollLoop retries empty polls iteratively so a long-idle worker's
// stack stays flat.
func pollLoop(pop func() (string, error)) (envelope, error) {
	for {
		raw, err := pop()
		if errors.Is(err, redis.Nil) {
			// poll timeout, keep waiting
			continue
		}
		if err != nil {
			return envelope{}, err
		}

		var job envelope
		if err := json.Unmarshal([]byte(raw), &job); err != nil {
			return envelope{}, err
		}
		return job, nil
	}
}

func (d *redisDriver) Close() error { return nil }
