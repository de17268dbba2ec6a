// Package cache is a thin JSON cache over Redis. All operations are
// best-effort: when Redis is unreachable the store behaves as a miss,
// so cached endpoints degrade to hitting the database.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chitralaya/chitralaya/config"
	"github.com/chitralaya/chitralaya/pkg/logger"
)

var client *redis.Client

// Connect dials Redis. Callers may skip it entirely (tests do); every
// operation tolerates a nil client.
func Connect() error {
	client = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		return err
	}

	return nil
}

// Client exposes the underlying connection for packages that need raw
// Redis commands (the queue driver). Nil when not connected.
func Client() *redis.Client { return client }

// Get unmarshals the cached value for key into dest. Returns false on
// miss, decode failure, or when the cache is down.
func Get(ctx context.Context, key string, dest any) bool {
	if client == nil {
		return false
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logger.Warn("cache: corrupt entry", "key", key, "error", err)
		return false
	}

	return true
}

// Set stores value under key for ttl. Failures are logged, not returned.
func Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cache: marshal failed", "key", key, "error", err)
		return
	}

	if err := client.Set(ctx, key, raw, ttl).Err(); err != nil {
		logger.Warn("cache: set failed", "key", key, "error", err)
	}
}

// Forget removes keys, e.g. after a product write invalidates listings.
func Forget(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}

	if err := client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("cache: delete failed", "keys", keys, "error", err)
	}
}

// Close releases the connection, used during graceful shutdown.
func Close() {
	if client != nil {
		client.Close() //nolint:errcheck
		client = nil
	}
}
