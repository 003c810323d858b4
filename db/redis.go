package db

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

const (
	DigestQueueKey = "greenfin:queue:digest"
	DeadLetterKey  = "greenfin:queue:failed"
	statsKeyPrefix = "greenfin:stats:"
)

// StatsCacheTTL bounds how stale a cached sentiment-stats snapshot can get
// before the API recomputes it from the store.
const StatsCacheTTL = 5 * time.Minute

func ConnectRedis() error {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		slog.Warn("REDIS_URL environment variable is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(Ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

func PushToQueue(queueKey string, data string) error {
	return Redis.LPush(Ctx, queueKey, data).Err()
}

func PopFromQueue(queueKey string, timeout time.Duration) (string, error) {
	result, err := Redis.BRPop(Ctx, timeout, queueKey).Result()
	if err != nil {
		return "", err
	}
	return result[1], nil
}

func QueueLength(queueKey string) (int64, error) {
	return Redis.LLen(Ctx, queueKey).Result()
}

// CacheStats stores a serialized sentiment-stats snapshot for a scope
// ("all" or a sector name).
func CacheStats(scope string, payload string) error {
	return Redis.Set(Ctx, statsKeyPrefix+scope, payload, StatsCacheTTL).Err()
}

// CachedStats returns the cached snapshot for a scope; redis.Nil means a
// cache miss.
func CachedStats(scope string) (string, error) {
	return Redis.Get(Ctx, statsKeyPrefix+scope).Result()
}

// StatsStore adapts the package-level cache functions to the handler's
// cache interface.
type StatsStore struct{}

func (StatsStore) CachedStats(scope string) (string, error) {
	return CachedStats(scope)
}

func (StatsStore) CacheStats(scope string, payload string) error {
	return CacheStats(scope, payload)
}
