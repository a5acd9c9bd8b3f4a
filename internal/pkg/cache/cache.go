package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davinevae-hub/PeriPath/internal/pkg/env"
)

var (
	client  *redis.Client
	ctx     = context.Background()
	healthy bool
)

// SetupCache initializes the connection to the cache server. PeriPath works
// without one: every cache miss falls through to a fresh computation, so an
// unreachable server only costs speed.
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: "",
		DB:       0,
	})

	// Test the connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		healthy = false
		log.Printf("Warning: could not connect to cache, statistics are computed per request: %v", err)
	} else {
		healthy = true
	}
}

// Enabled reports whether a cache server answered the startup ping.
func Enabled() bool {
	return client != nil && healthy
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Set stores a value in the cache with the given key and expiration time
func Set(key string, value interface{}, expiration time.Duration) error {
	return GetClient().Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value from the cache by key
func Get(key string) (string, error) {
	return GetClient().Get(ctx, key).Result()
}

// GetInt64 retrieves an integer value from the cache by key
func GetInt64(key string) (int64, error) {
	return GetClient().Get(ctx, key).Int64()
}

// Incr atomically increments a counter key and returns the new value.
func Incr(key string) (int64, error) {
	return GetClient().Incr(ctx, key).Result()
}

// Delete removes a value from the cache by key
func Delete(key string) error {
	return GetClient().Del(ctx, key).Err()
}
