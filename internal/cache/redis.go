// Package cache provides caching functionality using Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis wraps the Redis client.
type Redis struct {
	client *redis.Client
	log    *zap.Logger
}

// NewRedis creates a new Redis connection.
func NewRedis(uri string, log *zap.Logger) *Redis {
	opt, err := redis.ParseURL("redis://" + uri)
	if err != nil {
		log.Fatal("failed to parse Redis URI", zap.Error(err))
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("failed to connect to Redis", zap.Error(err))
	}

	log.Info("connected to Redis", zap.String("addr", opt.Addr))

	return &Redis{client: client, log: log}
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *redis.Client, log *zap.Logger) *Redis {
	return &Redis{client: client, log: log}
}

// Close closes the Redis connection.
func (r *Redis) Close() {
	if err := r.client.Close(); err != nil {
		r.log.Warn("error closing Redis connection", zap.Error(err))
		return
	}
	r.log.Info("disconnected from Redis")
}

// Set stores a value in cache with TTL.
func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}

// Get retrieves a value from cache.
// Returns false if key doesn't exist.
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return true, nil
}

// Delete removes a key from cache.
func (r *Redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SessionKey generates a cache key for session values.
func SessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// UserCacheKey generates a cache key for a user profile.
func UserCacheKey(email string) string {
	return fmt.Sprintf("user:%s", email)
}
