package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alumnet/api/internal/pkg/logger"
)

// RedisStore implements Store on top of a Redis client.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore and verifies connectivity. A failed ping
// is logged but not fatal; the store degrades to a permanent miss.
func NewRedisStore(addr, password string, db int) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", addr).Msg("Redis unreachable, cache degraded to pass-through")
	} else {
		logger.Info().Str("addr", addr).Msg("Redis connected")
	}

	return &RedisStore{client: client}
}

// Get returns the cached payload or a miss on any error.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Warn().Err(err).Str("key", key).Msg("Cache get failed")
		}
		return "", false
	}
	return value, true
}

// Set stores the payload; failures are logged and dropped.
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Cache set failed")
	}
}

// Delete removes individual keys.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn().Err(err).Strs("keys", keys).Msg("Cache delete failed")
	}
}

// DeleteByPrefix removes every key in a family using SCAN.
func (s *RedisStore) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn().Err(err).Str("prefix", prefix).Msg("Cache scan failed")
		return
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			logger.Warn().Err(err).Str("prefix", prefix).Msg("Cache prefix invalidation failed")
		}
	}
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
