// Package redisdb backs order-creation idempotency with Redis.
package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"foodexpress/config"
)

const (
	orderKeyPrefix = "order:idem:"
	reservationTTL = 24 * time.Hour
)

type IdempotencyStore struct {
	client *redis.Client
}

func New(cfg config.Config) *IdempotencyStore {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	return &IdempotencyStore{client: client}
}

// Reserve claims the key, returning false when another request already
// holds it.
func (s *IdempotencyStore) Reserve(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, orderKeyPrefix+key, 1, reservationTTL).Result()
}

// Release frees a reservation after the guarded operation failed, so the
// client may retry with the same key.
func (s *IdempotencyStore) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, orderKeyPrefix+key).Err()
}

func (s *IdempotencyStore) Close() error {
	return s.client.Close()
}
