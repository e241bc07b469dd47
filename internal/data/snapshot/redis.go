package snapshot

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores each snapshot key as a plain Redis string. Keys are
// namespaced so the engine can share an instance with other consumers.
type RedisKV struct {
	client *redis.Client
	prefix string
}

func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	if prefix == "" {
		prefix = "cine-reserve"
	}
	return &RedisKV{client: client, prefix: prefix}
}

func (r *RedisKV) name(key string) string {
	return r.prefix + ":" + key
}

func (r *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.client.Get(ctx, r.name(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return raw, nil
}

func (r *RedisKV) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.name(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// PutAll pipelines the three SETs in a MULTI/EXEC block.
func (r *RedisKV) PutAll(ctx context.Context, entries map[string][]byte) error {
	pipe := r.client.TxPipeline()
	for key, value := range entries {
		pipe.Set(ctx, r.name(key), value, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis snapshot pipeline: %w", err)
	}
	return nil
}
