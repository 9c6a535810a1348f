package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisBackend keeps each collection blob in a Redis string key. It is the
// closest server-side analog of the browser's localStorage: keyed text
// values, shared by every instance pointed at the same Redis.
type RedisBackend struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisBackend wraps an already-connected client. Keys are namespaced
// under prefix ("bizdesk:collections" by default when prefix is empty).
func NewRedisBackend(rdb *redis.Client, prefix string) *RedisBackend {
	if prefix == "" {
		prefix = "bizdesk:collections"
	}
	return &RedisBackend{rdb: rdb, prefix: strings.TrimSuffix(prefix, ":")}
}

func (b *RedisBackend) key(name string) string {
	return b.prefix + ":" + name
}

func (b *RedisBackend) Read(key string) ([]byte, bool, error) {
	raw, err := b.rdb.Get(context.Background(), b.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis backend: get %q: %w", key, err)
	}
	return raw, true, nil
}

func (b *RedisBackend) Write(key string, data []byte) error {
	// Collections live forever; expiry would silently drop user data.
	return b.rdb.Set(context.Background(), b.key(key), data, 0).Err()
}

func (b *RedisBackend) Remove(key string) error {
	return b.rdb.Del(context.Background(), b.key(key)).Err()
}

func (b *RedisBackend) Keys() ([]string, error) {
	full, err := b.rdb.Keys(context.Background(), b.prefix+":*").Result()
	if err != nil {
		return nil, fmt.Errorf("redis backend: keys: %w", err)
	}
	keys := make([]string, 0, len(full))
	for _, k := range full {
		keys = append(keys, strings.TrimPrefix(k, b.prefix+":"))
	}
	return keys, nil
}
