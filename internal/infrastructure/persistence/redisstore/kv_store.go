// Package redisstore is a port.KeyValueStore on Redis, for hosts that share
// settings across several processes.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/fontify/internal/application/port"
	"github.com/bnema/fontify/internal/logging"
	"github.com/redis/go-redis/v9"
)

// DefaultPrefix namespaces every key written by the store.
const DefaultPrefix = "fontify:"

const scanCount = 256

// KVStore keeps each settings key as a Redis string under a prefix.
type KVStore struct {
	client *redis.Client
	prefix string
}

var _ port.KeyValueStore = (*KVStore)(nil)

// Connect parses redisURL, pings the server and returns a store.
func Connect(ctx context.Context, redisURL, prefix string) (*KVStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("addr", opt.Addr).Int("db", opt.DB).Msg("redis store connected")
	return New(client, prefix), nil
}

// New wraps an existing client. An empty prefix means DefaultPrefix.
func New(client *redis.Client, prefix string) *KVStore {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &KVStore{client: client, prefix: prefix}
}

func (s *KVStore) Get(ctx context.Context, keys ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	values, err := s.client.MGet(ctx, s.fullKeys(keys)...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read keys: %w", err)
	}

	for i, v := range values {
		switch v := v.(type) {
		case string:
			out[keys[i]] = []byte(v)
		case nil:
		default:
			return nil, fmt.Errorf("unexpected value type %T for %s", v, keys[i])
		}
	}
	return out, nil
}

func (s *KVStore) Set(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	pairs := make([]any, 0, len(entries)*2)
	for k, v := range entries {
		if v == nil {
			v = []byte("null")
		}
		pairs = append(pairs, s.prefix+k, v)
	}

	if err := s.client.MSet(ctx, pairs...).Err(); err != nil {
		return fmt.Errorf("failed to write keys: %w", err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, s.fullKeys(keys)...).Err(); err != nil {
		return fmt.Errorf("failed to remove keys: %w", err)
	}
	return nil
}

func (s *KVStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	match := escapeGlob(s.prefix+prefix) + "*"

	keys := make([]string, 0)
	iter := s.client.Scan(ctx, 0, match, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), s.prefix))
	}
	if err := iter.Err(); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to scan keys: %w", err)
	}

	// SCAN may return a key more than once.
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// Close closes the client.
func (s *KVStore) Close() error {
	return s.client.Close()
}

func (s *KVStore) fullKeys(keys []string) []string {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.prefix + k
	}
	return full
}

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
