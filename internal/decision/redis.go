package decision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var errClosed = errors.New("store is closed")

// defaultRedisKey is the list decision events are pushed onto when
// the config does not name one.
const defaultRedisKey = "discern:decisions"

// RedisConfig describes the connection parameters for a Redis-backed
// decision store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int

	// Key is the Redis list to push events onto. Defaults to
	// defaultRedisKey when empty.
	Key string
}

// RedisStore persists decision events by pushing their JSON encoding
// onto a Redis list. It lives entirely outside the engine; the
// engine only sees the Store interface.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore connects to Redis and verifies the connection with a
// ping before returning the store.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis store: address must not be empty")
	}
	key := cfg.Key
	if key == "" {
		key = defaultRedisKey
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis store: connecting to %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, key: key}, nil
}

// Store pushes the event onto the configured list.
func (s *RedisStore) Store(ctx context.Context, event *Event) error {
	if err := event.Validate(); err != nil {
		return &PersistenceError{Op: "redis store", Err: err}
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return &PersistenceError{Op: "redis store", Err: fmt.Errorf("encoding event: %w", err)}
	}
	if err := s.client.LPush(ctx, s.key, raw).Err(); err != nil {
		return &PersistenceError{Op: "redis store", Err: err}
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
