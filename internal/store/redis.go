package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	backend "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/hampath/experiment"
)

// DefaultPrefix namespaces every key written by Redis.
const DefaultPrefix = "hampath:"

// Redis stores each batch as a JSON document at <prefix>batch:<id> and keeps
// the save order in the list <prefix>index.
type Redis struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *Redis) { s.prefix = prefix }
}

// WithTTL expires batch documents after ttl; 0 keeps them forever.
// Panics on a negative ttl.
func WithTTL(ttl time.Duration) RedisOption {
	if ttl < 0 {
		panic("store: WithTTL(negative)")
	}

	return func(s *Redis) { s.ttl = ttl }
}

// NewRedis connects lazily to the server at addr.
func NewRedis(addr, password string, db int, opts ...RedisOption) *Redis {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return NewRedisFromClient(client, opts...)
}

// NewRedisFromClient wraps an existing client.
func NewRedisFromClient(client *backend.Client, opts ...RedisOption) *Redis {
	s := &Redis{client: client, prefix: DefaultPrefix}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Redis) key(id uuid.UUID) string { return s.prefix + "batch:" + id.String() }

func (s *Redis) indexKey() string { return s.prefix + "index" }

// Ping checks that the server is reachable.
func (s *Redis) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("store: ping redis: %w", err)
	}

	return nil
}

// Close releases the client connections.
func (s *Redis) Close() error {
	return s.client.Close()
}

// SaveBatch writes b and appends its id to the index. Saving an id twice
// overwrites the document without duplicating the index entry.
func (s *Redis) SaveBatch(ctx context.Context, b *experiment.Batch) error {
	if b == nil {
		return fmt.Errorf("store: SaveBatch: nil batch")
	}
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("store: marshal batch %s: %w", b.ID, err)
	}

	id := b.ID.String()
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(b.ID), data, s.ttl)
	pipe.LRem(ctx, s.indexKey(), 0, id)
	pipe.RPush(ctx, s.indexKey(), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store: save batch %s: %w", id, err)
	}

	return nil
}

// Load reads the batch with the given id.
func (s *Redis) Load(ctx context.Context, id uuid.UUID) (*experiment.Batch, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("store: load batch %s: %w", id, err)
	}

	var b experiment.Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("store: decode batch %s: %w", id, err)
	}

	return &b, nil
}

// List returns the indexed ids in save order. Ids whose documents have
// expired are dropped from the index.
func (s *Redis) List(ctx context.Context) ([]uuid.UUID, error) {
	raw, err := s.client.LRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("store: list batches: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("store: index entry %q: %w", r, err)
		}
		n, err := s.client.Exists(ctx, s.key(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("store: list batches: %w", err)
		}
		if n == 0 {
			s.client.LRem(ctx, s.indexKey(), 0, r)
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
