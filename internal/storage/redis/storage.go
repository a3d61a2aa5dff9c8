package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/reversigame/internal/storage"
)

// Storage is a Redis-backed implementation of the directory interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	timeout := cfg.DialTimeout
	if timeout == 0 {
		timeout = DefaultConfig().DialTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, unavailable(err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Directory = (*Storage)(nil)

// unavailable marks a client error as a directory outage
func unavailable(err error) error {
	return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
}

// Record operations

func (s *Storage) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(key)).Result()
	if err != nil {
		return false, unavailable(err)
	}
	return n > 0, nil
}

func (s *Storage) SetFields(ctx context.Context, key string, fields map[string]any) error {
	if err := s.client.HSet(ctx, s.key(key), fields).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Storage) CreateFields(ctx context.Context, key string, fields map[string]any) (bool, error) {
	k := s.key(key)
	created := false

	// Optimistic transaction: EXEC is discarded if the key changes after WATCH
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, k).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, k, fields)
			return nil
		})
		if err != nil {
			return err
		}
		created = true
		return nil
	}, k)

	if errors.Is(err, redis.TxFailedErr) {
		return false, nil
	}
	if err != nil {
		return false, unavailable(err)
	}
	return created, nil
}

func (s *Storage) GetFields(ctx context.Context, key string) (map[string]string, error) {
	fields, err := s.client.HGetAll(ctx, s.key(key)).Result()
	if err != nil {
		return nil, unavailable(err)
	}
	return fields, nil
}

func (s *Storage) IncrementField(ctx context.Context, key, field string, delta int64) (int64, error) {
	n, err := s.client.HIncrBy(ctx, s.key(key), field, delta).Result()
	if err != nil {
		return 0, unavailable(err)
	}
	return n, nil
}

// Set operations

func (s *Storage) SetAdd(ctx context.Context, setKey, member string) error {
	if err := s.client.SAdd(ctx, s.key(setKey), member).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}

func (s *Storage) SetContains(ctx context.Context, setKey, member string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, s.key(setKey), member).Result()
	if err != nil {
		return false, unavailable(err)
	}
	return ok, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return unavailable(err)
	}
	return nil
}
