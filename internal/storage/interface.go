package storage

import (
	"context"
	"errors"
)

// ErrUnavailable wraps any failure talking to the backing store
var ErrUnavailable = errors.New("player directory unavailable")

// Directory is the key-value store behind player records and the ban list.
// Records are hashes of string fields; sets hold plain members.
type Directory interface {
	// Record operations
	Exists(ctx context.Context, key string) (bool, error)
	SetFields(ctx context.Context, key string, fields map[string]any) error
	// CreateFields writes fields only if key does not exist yet.
	// It returns false, without writing, when the key is already present.
	CreateFields(ctx context.Context, key string, fields map[string]any) (bool, error)
	// GetFields returns an empty map for a missing key
	GetFields(ctx context.Context, key string) (map[string]string, error)
	// IncrementField atomically adds delta and returns the new value.
	// A missing key or field starts from zero.
	IncrementField(ctx context.Context, key, field string, delta int64) (int64, error)

	// Set operations
	SetAdd(ctx context.Context, setKey, member string) error
	SetContains(ctx context.Context, setKey, member string) (bool, error)

	// Liveness
	Ping(ctx context.Context) error
}
