package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379 or rediss://...)
	URL string

	// KeyPrefix is prepended to every key, separated by a colon.
	// Empty keeps the plain user:<name> / ban_list layout.
	KeyPrefix string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// DialTimeout bounds the connection check done by New
	DialTimeout time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  5 * time.Second,
	}
}
