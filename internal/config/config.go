// Package config loads server settings from the environment and an optional
// dotenv or YAML file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config is the server configuration. Field tags are the environment
// variable names.
type Config struct {
	ServerPort int `mapstructure:"SERVER_PORT"`
	// StorageType is memory or redis; empty picks redis when a datastore URL is set
	StorageType    string `mapstructure:"STORAGE_TYPE"`
	RedisURL       string `mapstructure:"REDIS_URL"`
	RedisKeyPrefix string `mapstructure:"REDIS_KEY_PREFIX"`
	UpstashURL     string `mapstructure:"UPSTASH_REDIS_REST_URL"`
	UpstashToken   string `mapstructure:"UPSTASH_REDIS_REST_TOKEN"`
	// AdminSecretHash is the bcrypt hash of the administrator secret
	AdminSecretHash string `mapstructure:"ADMIN_SECRET_HASH"`
	BanThreshold    int    `mapstructure:"BAN_THRESHOLD"`
	CORSOrigin      string `mapstructure:"CORS_ORIGIN"`
	LogLevel        string `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"SERVER_PORT":              8080,
	"STORAGE_TYPE":             "",
	"REDIS_URL":                "",
	"REDIS_KEY_PREFIX":         "",
	"UPSTASH_REDIS_REST_URL":   "",
	"UPSTASH_REDIS_REST_TOKEN": "",
	"ADMIN_SECRET_HASH":        "",
	"BAN_THRESHOLD":            5,
	"CORS_ORIGIN":              "*",
	"LOG_LEVEL":                "info",
}

// Load reads cfgPath (if non-empty) and then the environment, which wins.
// The result is validated.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration and settles the datastore settings into
// a single RedisURL. Upstash REST credentials take precedence over REDIS_URL
// and are rewritten into a TLS redis URL.
func (c *Config) Validate() error {
	var errs []error

	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT %d out of range", c.ServerPort))
	}
	if c.BanThreshold <= 0 {
		errs = append(errs, fmt.Errorf("BAN_THRESHOLD must be positive, got %d", c.BanThreshold))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	if c.UpstashURL != "" {
		redisURL, err := upstashRedisURL(c.UpstashURL, c.UpstashToken)
		if err != nil {
			errs = append(errs, err)
		} else {
			c.RedisURL = redisURL
		}
	}

	if c.StorageType == "" {
		c.StorageType = StorageMemory
		if c.RedisURL != "" {
			c.StorageType = StorageRedis
		}
	}

	switch c.StorageType {
	case StorageMemory:
	case StorageRedis:
		if c.RedisURL == "" {
			errs = append(errs, errors.New("STORAGE_TYPE redis needs REDIS_URL or UPSTASH_REDIS_REST_URL"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_TYPE %q must be %s or %s", c.StorageType, StorageMemory, StorageRedis))
	}

	return errors.Join(errs...)
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// upstashRedisURL turns an Upstash REST endpoint and token into the
// equivalent redis protocol URL
func upstashRedisURL(restURL, token string) (string, error) {
	if token == "" {
		return "", errors.New("UPSTASH_REDIS_REST_URL set without UPSTASH_REDIS_REST_TOKEN")
	}
	if !strings.Contains(restURL, "://") {
		restURL = "https://" + restURL
	}
	u, err := url.Parse(restURL)
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("UPSTASH_REDIS_REST_URL %q is not a URL", restURL)
	}

	redisURL := url.URL{
		Scheme: "rediss",
		User:   url.UserPassword("default", token),
		Host:   u.Hostname() + ":6379",
	}
	return redisURL.String(), nil
}
