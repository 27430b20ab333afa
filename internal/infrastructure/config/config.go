package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
	Redis RedisConfig
}

// MongoConfig holds the document-store settings. Both values are required
// for the real backend; either one missing switches the process to demo
// mode on the in-memory store. Deliberately no defaults.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB"`
}

// RedisConfig holds the optional catalog-cache settings. An empty Addr
// simply disables the cache.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// MissingBackendKeys returns the names of required backend configuration
// values that are absent. A non-empty result means demo mode.
func (c *Config) MissingBackendKeys() []string {
	var missing []string
	if c.Mongo.URI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.Mongo.Database == "" {
		missing = append(missing, "MONGO_DB")
	}
	return missing
}

// DemoMode reports whether the in-memory store should be used. Decided once
// at startup, never re-evaluated per call.
func (c *Config) DemoMode() bool {
	return len(c.MissingBackendKeys()) > 0
}

// CacheEnabled reports whether the Redis catalog cache should be wired.
func (c *Config) CacheEnabled() bool {
	return c.Redis.Addr != ""
}
