package concurrent

import (
	"math/bits"

	"go.uber.org/zap"
)

// DefaultNumShards is used when a Config asks for no shards.
const DefaultNumShards = 16

// Config holds the settings of a Cache. The zero value is valid.
type Config struct {
	NumShards int         // default: DefaultNumShards, rounded up to a power of two
	Logger    *zap.Logger // default: no-op
}

// Option configures a Cache.
type Option func(*Config)

// WithLogger sets the logger used for lifecycle, miss, failure and panic
// output. Hits are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// NewConfig returns a normalized Config with numShards shards and opts
// applied. Non-positive shard counts fall back to DefaultNumShards.
func NewConfig(numShards int, opts ...Option) Config {
	cfg := Config{NumShards: numShards}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.normalized()
}

func (c Config) normalized() Config {
	if c.NumShards <= 0 {
		c.NumShards = DefaultNumShards
	}
	c.NumShards = 1 << bits.Len(uint(c.NumShards-1))
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
