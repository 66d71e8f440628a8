package memo

import "go.uber.org/zap"

// Config holds the settings of a Cache or FallibleCache.
type Config struct {
	Logger *zap.Logger // default: no-op
}

// Option configures a Cache or FallibleCache.
type Option func(*Config)

// WithLogger sets the logger used for debug output on misses and failures.
// Hits are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.normalized()
}

func (c Config) normalized() Config {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}
