package canvas

import "go.uber.org/zap"

type Config struct {
	Logger *zap.Logger

	// FinalizeOnRead finalizes the canvas on the first read of a result, so
	// later Ingest calls fail instead of silently changing results already read.
	FinalizeOnRead bool
}

type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

func WithFinalizeOnRead(enabled bool) Option {
	return func(c *Config) {
		c.FinalizeOnRead = enabled
	}
}
