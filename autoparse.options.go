package autoparse

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	maxTagLength int
	maxRefDepth  int
	logger       *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		maxTagLength: DefaultMaxTagLength,
		maxRefDepth:  DefaultMaxRefDepth,
		logger:       nil,
	}
}

// WithMaxTagLength caps the tag body length the scanner will consider, which
// bounds work on pathological inputs.
// Default: 512
func WithMaxTagLength(n int) Option {
	return func(c *engineConfig) {
		c.maxTagLength = n
	}
}

// WithMaxRefDepth caps variable-reference nesting through call argument
// lists.
// Default: 16
func WithMaxRefDepth(n int) Option {
	return func(c *engineConfig) {
		c.maxRefDepth = n
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}
