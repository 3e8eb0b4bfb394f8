package autoparse

import (
	"github.com/Hellinduction/AutoParse/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point of the substitution system. It carries only
// configuration; all per-request state lives in the Scope passed to
// ResolveBuffer, so one Engine may serve concurrent requests.
type Engine struct {
	config *engineConfig
	logger *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.maxTagLength <= 0 {
		return nil, NewConfigError(ErrMsgInvalidMaxTagLength, "max_tag_length", config.maxTagLength)
	}
	if config.maxRefDepth <= 0 {
		return nil, NewConfigError(ErrMsgInvalidMaxRefDepth, "max_ref_depth", config.maxRefDepth)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Engine{
		config: config,
		logger: logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// ResolveBuffer scans text for tags, resolves each against the scope's
// stores, and returns the buffer with every recognized tag substituted.
// It never returns an error: malformed candidates pass through verbatim and
// failed lookups substitute the empty string. Hosting systems conventionally
// call this once per rendered output, after page generation completes.
func (e *Engine) ResolveBuffer(scope *Scope, text string) string {
	if scope == nil {
		scope = NewScope()
	}

	resolver := internal.NewResolver(scope, internal.ResolverConfig{
		MaxTagLength: e.config.maxTagLength,
		MaxRefDepth:  e.config.maxRefDepth,
	}, e.logger)

	return resolver.ResolveBuffer(text)
}
