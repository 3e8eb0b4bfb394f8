package internal

import (
	"strings"

	"go.uber.org/zap"
)

// ResolverConfig holds resolution limits
type ResolverConfig struct {
	// MaxTagLength caps the tag body length the scanner will consider.
	MaxTagLength int
	// MaxRefDepth caps variable-reference nesting through argument lists.
	MaxRefDepth int
}

// DefaultResolverConfig returns the default resolution limits
func DefaultResolverConfig() ResolverConfig {
	return ResolverConfig{
		MaxTagLength: DefaultMaxTagLength,
		MaxRefDepth:  DefaultMaxRefDepth,
	}
}

// Resolver drives tag resolution over one collaborator bundle. It holds no
// state of its own across buffers; all mutable state lives in the sources.
type Resolver struct {
	sources Sources
	config  ResolverConfig
	logger  *zap.Logger
}

// NewResolver creates a resolver over the given collaborator bundle.
func NewResolver(sources Sources, config ResolverConfig, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxTagLength <= 0 {
		config.MaxTagLength = DefaultMaxTagLength
	}
	if config.MaxRefDepth <= 0 {
		config.MaxRefDepth = DefaultMaxRefDepth
	}
	logger.Debug(LogMsgResolverCreated)
	return &Resolver{
		sources: sources,
		config:  config,
		logger:  logger,
	}
}

// resolveTag resolves one recognized tag to its substitution text. Every
// failure mode is local: a lookup failure substitutes the empty string and
// skips post-processing, so a failed path and a genuine Null stay distinct.
func (r *Resolver) resolveTag(tag ParsedTag) string {
	segments := Split(tag.Path, CharColon)
	if len(segments) == 0 {
		return ""
	}

	source := strings.TrimSpace(segments[0])
	accessors := segments[1:]

	resolved, err := r.walk(r.resolveSource(source), accessors, 0)
	if err != nil {
		r.logger.Debug(LogMsgLookupFailed, logPath(tag.Path), zap.Error(err))
		return ""
	}

	resolved = r.applyPostProcessor(tag.Post, resolved, source, accessors)

	r.logger.Debug(LogMsgTagResolved, logPath(tag.Path),
		zap.String(LogFieldSource, source),
	)
	return Format(resolved, !tag.Raw)
}

// logPath is a shorthand for the path log field
func logPath(path string) zap.Field {
	return zap.String(LogFieldPath, path)
}
