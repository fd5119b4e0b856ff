package papi

import (
	"go.uber.org/zap"
)

// FallbackPolicy selects what the engine emits for a placeholder that
// cannot be resolved (unknown identifier, no value, or contained fault).
type FallbackPolicy int

// Fallback policy constants
const (
	// FallbackRaw re-emits the token's original text verbatim,
	// including the delimiters. This is the default.
	FallbackRaw FallbackPolicy = iota

	// FallbackEmpty replaces the token with an empty string.
	FallbackEmpty
)

// String returns the configuration name of the policy.
func (p FallbackPolicy) String() string {
	if p == FallbackEmpty {
		return FallbackNameEmpty
	}
	return FallbackNameRaw
}

// ParseFallbackPolicy parses a configuration name into a policy.
func ParseFallbackPolicy(name string) (FallbackPolicy, error) {
	switch name {
	case FallbackNameRaw, "":
		return FallbackRaw, nil
	case FallbackNameEmpty:
		return FallbackEmpty, nil
	default:
		return FallbackRaw, NewConfigValueError(ErrMsgInvalidFallback, name)
	}
}

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	fallback   FallbackPolicy
	escapeChar byte
	builtins   bool
	logger     *zap.Logger
	tracker    *KillTracker
	stats      StatsStorage
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		fallback:   FallbackRaw,
		escapeChar: DefaultEscapeChar,
		builtins:   true,
		logger:     nil,
	}
}

// WithFallbackPolicy sets the policy applied to unresolvable tokens.
// Default: FallbackRaw
func WithFallbackPolicy(policy FallbackPolicy) Option {
	return func(c *engineConfig) {
		c.fallback = policy
	}
}

// WithEscapeChar sets the escape character that suppresses the special
// meaning of braces and pipes in input text.
// Default: '\\'
func WithEscapeChar(ch byte) Option {
	return func(c *engineConfig) {
		if ch != 0 {
			c.escapeChar = ch
		}
	}
}

// WithoutBuiltins creates the engine with an empty registry, skipping
// the built-in provider set. Mainly useful for isolated tests.
func WithoutBuiltins() Option {
	return func(c *engineConfig) {
		c.builtins = false
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithKillTracker attaches a kill tracker at construction time,
// registering the kills/killstreak placeholders.
func WithKillTracker(tracker *KillTracker) Option {
	return func(c *engineConfig) {
		c.tracker = tracker
	}
}

// WithStatsStorage sets the storage backend used when a kill tracker
// is attached without its own storage.
func WithStatsStorage(storage StatsStorage) Option {
	return func(c *engineConfig) {
		c.stats = storage
	}
}
