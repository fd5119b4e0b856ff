package papi

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/itsatony/go-papi/internal"
	"go.uber.org/zap"
)

// Engine is the main entry point for the placeholder system. It owns
// the resolver registry, performs substitution, and carries the
// built-in provider set.
//
// An Engine is safe for concurrent use: substitution calls may run in
// parallel with each other and with registrations from collaborator
// plugins. No registry lock is held while a resolver executes.
type Engine struct {
	registry *internal.Registry
	config   *engineConfig
	logger   *zap.Logger

	trackerMu sync.Mutex
	tracker   *KillTracker
}

// New creates a new Engine with the given options. The built-in
// provider set is registered unless WithoutBuiltins is used.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		registry: internal.NewRegistry(logger),
		config:   config,
		logger:   logger,
	}

	if config.builtins {
		e.registerBuiltins()
		logger.Debug(LogMsgBuiltinsRegistered, zap.Int(LogFieldBuiltins, e.registry.Count()))
	}

	tracker := config.tracker
	if tracker == nil && config.stats != nil {
		tracker = NewKillTrackerWithStorage(DefaultCombatTimeout, config.stats, logger)
	} else if tracker != nil && config.stats != nil {
		tracker.setStorage(config.stats)
	}
	if tracker != nil {
		e.AttachKillTracker(tracker)
	}

	logger.Debug(LogMsgEngineCreated)
	return e, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// SetPlaceholders translates all placeholders in text into their
// resolved values against the given resolution context. It never fails:
// malformed tokens stay literal, and unresolvable tokens degrade to the
// configured fallback policy. Resolver output is never re-scanned for
// further placeholders.
func (e *Engine) SetPlaceholders(ctx context.Context, rctx *Context, text string) string {
	e.logger.Debug(LogMsgSubstituteStart, zap.Int(LogFieldInputLen, len(text)))

	tokenizer := internal.NewTokenizerWithConfig(text, e.tokenizerConfig(), e.logger)
	var sb strings.Builder

	for {
		seg, ok := tokenizer.Next()
		if !ok {
			break
		}
		switch seg.Type {
		case internal.SegmentPlaceholder:
			sb.WriteString(e.resolveSegment(ctx, rctx, seg))
		default:
			sb.WriteString(seg.Text)
		}
	}

	result := sb.String()
	e.logger.Debug(LogMsgSubstituteEnd, zap.Int(LogFieldOutputLen, len(result)))
	return result
}

// RegisterPlaceholder binds a resolver to an identifier, replacing any
// existing binding. It reports whether a previous binding was replaced.
// Registration never fails.
func (e *Engine) RegisterPlaceholder(identifier string, resolver Resolver) bool {
	if resolver == nil {
		return e.registry.Register(identifier, nil)
	}
	return e.registry.Register(identifier, &resolverAdapter{
		identifier: identifier,
		resolver:   resolver,
	})
}

// RegisterPlaceholderFunc binds a plain function as a resolver.
func (e *Engine) RegisterPlaceholderFunc(identifier string, fn ResolverFunc) bool {
	return e.RegisterPlaceholder(identifier, fn)
}

// UnregisterPlaceholder removes a binding if present. Removing an
// unknown identifier is a no-op.
func (e *Engine) UnregisterPlaceholder(identifier string) {
	e.registry.Unregister(identifier)
}

// IsRegistered reports whether an identifier is currently bound.
func (e *Engine) IsRegistered(identifier string) bool {
	return e.registry.Has(identifier)
}

// RegisteredIdentifiers returns all bound identifiers in sorted order.
func (e *Engine) RegisteredIdentifiers() []string {
	return e.registry.Identifiers()
}

// ContainsPlaceholders reports whether text holds at least one
// well-formed placeholder. It applies the same grammar as substitution,
// including escape handling.
func (e *Engine) ContainsPlaceholders(text string) bool {
	tokenizer := internal.NewTokenizerWithConfig(text, e.tokenizerConfig(), e.logger)
	for {
		seg, ok := tokenizer.Next()
		if !ok {
			return false
		}
		if seg.Type == internal.SegmentPlaceholder {
			return true
		}
	}
}

// PlaceholderPattern returns a regular expression describing the shape
// of a resolvable placeholder, for diagnostic display.
func (e *Engine) PlaceholderPattern() string {
	return PlaceholderPattern
}

// AttachKillTracker registers the kills and killstreak placeholders
// backed by the given tracker. Mirrors the other built-ins: both
// resolve against the player in the resolution context.
func (e *Engine) AttachKillTracker(tracker *KillTracker) {
	if tracker == nil {
		return
	}

	e.trackerMu.Lock()
	e.tracker = tracker
	e.trackerMu.Unlock()

	e.RegisterPlaceholderFunc(IdentKills, func(ctx context.Context, rctx *Context, _ Params) (string, error) {
		player, err := requirePlayer(rctx)
		if err != nil {
			return "", err
		}
		return formatInt(tracker.Kills(ctx, player.Name)), nil
	})
	e.RegisterPlaceholderFunc(IdentKillstreak, func(ctx context.Context, rctx *Context, _ Params) (string, error) {
		player, err := requirePlayer(rctx)
		if err != nil {
			return "", err
		}
		return formatInt(tracker.Killstreak(ctx, player.Name)), nil
	})

	e.logger.Debug(LogMsgTrackerAttached)
}

// KillTracker returns the attached tracker, or nil.
func (e *Engine) KillTracker() *KillTracker {
	e.trackerMu.Lock()
	defer e.trackerMu.Unlock()
	return e.tracker
}

// Close tears the engine down: the registry is cleared so no resolver
// references are retained, and an attached kill tracker (including its
// storage, if any) is closed.
func (e *Engine) Close() error {
	e.registry.Clear()

	e.trackerMu.Lock()
	tracker := e.tracker
	e.tracker = nil
	e.trackerMu.Unlock()

	var err error
	if tracker != nil {
		err = tracker.Close()
	}

	e.logger.Debug(LogMsgEngineClosed)
	return err
}

// tokenizerConfig builds the tokenizer configuration from engine options.
func (e *Engine) tokenizerConfig() internal.TokenizerConfig {
	return internal.TokenizerConfig{EscapeChar: e.config.escapeChar}
}

// resolveSegment resolves one placeholder segment, applying the
// fallback policy on any failure path. Resolver faults (errors and
// panics) are contained here so one failing placeholder never aborts
// resolution of the rest of the string.
func (e *Engine) resolveSegment(ctx context.Context, rctx *Context, seg internal.Segment) string {
	resolver, ok := e.registry.Get(seg.Identifier)
	if !ok {
		e.logger.Debug(LogMsgUnknownIdentifier, zap.String(LogFieldIdentifier, seg.Identifier))
		return e.fallback(seg)
	}

	value, err := e.safeResolve(ctx, resolver, rctx, seg)
	if err != nil {
		if errors.Is(err, ErrNoValue) {
			e.logger.Debug(LogMsgResolverNoValue, zap.String(LogFieldIdentifier, seg.Identifier))
		} else {
			e.logger.Warn(LogMsgResolverFault,
				zap.String(LogFieldIdentifier, seg.Identifier),
				zap.Error(err),
			)
		}
		return e.fallback(seg)
	}

	return value
}

// safeResolve invokes a resolver with panic containment.
func (e *Engine) safeResolve(ctx context.Context, resolver internal.Resolver, rctx *Context, seg internal.Segment) (value string, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = ""
			err = newResolverPanicError(seg.Identifier, r)
		}
	}()
	return resolver.Resolve(ctx, rctx, seg.Params)
}

// fallback emits the configured replacement for an unresolvable token.
func (e *Engine) fallback(seg internal.Segment) string {
	if e.config.fallback == FallbackEmpty {
		return ""
	}
	return seg.Raw
}
