package internal

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Resolver mirrors the public resolver contract for internal use. The
// execution context travels as an opaque value so this package never
// depends on any specific binding's context type (adapters live at the
// package boundary, see the root package).
type Resolver interface {
	Resolve(ctx context.Context, execCtx any, params Params) (string, error)
}

// Registry maps placeholder identifiers to resolvers. Later
// registrations for the same identifier override earlier ones; the
// previous registrant is not notified. Identifier comparison is exact
// (case-sensitive, no trimming).
//
// Registry is safe for concurrent use: lookups may run concurrently
// with each other, writes are exclusive. No lock is ever held while a
// resolver executes.
type Registry struct {
	resolvers map[string]Resolver
	mu        sync.RWMutex
	logger    *zap.Logger
}

// NewRegistry creates an empty resolver registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgRegistryCreated)
	return &Registry{
		resolvers: make(map[string]Resolver),
		logger:    logger,
	}
}

// Register binds a resolver to an identifier, replacing any existing
// binding. It reports whether a previous binding was replaced, for the
// caller's diagnostics. Registration never fails; a nil resolver or
// empty identifier is ignored with a warning.
func (r *Registry) Register(identifier string, resolver Resolver) bool {
	if identifier == "" {
		r.logger.Warn(LogMsgRegisterIgnored, zap.String(LogFieldReason, ReasonEmptyIdentifier))
		return false
	}
	if resolver == nil {
		r.logger.Warn(LogMsgRegisterIgnored,
			zap.String(LogFieldReason, ReasonNilResolver),
			zap.String(LogFieldIdentifier, identifier),
		)
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.resolvers[identifier]
	r.resolvers[identifier] = resolver

	if replaced {
		r.logger.Warn(LogMsgResolverReplaced, zap.String(LogFieldIdentifier, identifier))
	} else {
		r.logger.Debug(LogMsgResolverRegistered, zap.String(LogFieldIdentifier, identifier))
	}
	return replaced
}

// Unregister removes a binding if present. Removing an unknown
// identifier is a silent no-op. It reports whether a binding existed.
func (r *Registry) Unregister(identifier string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resolvers[identifier]; !ok {
		return false
	}
	delete(r.resolvers, identifier)
	r.logger.Debug(LogMsgResolverUnregistered, zap.String(LogFieldIdentifier, identifier))
	return true
}

// Get retrieves the resolver bound to an identifier.
func (r *Registry) Get(identifier string) (Resolver, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolver, ok := r.resolvers[identifier]
	return resolver, ok
}

// Has reports whether a resolver is bound to the identifier.
func (r *Registry) Has(identifier string) bool {
	_, ok := r.Get(identifier)
	return ok
}

// Identifiers returns all bound identifiers in sorted order.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of bound identifiers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.resolvers)
}

// Clear removes all bindings. Used at engine teardown so no resolver
// references are retained past shutdown.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.resolvers = make(map[string]Resolver)
	r.logger.Debug(LogMsgRegistryCleared)
}
