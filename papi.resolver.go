package papi

import (
	"context"

	"github.com/itsatony/go-papi/internal"
)

// Params carries the optional parameter section of a placeholder. Its
// content is opaque to the engine and interpreted solely by the
// matching resolver.
type Params = internal.Params

// Resolver is the capability a value provider implements. Each resolver
// is bound to one identifier in the registry and produces the
// replacement text for placeholders using that identifier.
//
// Returning ErrNoValue means the resolver executed but has nothing to
// contribute; the engine then applies the fallback policy for that
// single token. Any other error (or a panic) is contained at the call
// site, logged, and likewise falls back.
type Resolver interface {
	Resolve(ctx context.Context, rctx *Context, params Params) (string, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, rctx *Context, params Params) (string, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(ctx context.Context, rctx *Context, params Params) (string, error) {
	return f(ctx, rctx, params)
}

// resolverAdapter adapts the public Resolver interface to the internal
// registry's contract. The registry carries the resolution context as
// an opaque value so other language bindings can share the same
// registry through their own adapters.
type resolverAdapter struct {
	identifier string
	resolver   Resolver
}

func (a *resolverAdapter) Resolve(ctx context.Context, execCtx any, params internal.Params) (string, error) {
	rctx, ok := execCtx.(*Context)
	if !ok {
		return "", newInvalidContextTypeError(a.identifier)
	}
	return a.resolver.Resolve(ctx, rctx, params)
}
