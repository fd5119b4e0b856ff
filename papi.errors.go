package papi

import (
	"errors"
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// ErrNoValue is the sentinel a resolver returns when it executes
// normally but has nothing to contribute, e.g. a player-scoped
// placeholder evaluated without a player in context. The engine treats
// it exactly like an unknown identifier: the fallback policy applies.
var ErrNoValue = errors.New(ErrMsgNoValue)

// newResolverPanicError wraps a recovered panic value from a resolver
// so it can be logged and contained at the substitution site.
func newResolverPanicError(identifier string, v any) error {
	return cuserr.WrapStdError(fmt.Errorf(FmtPanicValue, v), ErrCodeResolve, ErrMsgResolverPanic).
		WithMetadata(MetaKeyIdentifier, identifier)
}

// newInvalidContextTypeError reports an adapter receiving a resolution
// context of an unexpected dynamic type.
func newInvalidContextTypeError(identifier string) error {
	return cuserr.NewValidationError(ErrCodeResolve, ErrMsgInvalidContextType).
		WithMetadata(MetaKeyIdentifier, identifier)
}

// NewConfigError creates a configuration error with a path context.
func NewConfigError(msg string, path string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, msg)
	}
	if path != "" {
		err = err.WithMetadata(MetaKeyPath, path)
	}
	return err
}

// NewConfigValueError creates a configuration error for a rejected value.
func NewConfigValueError(msg string, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg).
		WithMetadata(MetaKeyValue, value)
}
