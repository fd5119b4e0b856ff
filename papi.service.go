package papi

import (
	"sync"

	"github.com/itsatony/go-cuserr"
)

// The host runtime discovers this system through a service manager the
// core does not implement. This process-wide handle table is the thin
// stand-in used by bindings and tests: the owning plugin publishes its
// engine under ServiceName on enable and withdraws it on disable;
// consumer plugins look it up by name.

var (
	servicesMu sync.RWMutex
	services   = make(map[string]*Engine)
)

// PublishService publishes an engine handle under a service name.
// Publishing under an existing name replaces the handle.
func PublishService(name string, engine *Engine) error {
	if name == "" {
		return cuserr.NewValidationError(ErrCodeService, ErrMsgEmptyServiceName)
	}
	if engine == nil {
		return cuserr.NewValidationError(ErrCodeService, ErrMsgNilEngine).
			WithMetadata(MetaKeyService, name)
	}

	servicesMu.Lock()
	defer servicesMu.Unlock()
	services[name] = engine

	engine.logger.Debug(LogMsgServicePublished)
	return nil
}

// Service looks up a published engine handle by name.
func Service(name string) (*Engine, bool) {
	servicesMu.RLock()
	defer servicesMu.RUnlock()

	engine, ok := services[name]
	return engine, ok
}

// WithdrawService removes a published handle. Withdrawing an unknown
// name is a no-op.
func WithdrawService(name string) {
	servicesMu.Lock()
	defer servicesMu.Unlock()
	delete(services, name)
}
