package grantkit

import (
	"context"

	"github.com/dmitrymomot/grantkit/pkg/activectx"
	"github.com/dmitrymomot/grantkit/pkg/grant"
	"github.com/dmitrymomot/grantkit/pkg/notify"
	"github.com/dmitrymomot/grantkit/pkg/permission"
	"github.com/dmitrymomot/grantkit/pkg/routeguard"
)

// Session wires one login's worth of authorization state together: the
// immutable grant, the active-context store, the permission resolver, the
// route guard, and the notification bus. The shell builds one Session per
// login or session refresh and throws it away on logout.
type Session struct {
	grant *grant.Grant
	store *activectx.ContextStore
	guard *routeguard.Guard
	bus   *notify.Bus
}

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithContextStore injects a pre-built context store, typically one backed
// by a persistent medium. Defaults to an in-memory store.
func WithContextStore(store *activectx.ContextStore) Option {
	return func(s *Session) {
		s.store = store
	}
}

// WithBus injects a pre-built notification bus. Defaults to a fresh bus
// with default configuration.
func WithBus(bus *notify.Bus) Option {
	return func(s *Session) {
		s.bus = bus
	}
}

// NewSession builds the session for a freshly parsed grant: the context
// store restores or auto-selects the active system, and the guard enters
// the authenticated phase immediately.
func NewSession(ctx context.Context, g *grant.Grant, table routeguard.Table, opts ...Option) *Session {
	s := &Session{grant: g}

	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = activectx.New()
	}
	if s.bus == nil {
		s.bus = notify.NewBus()
	}

	s.store.Initialize(ctx, g)

	s.guard = routeguard.New(table)
	s.guard.BeginSession(g, s.store)

	return s
}

// Grant returns the immutable authorization snapshot.
func (s *Session) Grant() *grant.Grant {
	return s.grant
}

// Store returns the active-context store.
func (s *Session) Store() *activectx.ContextStore {
	return s.store
}

// Resolver returns the permission resolver bound to the active system;
// the guard holds the one instance, so guard decisions and direct queries
// always agree.
func (s *Session) Resolver() *permission.Resolver {
	return s.guard.Resolver()
}

// Guard returns the route access guard.
func (s *Session) Guard() *routeguard.Guard {
	return s.guard
}

// Bus returns the notification bus.
func (s *Session) Bus() *notify.Bus {
	return s.bus
}

// SwitchSystem is the explicit user action that changes the active system.
func (s *Session) SwitchSystem(ctx context.Context, code string) error {
	return s.store.SetActive(ctx, s.grant, code)
}

// Logout clears the selection, drops the guard back to the anonymous
// phase, and closes the bus.
func (s *Session) Logout(ctx context.Context) {
	s.store.Clear(ctx)
	s.guard.EndSession()
	s.bus.Close()
}
