package routeguard

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/grantkit/pkg/grant"
	"github.com/dmitrymomot/grantkit/pkg/permission"
)

// ActiveSource reports the currently active system code, "" when none is
// selected. activectx.ContextStore satisfies it.
type ActiveSource interface {
	Active() string
}

// Decision is the result of evaluating one navigation path.
type Decision struct {
	State State

	// Path is the evaluated navigation path.
	Path string

	// ActiveSystem is the system that was active during evaluation.
	ActiveSystem string

	// OwningSystem is set on StateWrongSystem when another system owns the
	// path. Empty when the denial came from the active system's own menu.
	OwningSystem string

	// CanSwitch is set on StateWrongSystem when the user holds a grant to
	// the owning system: the shell renders "switch to proceed" instead of
	// "no grant to this system".
	CanSwitch bool
}

// Guard decides whether a navigation path may render: allow, show the
// system-selection screen, show the no-access screen, or show the
// wrong-system denial. Evaluate is a pure resolve with no side effects; it
// is meant to be re-run on every render, which is also how a superseded
// mid-flight evaluation is handled.
type Guard struct {
	mu       sync.RWMutex
	status   AuthStatus
	grant    *grant.Grant
	resolver *permission.Resolver
	active   ActiveSource
	table    Table
	log      *slog.Logger
}

// Option is a functional option for configuring the Guard.
type Option func(*Guard)

// WithLogger sets the logger used for decision tracing.
func WithLogger(log *slog.Logger) Option {
	return func(g *Guard) {
		g.log = log
	}
}

// New creates a Guard over the static route table. It starts in the
// pending phase; call BeginSession or SetAnonymous once the auth check
// resolves.
func New(table Table, opts ...Option) *Guard {
	g := &Guard{
		status: AuthPending,
		table:  table,
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// BeginSession installs a freshly loaded grant and the active-system
// source, moving the guard into the authenticated phase. Nothing here
// mutates the grant; only the context store's SetActive mutates selection
// state, in response to explicit user action.
func (g *Guard) BeginSession(gr *grant.Grant, active ActiveSource) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.status = AuthAuthenticated
	g.grant = gr
	g.active = active
	g.resolver = permission.New(gr, active.Active)
}

// SetAnonymous records that the auth check resolved with no user.
func (g *Guard) SetAnonymous() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.status = AuthAnonymous
	g.grant = nil
	g.active = nil
	g.resolver = nil
}

// EndSession drops the session, returning the guard to the anonymous
// phase; called on logout.
func (g *Guard) EndSession() {
	g.SetAnonymous()
}

// Resolver exposes the permission resolver of the current session, nil
// outside the authenticated phase.
func (g *Guard) Resolver() *permission.Resolver {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.resolver
}

// Evaluate resolves the access state for a navigation path.
func (g *Guard) Evaluate(path string) Decision {
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := Decision{Path: path}

	switch g.status {
	case AuthPending:
		d.State = StateLoading
		return d
	case AuthAnonymous:
		d.State = StateUnauthenticated
		return d
	}

	// Zero granted systems is terminal, superuser or not: the selection
	// screen does not honor the flag. Permission queries still do.
	if len(g.grant.Systems) == 0 {
		d.State = StateNoAccess
		return d
	}

	active := g.active.Active()
	d.ActiveSystem = active
	if active == "" {
		d.State = StateNeedsSelection
		return d
	}

	if g.grant.Superuser {
		d.State = StateGranted
		return d
	}

	if owner, owned := g.table.OwnerOf(path); owned && owner != active {
		d.State = StateWrongSystem
		d.OwningSystem = owner
		d.CanSwitch = g.resolver.HasSystemAccess(owner)
		return d
	}

	// Owned by the active system or shared: either way the path must be
	// wired into the active system's menu to be reachable by deep link.
	if !g.table.Lists(active, path) {
		d.State = StateWrongSystem
		return d
	}

	if g.table.IsAdminRoute(active, path) && !g.resolver.IsAdmin() {
		d.State = StateWrongSystem
		return d
	}

	d.State = StateGranted
	return d
}

// VisibleRoutes returns the menu entries of a system the current session
// may actually use: the regular routes, plus the admin routes when the
// resolver grants the admin action there. Outside the authenticated phase
// it returns nil.
func (g *Guard) VisibleRoutes(systemCode string) []Route {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.status != AuthAuthenticated {
		return nil
	}

	menu := g.table[systemCode]
	routes := make([]Route, 0, len(menu.Routes)+len(menu.AdminRoutes))
	routes = append(routes, menu.Routes...)
	if g.resolver.IsAdmin(systemCode) {
		routes = append(routes, menu.AdminRoutes...)
	}

	if len(routes) == 0 {
		return nil
	}
	return routes
}
