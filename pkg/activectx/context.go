package activectx

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/grantkit/pkg/grant"
)

// ContextStore owns the single mutable piece of authorization state: the
// code of the currently active system. Department and role are never
// stored; they are recomputed from the grant on demand (ResolveActiveRole).
//
// SetActive is the sole writer. Reads are safe at render frequency.
type ContextStore struct {
	mu      sync.RWMutex
	active  string
	subs    map[int]func(code string)
	nextSub int

	store  Store
	config Config
	log    *slog.Logger
}

// New creates a ContextStore. Without options it keeps the selection in
// memory only, which matches the degraded mode used when a persistence
// medium fails.
func New(opts ...Option) *ContextStore {
	c := &ContextStore{
		subs:   make(map[int]func(string)),
		config: DefaultConfig(),
		log:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.store == nil {
		c.store = NewMemoryStore()
	}

	return c
}

// Initialize restores or derives the active system for a fresh grant and
// returns the resulting code ("" when the user still has to pick one).
//
// Restore order: a persisted code is honored only while it is still among
// the grant's available systems; a stale or foreign value is discarded and
// wiped from storage. With no usable persisted value, a grant listing
// exactly one system auto-selects it (and persists the choice). Anything
// else leaves the selection empty.
func (c *ContextStore) Initialize(ctx context.Context, g *grant.Grant) string {
	persisted, err := c.load(ctx)
	if err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "active-context storage unavailable, continuing in memory",
			slog.Any("error", err),
		)
		persisted = ""
	}

	code := ""
	switch {
	case persisted != "" && g.HasSystem(persisted):
		code = persisted
	case persisted != "":
		// Self-healing: the stored system is no longer granted.
		if err := c.clearStorage(ctx); err != nil {
			c.log.LogAttrs(ctx, slog.LevelWarn, "failed to clear stale active system",
				slog.Any("error", err),
			)
		}
		fallthrough
	default:
		if len(g.Systems) == 1 {
			code = g.Systems[0].Code
			c.persist(ctx, code)
		}
	}

	c.mu.Lock()
	c.active = code
	c.mu.Unlock()

	return code
}

// Active returns the code of the active system, or "" when none is set.
func (c *ContextStore) Active() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// SetActive switches the active system. The code must be one of the
// grant's available systems; anything else is a caller error and is
// rejected with ErrUnknownSystem without touching state. On success the
// choice is persisted (best effort) and subscribers are notified, even
// when the code did not change, so guards re-evaluate on every explicit
// switch.
func (c *ContextStore) SetActive(ctx context.Context, g *grant.Grant, code string) error {
	if !g.HasSystem(code) {
		return ErrUnknownSystem
	}

	c.mu.Lock()
	c.active = code
	c.mu.Unlock()

	c.persist(ctx, code)
	c.notify(code)

	c.log.LogAttrs(ctx, slog.LevelDebug, "active system switched",
		slog.String("system", code),
	)
	return nil
}

// Clear wipes the selection in memory and storage; called on logout.
func (c *ContextStore) Clear(ctx context.Context) {
	c.mu.Lock()
	c.active = ""
	c.mu.Unlock()

	if err := c.clearStorage(ctx); err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "failed to clear persisted active system",
			slog.Any("error", err),
		)
	}
	c.notify("")
}

// Subscribe registers fn to run after every explicit selection change. It
// returns an unsubscribe function. Callbacks run synchronously on the
// switching goroutine and must not call back into SetActive.
func (c *ContextStore) Subscribe(fn func(code string)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *ContextStore) notify(code string) {
	c.mu.RLock()
	callbacks := make([]func(string), 0, len(c.subs))
	for _, fn := range c.subs {
		callbacks = append(callbacks, fn)
	}
	c.mu.RUnlock()

	for _, fn := range callbacks {
		fn(code)
	}
}

func (c *ContextStore) persist(ctx context.Context, code string) {
	opCtx, cancel := c.storageCtx(ctx)
	defer cancel()

	if err := c.store.Save(opCtx, code); err != nil {
		c.log.LogAttrs(ctx, slog.LevelWarn, "failed to persist active system, continuing in memory",
			slog.String("system", code),
			slog.Any("error", err),
		)
	}
}

func (c *ContextStore) load(ctx context.Context) (string, error) {
	opCtx, cancel := c.storageCtx(ctx)
	defer cancel()
	return c.store.Load(opCtx)
}

func (c *ContextStore) clearStorage(ctx context.Context) error {
	opCtx, cancel := c.storageCtx(ctx)
	defer cancel()
	return c.store.Clear(opCtx)
}

// storageCtx bounds one persistence operation by the configured timeout,
// so a hanging medium degrades like a failing one instead of stalling the
// caller.
func (c *ContextStore) storageCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.config.StorageTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.config.StorageTimeout)
}
