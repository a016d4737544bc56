// Package activectx owns the one piece of runtime-selected authorization
// state: which system is currently active. Everything else (department,
// role) is derived from the immutable grant at read time.
//
// The ContextStore is an explicit, injectable object with get/set/subscribe
// semantics; there are no ambient globals. Persistence is pluggable via the
// Store interface, with in-memory and Redis implementations provided. A
// failing medium never surfaces as an application error: the store logs and
// degrades to memory-only behavior, costing the user at most a re-selection
// next session.
//
// Basic usage:
//
//	store := activectx.New(
//	    activectx.WithStore(activectx.NewRedisStore(client, cfg)),
//	)
//
//	// At login: restore or auto-select.
//	code := store.Initialize(ctx, g)
//	if code == "" {
//	    // zero or multiple systems: show selection (or no-access) screen
//	}
//
//	// Explicit user switch.
//	if err := store.SetActive(ctx, g, "prazos"); err != nil {
//	    // programmer error: code not among the granted systems
//	}
//
//	// Derived role, never stored.
//	dept, cell, ok := activectx.ResolveActiveRole(g, store.Active())
//	_ = dept
//	_ = cell
//	_ = ok
package activectx
