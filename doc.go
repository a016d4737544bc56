// Package grantkit is the authorization and context-resolution core for
// multi-system line-of-business applications: it ingests the multi-system,
// multi-department, multi-role permission grant the backend returns at
// login, resolves which single system (and therefore role) is active at
// any time, answers fine-grained permission queries across two permission
// vocabularies, and gates whole routes as well as individual UI
// affordances from that resolved state.
//
// The moving parts live in focused packages:
//
//   - pkg/grant: the immutable authorization snapshot and its wire decoding
//   - pkg/activectx: the one mutable field (active system), its
//     persistence, and role derivation
//   - pkg/permission: pure, fail-closed permission queries
//   - pkg/routeguard: the static route-ownership table and the
//     allow / select / no-access / wrong-system decision
//   - pkg/notify: the fire-and-forget denial banner channel
//
// This root package ties them together per login:
//
//	g, err := grant.ParseGrant(loginResponseBody)
//	if err != nil { ... }
//
//	s := grantkit.NewSession(ctx, g, table,
//	    grantkit.WithContextStore(activectx.New(
//	        activectx.WithStore(activectx.NewRedisStore(client, cfg)),
//	    )),
//	)
//
//	switch d := s.Guard().Evaluate(path); d.State {
//	case routeguard.StateGranted:
//	    // render
//	case routeguard.StateNeedsSelection:
//	    // system picker
//	}
//
//	if !s.Resolver().CanDelete() {
//	    s.Bus().Publish("Você não tem permissão para excluir")
//	}
//
// The grant is immutable for the session; the only writer of runtime state
// is the context store's SetActive, driven by explicit user action.
package grantkit
