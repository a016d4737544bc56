// Package routeguard maps navigation paths to the system that owns them
// and decides what the shell should render: the page itself, the
// system-selection screen, the no-access screen, or the wrong-system
// denial.
//
// Ownership comes from a static, YAML-loadable route table (system code to
// menu). A path listed by exactly one system is owned by it; a path listed
// by several is shared, but a shared path must still appear in the active
// system's menu to be reachable by deep link. Admin-gated routes
// additionally require the admin action in the active system.
//
// Evaluate is a pure resolve called at decision time: no reactive side
// effects, no hidden update loops; re-run it on every render. The guard
// tracks the auth lifecycle (pending, anonymous, authenticated) but never
// mutates the grant or the selection itself.
//
//	table, err := routeguard.ParseTable(tableYAML)
//	if err != nil { ... }
//
//	g := routeguard.New(table)
//	g.BeginSession(gr, store)
//
//	switch d := g.Evaluate("/contratos/42"); d.State {
//	case routeguard.StateGranted:
//	    // render the page
//	case routeguard.StateWrongSystem:
//	    // full-page denial; offer a switch when d.CanSwitch
//	case routeguard.StateNeedsSelection:
//	    // render the system-selection screen
//	}
//
// For shells with an HTTP backend, Middleware and Mount adapt the same
// decisions onto a chi router.
package routeguard
