package routeguard

// State is the outcome of evaluating a navigation path against the
// current authentication and authorization state.
type State string

const (
	// StateLoading means the auth status is still unknown.
	StateLoading State = "loading"

	// StateUnauthenticated means there is no session.
	StateUnauthenticated State = "unauthenticated"

	// StateNoAccess is the terminal state for an authenticated user with
	// zero granted systems. Distinct from StateNeedsSelection.
	StateNoAccess State = "no_access"

	// StateNeedsSelection means several systems are available and none is
	// active yet: the shell must render the system-selection screen.
	StateNeedsSelection State = "needs_selection"

	// StateWrongSystem means the requested path is not reachable from the
	// active system: another system owns it, or the active system's route
	// table does not list it, or the active role may not use it.
	StateWrongSystem State = "wrong_system"

	// StateGranted renders the requested page.
	StateGranted State = "granted"
)

// String returns the state name.
func (s State) String() string {
	return string(s)
}

// AuthStatus models the single asynchronous boundary in the core: the
// pending-to-resolved transition of the initial grant fetch.
type AuthStatus int

const (
	// AuthPending means the auth check has not resolved yet.
	AuthPending AuthStatus = iota
	// AuthAnonymous means the auth check resolved with no user.
	AuthAnonymous
	// AuthAuthenticated means a grant is loaded.
	AuthAuthenticated
)
