package activectx

import "context"

// Store is the persistence medium for the single active-system code. An
// absent value is reported as an empty string, not an error; errors are
// reserved for the medium itself being unavailable.
//
// Implementations must be safe for concurrent use. The ContextStore treats
// every Store error as a degraded-to-memory condition: it logs and moves
// on, so a failing medium only costs the user a re-selection next session.
type Store interface {
	// Load returns the persisted code, or "" when none was persisted.
	Load(ctx context.Context) (string, error)

	// Save persists the code, replacing any previous value.
	Save(ctx context.Context, code string) error

	// Clear removes the persisted value. Clearing an absent value is not
	// an error.
	Clear(ctx context.Context) error
}
