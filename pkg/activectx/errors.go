package activectx

import "errors"

// Domain errors for active-context operations.
var (
	// ErrUnknownSystem is returned by SetActive when the code is not among
	// the grant's available systems. This is a caller error, not a
	// user-facing condition; read-side functions never return it.
	ErrUnknownSystem = errors.New("activectx.unknown_system")

	// ErrStorageUnavailable wraps persistence-medium failures. The
	// ContextStore never propagates it: it logs and degrades to memory.
	ErrStorageUnavailable = errors.New("activectx.storage_unavailable")
)
