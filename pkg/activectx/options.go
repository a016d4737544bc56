package activectx

import "log/slog"

// Option is a functional option for configuring the ContextStore.
type Option func(*ContextStore)

// WithStore sets the persistence medium. Defaults to an in-memory store.
func WithStore(store Store) Option {
	return func(c *ContextStore) {
		c.store = store
	}
}

// WithConfig sets custom persistence configuration. The ContextStore
// applies StorageTimeout to every Load/Save/Clear; StorageKey and
// StorageTTL parameterize media that need them (NewRedisStore).
func WithConfig(cfg Config) Option {
	return func(c *ContextStore) {
		c.config = cfg
	}
}

// WithLogger sets the logger used to report degraded persistence.
func WithLogger(log *slog.Logger) Option {
	return func(c *ContextStore) {
		c.log = log
	}
}
