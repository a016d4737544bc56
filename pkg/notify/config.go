package notify

import "time"

// Config holds banner behavior configuration.
type Config struct {
	// DismissAfter is how long a published message stays up before it
	// auto-dismisses (default: 3s).
	DismissAfter time.Duration `env:"GRANTKIT_BANNER_DISMISS_AFTER" envDefault:"3s"`

	// BufferSize is the per-subscriber event channel buffer. Events are
	// dropped for subscribers that fall behind.
	BufferSize int `env:"GRANTKIT_BANNER_BUFFER_SIZE" envDefault:"8"`
}

// DefaultConfig returns the default banner configuration.
func DefaultConfig() Config {
	return Config{
		DismissAfter: 3 * time.Second,
		BufferSize:   8,
	}
}
