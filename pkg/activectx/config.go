package activectx

import "time"

// Config holds persistence configuration for the active-system code.
type Config struct {
	// StorageKey is the key the code is persisted under, scoped per
	// browser profile by the deployment (default: "grantkit:active_system").
	StorageKey string `env:"GRANTKIT_ACTIVE_SYSTEM_KEY" envDefault:"grantkit:active_system"`

	// StorageTTL bounds how long a persisted selection survives without
	// use. Zero keeps it forever.
	StorageTTL time.Duration `env:"GRANTKIT_ACTIVE_SYSTEM_TTL" envDefault:"720h"`

	// StorageTimeout caps every Load/Save/Clear against the persistence
	// medium. A medium that hangs past it counts as unavailable and the
	// store degrades to memory. Zero disables the cap.
	StorageTimeout time.Duration `env:"GRANTKIT_ACTIVE_SYSTEM_STORAGE_TIMEOUT" envDefault:"2s"`
}

// DefaultConfig returns the default persistence configuration.
func DefaultConfig() Config {
	return Config{
		StorageKey:     "grantkit:active_system",
		StorageTTL:     30 * 24 * time.Hour,
		StorageTimeout: 2 * time.Second,
	}
}
