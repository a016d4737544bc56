// Package config loads application configuration from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// LoadEnv pulls one or more .env files into the process environment
// (falling back to ./.env when present), and Load parses the environment
// into any struct annotated with env field tags.
//
//	var cfg notify.Config
//	if err := config.LoadEnv(); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// MustLoad panics on failure for configuration the application cannot
// start without. Sentinel errors (ErrLoadEnv, ErrParsingConfig,
// ErrNilPointer) compare with errors.Is.
package config
