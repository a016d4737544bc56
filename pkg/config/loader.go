package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads variables from the given .env files into the process
// environment, falling back to ./.env when none are named. A missing
// default file is fine; a missing named file is an error.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); os.IsNotExist(err) {
			return nil
		}
		files = []string{".env"}
	}

	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadEnv, err)
	}
	return nil
}

// Load parses the process environment into cfg using its env field tags.
//
// Example:
//
//	var cfg activectx.Config
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}
	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the application cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
