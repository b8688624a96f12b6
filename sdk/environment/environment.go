// Package environment provides utilities for managing environment variables
// and configuration loading with support for prefixes and defaults.
package environment

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. A missing file is not an error; local development is the only
// place one is expected.
//
// Example:
//
//	if err := LoadEnv(); err != nil {
//	    log.Printf("reading .env: %v", err)
//	}
func LoadEnv() error {
	return LoadPath("")
}

// LoadPath loads environment variables from the .env file at p, or from .env
// in the working directory when p is empty. Variables already present in the
// process environment are never overwritten.
func LoadPath(p string) error {
	var err error
	if p != "" {
		err = godotenv.Load(p)
	} else {
		err = godotenv.Load()
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// GetEnvKeyPrefix constructs a prefixed environment variable key by combining
// a prefix with the actual key name using an underscore. If no prefix is
// provided, it returns the key unchanged.
//
// Example:
//
//	key := GetEnvKeyPrefix("TODO", "PORT")
//	// Returns: "TODO_PORT"
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnv retrieves the value of a prefixed environment variable.
//
// Note: This function cannot distinguish between an unset variable and a
// variable set to an empty string.
func GetPrefixEnv(prefix, key string) string {
	return os.Getenv(GetEnvKeyPrefix(prefix, key))
}
