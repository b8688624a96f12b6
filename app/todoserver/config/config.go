// Package config assembles the todoserver configuration from an optional
// TOML file and the environment.
package config

import (
	"fmt"

	"github.com/jrazmi/todoserver/infrastructure/postgresdb"
	"github.com/jrazmi/todoserver/infrastructure/web"
	"github.com/jrazmi/todoserver/sdk/environment"
	"github.com/jrazmi/todoserver/sdk/logger"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// StoreOptions selects the todo store.
type StoreOptions struct {
	Driver      string `toml:"driver" env:"STORE_DRIVER" default:"postgres"`
	AutoMigrate bool   `toml:"auto_migrate" env:"STORE_AUTO_MIGRATE" default:"false"`
}

// Todoserver is the overall configuration for the todoserver application.
type Todoserver struct {
	Web      web.ServerConfig   `toml:"web"`
	Handler  web.HandlerOptions `toml:"handler"`
	Database postgresdb.Options `toml:"database"`
	Log      logger.Options     `toml:"log"`
	Store    StoreOptions       `toml:"store"`
}

// Load reads the file named by <prefix>_CONFIG_FILE, if any, and then lets
// prefixed environment variables override each section.
func Load(prefix string) (Todoserver, error) {
	var cfg Todoserver

	if err := environment.LoadFile(environment.GetPrefixEnv(prefix, "CONFIG_FILE"), &cfg); err != nil {
		return Todoserver{}, err
	}

	sections := []struct {
		name string
		ptr  any
	}{
		{"web", &cfg.Web},
		{"handler", &cfg.Handler},
		{"database", &cfg.Database},
		{"log", &cfg.Log},
		{"store", &cfg.Store},
	}
	for _, s := range sections {
		if err := environment.ParseEnvTags(prefix, s.ptr); err != nil {
			return Todoserver{}, fmt.Errorf("parsing %s config: %w", s.name, err)
		}
	}

	switch cfg.Store.Driver {
	case DriverPostgres, DriverMemory:
	default:
		return Todoserver{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	return cfg, nil
}
