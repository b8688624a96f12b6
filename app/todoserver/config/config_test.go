package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("TODOTEST")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Web.Port != ":8080" || cfg.Web.APIPrefix != "/api" {
		t.Errorf("Unexpected web config %+v", cfg.Web)
	}
	if cfg.Store.Driver != DriverPostgres || cfg.Store.AutoMigrate {
		t.Errorf("Unexpected store config %+v", cfg.Store)
	}
	if len(cfg.Handler.CORSOrigins) != 1 || cfg.Handler.CORSOrigins[0] != "*" {
		t.Errorf("Unexpected CORS origins %v", cfg.Handler.CORSOrigins)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected json log format, got %q", cfg.Log.Format)
	}
	if cfg.Database.ConnectTimeout != 10*time.Second {
		t.Errorf("Expected 10s connect timeout, got %s", cfg.Database.ConnectTimeout)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todoserver.toml")
	content := `
[web]
port = ":9000"
shutdown_timeout = "5s"

[database]
connect_timeout = "3s"

[store]
driver = "memory"

[log]
format = "console"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("TODOTEST_CONFIG_FILE", path)
	t.Setenv("TODOTEST_PORT", ":9100")

	cfg, err := Load("TODOTEST")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Web.Port != ":9100" {
		t.Errorf("Expected env port to win, got %q", cfg.Web.Port)
	}
	if cfg.Web.ShutdownTimeout != 5*time.Second {
		t.Errorf("Expected file shutdown timeout, got %s", cfg.Web.ShutdownTimeout)
	}
	if cfg.Database.ConnectTimeout != 3*time.Second {
		t.Errorf("Expected file connect timeout, got %s", cfg.Database.ConnectTimeout)
	}
	if cfg.Store.Driver != DriverMemory {
		t.Errorf("Expected memory driver, got %q", cfg.Store.Driver)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Expected console format, got %q", cfg.Log.Format)
	}
}

func TestLoadUnknownDriver(t *testing.T) {
	t.Setenv("TODOTEST_STORE_DRIVER", "mongo")

	if _, err := Load("TODOTEST"); err == nil {
		t.Fatal("Expected error for unknown driver")
	}
}
