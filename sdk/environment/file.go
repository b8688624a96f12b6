package environment

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile decodes the TOML file at path into cfg. An empty path is a no-op so
// callers can pass an optional setting straight through.
//
// Values read here act as the base layer: ParseEnvTags keeps them unless the
// matching environment variable is set.
//
// Example:
//
//	var cfg Config
//	if err := LoadFile(GetPrefixEnv("TODO", "CONFIG_FILE"), &cfg); err != nil {
//	    return err
//	}
func LoadFile(path string, cfg any) error {
	if path == "" {
		return nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("decoding config file %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config file %s: unknown keys %v", path, undecoded)
	}

	return nil
}
