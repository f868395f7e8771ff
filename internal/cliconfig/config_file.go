package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors Config with TOML-friendly field tags.
type fileConfig struct {
	Identifier     string   `toml:"identifier"`
	Target         string   `toml:"target"`
	Priority       string   `toml:"priority"`
	SocketPath     string   `toml:"socket_path"`
	ExtraFields    []string `toml:"extra_fields"`
	StderrFallback *bool    `toml:"stderr_fallback"`
	Follow         *bool    `toml:"follow"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.journalship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".journalship", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc fileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("identifier", fc.Identifier, &cfg.Identifier)
	s.setString("target", fc.Target, &cfg.Target)
	s.setString("priority", fc.Priority, &cfg.Priority)
	s.setString("socket", fc.SocketPath, &cfg.SocketPath)
	s.setStrings("field", fc.ExtraFields, &cfg.ExtraFields)
	s.setBool("stderr-fallback", fc.StderrFallback, &cfg.StderrFallback)
	s.setBool("follow", fc.Follow, &cfg.Follow)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
