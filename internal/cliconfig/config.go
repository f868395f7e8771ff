package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bft-labs/journalship/internal/journal"
)

// Config holds CLI configuration for journalship.
type Config struct {
	// Identifier is the SYSLOG_IDENTIFIER attached to every record.
	Identifier string

	// Target is the TARGET field. Defaults to the identifier.
	Target string

	// Priority is the level name used for shipped messages
	// (error, warn, info, debug, trace).
	Priority string

	// SocketPath overrides the journal socket. Intended for tests;
	// empty selects the system journal.
	SocketPath string

	// ExtraFields are KEY=value pairs appended to every record, in
	// order.
	ExtraFields []string

	// StderrFallback writes records to stderr instead of failing
	// when the journal is unreachable.
	StderrFallback bool

	// Follow keeps reading stdin and watches the config file for
	// live changes.
	Follow bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Priority: "info",
	}
}

// Level returns the parsed Priority. Call Validate first.
func (c *Config) Level() journal.Level {
	level, err := journal.ParseLevel(c.Priority)
	if err != nil {
		return journal.LevelInfo
	}
	return level
}

// Validate checks the configuration for errors and sets derived
// defaults.
func (c *Config) Validate() error {
	if c.Identifier == "" {
		if exe, err := os.Executable(); err == nil {
			c.Identifier = filepath.Base(exe)
		} else {
			return fmt.Errorf("identifier is required (cannot resolve executable: %w)", err)
		}
	}
	if c.Target == "" {
		c.Target = c.Identifier
	}
	if c.Priority == "" {
		c.Priority = "info"
	}
	if _, err := journal.ParseLevel(c.Priority); err != nil {
		return fmt.Errorf("priority: %w", err)
	}
	for _, kv := range c.ExtraFields {
		if !strings.Contains(kv, "=") {
			return fmt.Errorf("extra field %q must be KEY=value", kv)
		}
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a string slice if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}

// setStringsFromString splits a comma-separated string and sets the
// destination. Used for environment variables that come as strings.
func (s *configSetter) setStringsFromString(flag, value string, dst *[]string) {
	if value == "" || s.changed[flag] {
		return
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) > 0 {
		*dst = out
	}
}
