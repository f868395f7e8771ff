package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (JOURNALSHIP_*). It respects flags that have been explicitly set
// (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("identifier", os.Getenv("JOURNALSHIP_IDENTIFIER"), &cfg.Identifier)
	s.setString("target", os.Getenv("JOURNALSHIP_TARGET"), &cfg.Target)
	s.setString("priority", os.Getenv("JOURNALSHIP_PRIORITY"), &cfg.Priority)
	s.setString("socket", os.Getenv("JOURNALSHIP_SOCKET"), &cfg.SocketPath)
	s.setStringsFromString("field", os.Getenv("JOURNALSHIP_EXTRA_FIELDS"), &cfg.ExtraFields)
	s.setBoolFromString("stderr-fallback", os.Getenv("JOURNALSHIP_STDERR_FALLBACK"), &cfg.StderrFallback)
	s.setBoolFromString("follow", os.Getenv("JOURNALSHIP_FOLLOW"), &cfg.Follow)
}
