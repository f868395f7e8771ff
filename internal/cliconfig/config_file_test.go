package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfigFile(t, `
identifier = "shipper"
target = "ingest"
priority = "warn"
extra_fields = ["ENV=prod", "REGION=eu-1"]
stderr_fallback = true
`)
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig: %v", err)
	}
	if fc.Identifier != "shipper" {
		t.Errorf("Identifier = %q, want shipper", fc.Identifier)
	}
	if fc.Target != "ingest" {
		t.Errorf("Target = %q, want ingest", fc.Target)
	}
	if fc.Priority != "warn" {
		t.Errorf("Priority = %q, want warn", fc.Priority)
	}
	if len(fc.ExtraFields) != 2 || fc.ExtraFields[0] != "ENV=prod" {
		t.Errorf("ExtraFields = %v", fc.ExtraFields)
	}
	if fc.StderrFallback == nil || !*fc.StderrFallback {
		t.Error("StderrFallback not parsed")
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	if _, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFileConfig succeeded for missing file")
	}
}

func TestLoadFileConfigInvalid(t *testing.T) {
	path := writeConfigFile(t, "identifier = [broken")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig succeeded for broken TOML")
	}
}

func TestApplyFileConfigRespectsFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Identifier = "from-flag"
	fc := fileConfig{Identifier: "from-file", Priority: "error"}

	changed := map[string]bool{"identifier": true}
	if err := ApplyFileConfig(&cfg, fc, changed); err != nil {
		t.Fatalf("ApplyFileConfig: %v", err)
	}
	if cfg.Identifier != "from-flag" {
		t.Errorf("Identifier = %q, flag value should win", cfg.Identifier)
	}
	if cfg.Priority != "error" {
		t.Errorf("Priority = %q, file value should apply", cfg.Priority)
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfigFile(t, "")
	if !FileExists(path) {
		t.Error("FileExists = false for existing file")
	}
	if FileExists(filepath.Join(t.TempDir(), "nope")) {
		t.Error("FileExists = true for missing file")
	}
}
