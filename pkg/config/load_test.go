package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
export:
  path: "./export.xml"

roles:
  file: "./idle-roles.txt"
  names:
    - "Legacy Role"

output:
  dir: "./out"
  groups: ["web", "file"]

history:
  enabled: true
  path: "./history.db"
  retention_days: 30

watch:
  debounce: "250ms"
  schedule: "0 6 * * *"

telemetry:
  logging:
    level: "debug"
    format: "json"
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Export.Path != "./export.xml" {
		t.Errorf("export path = %q", cfg.Export.Path)
	}
	if cfg.Roles.File != "./idle-roles.txt" || len(cfg.Roles.Names) != 1 {
		t.Errorf("roles = %+v", cfg.Roles)
	}
	if cfg.Output.Dir != "./out" {
		t.Errorf("output dir = %q", cfg.Output.Dir)
	}
	if len(cfg.Output.Groups) != 2 || cfg.Output.Groups[0] != "web" {
		t.Errorf("output groups = %v", cfg.Output.Groups)
	}
	if cfg.History.RetentionDays != 30 {
		t.Errorf("retention days = %d", cfg.History.RetentionDays)
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("debounce = %v", cfg.Watch.Debounce)
	}
	if cfg.Telemetry.Logging.Level != "debug" || cfg.Telemetry.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Telemetry.Logging)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `export: {path: "./export.xml"}`))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Dir != "reports" {
		t.Errorf("default output dir = %q, want %q", cfg.Output.Dir, "reports")
	}
	if cfg.History.Path != "roledep-history.db" {
		t.Errorf("default history path = %q", cfg.History.Path)
	}
	if cfg.Watch.Debounce != 500*time.Millisecond {
		t.Errorf("default debounce = %v", cfg.Watch.Debounce)
	}
	if cfg.Telemetry.Logging.Level != "info" || cfg.Telemetry.Logging.Format != "text" {
		t.Errorf("default logging = %+v", cfg.Telemetry.Logging)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "export: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfigWithEnvOverrides(t *testing.T) {
	t.Setenv("ROLEDEP_OUTPUT_DIR", "/tmp/env-reports")
	t.Setenv("ROLEDEP_OUTPUT_GROUPS", "sam, html5")
	t.Setenv("ROLEDEP_TELEMETRY_LOGGING_LEVEL", "warn")
	t.Setenv("ROLEDEP_WATCH_DEBOUNCE", "2s")
	t.Setenv("ROLEDEP_HISTORY_ENABLED", "false")

	cfg, err := LoadConfigWithEnvOverrides(writeConfig(t, `
output:
  dir: "./file-reports"
history:
  enabled: true
`))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.Dir != "/tmp/env-reports" {
		t.Errorf("output dir = %q, env override lost", cfg.Output.Dir)
	}
	if len(cfg.Output.Groups) != 2 || cfg.Output.Groups[1] != "html5" {
		t.Errorf("output groups = %v", cfg.Output.Groups)
	}
	if cfg.Telemetry.Logging.Level != "warn" {
		t.Errorf("logging level = %q", cfg.Telemetry.Logging.Level)
	}
	if cfg.Watch.Debounce != 2*time.Second {
		t.Errorf("debounce = %v", cfg.Watch.Debounce)
	}
	if cfg.History.Enabled {
		t.Error("history still enabled after env override")
	}
}

func TestLoadConfigWithEnvOverrides_InvalidOverride(t *testing.T) {
	t.Setenv("ROLEDEP_TELEMETRY_LOGGING_LEVEL", "loud")

	if _, err := LoadConfigWithEnvOverrides(writeConfig(t, `export: {path: "x"}`)); err == nil {
		t.Error("expected validation failure for invalid level override")
	}
}
