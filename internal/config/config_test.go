package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()

	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %s", cfg.LogLevel)
	}
	if cfg.Device.Path != "" {
		t.Errorf("expected empty device path, got %s", cfg.Device.Path)
	}
	if cfg.Remap.Table != "" {
		t.Errorf("expected empty remap table, got %s", cfg.Remap.Table)
	}
	if cfg.Timing.HoldThresholdMs != 0 {
		t.Errorf("expected 0 (use compiled default), got %d", cfg.Timing.HoldThresholdMs)
	}
	if cfg.Startup.GrabDelayMs != DefaultGrabDelayMs {
		t.Errorf("expected grab delay %d, got %d", DefaultGrabDelayMs, cfg.Startup.GrabDelayMs)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level, got %s", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
log_level = "debug"

[device]
path = "/dev/input/event5"

[remap]
table = "homerow"

[timing]
hold_threshold_ms = 220

[startup]
grab_delay_ms = 500
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("expected debug, got %s", cfg.LogLevel)
	}
	if cfg.Device.Path != "/dev/input/event5" {
		t.Errorf("expected /dev/input/event5, got %s", cfg.Device.Path)
	}
	if cfg.Remap.Table != "homerow" {
		t.Errorf("expected homerow, got %s", cfg.Remap.Table)
	}
	if cfg.Timing.HoldThresholdMs != 220 {
		t.Errorf("expected 220, got %d", cfg.Timing.HoldThresholdMs)
	}
	if cfg.Startup.GrabDelayMs != 500 {
		t.Errorf("expected 500, got %d", cfg.Startup.GrabDelayMs)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.LogLevel = "warn"
	cfg.Remap.Table = "dvorak-ish"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}

	if loaded.LogLevel != "warn" {
		t.Errorf("expected log level warn, got %s", loaded.LogLevel)
	}
	if loaded.Remap.Table != "dvorak-ish" {
		t.Errorf("expected dvorak-ish, got %s", loaded.Remap.Table)
	}
	if loaded.Startup.GrabDelayMs != DefaultGrabDelayMs {
		t.Errorf("expected default grab delay preserved, got %d", loaded.Startup.GrabDelayMs)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "dir", "config.toml")

	cfg := Default()
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed to create nested dirs: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist at %s: %v", path, err)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[device]
path = "/dev/input/event3"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Device.Path != "/dev/input/event3" {
		t.Errorf("expected /dev/input/event3, got %s", cfg.Device.Path)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level preserved, got %s", cfg.LogLevel)
	}
	if cfg.Startup.GrabDelayMs != DefaultGrabDelayMs {
		t.Errorf("expected default grab delay preserved, got %d", cfg.Startup.GrabDelayMs)
	}
}
