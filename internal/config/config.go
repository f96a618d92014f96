// Package config loads and saves remapd's on-disk configuration using
// an atomic temp-file-plus-rename Save and a Default-if-missing Load.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DeviceConfig holds the default input device settings.
type DeviceConfig struct {
	Path string `toml:"path"`
}

// RemapConfig holds default remap-table selection.
type RemapConfig struct {
	Table string `toml:"table"`
}

// TimingConfig overrides the tap-toggle timing constants from spec §4.3.
// Zero values mean "use the compiled-in default."
type TimingConfig struct {
	HoldThresholdMs int `toml:"hold_threshold_ms"`
}

// StartupConfig holds startup behavior overrides.
type StartupConfig struct {
	GrabDelayMs int `toml:"grab_delay_ms"`
}

// Config is the top-level configuration.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Device   DeviceConfig   `toml:"device"`
	Remap    RemapConfig    `toml:"remap"`
	Timing   TimingConfig   `toml:"timing"`
	Startup  StartupConfig  `toml:"startup"`
}

// DefaultGrabDelayMs is how long remap sleeps before grabbing the device,
// to let the shell's own Enter keypress from launching the command drain
// out of the terminal first.
const DefaultGrabDelayMs = 300

// Default returns a Config populated with every default value.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Device:   DeviceConfig{Path: ""},
		Remap:    RemapConfig{Table: ""},
		Timing:   TimingConfig{HoldThresholdMs: 0},
		Startup:  StartupConfig{GrabDelayMs: DefaultGrabDelayMs},
	}
}

// DefaultPath returns ~/.config/remapd/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "remapd", "config.toml")
}

// Save writes cfg as TOML to path, creating parent directories as
// needed. The write is atomic: data lands in a temp file first, which is
// renamed into place only after a clean fsync, so a crash mid-write
// never corrupts an existing config.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".remapd-config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if err := toml.NewEncoder(tmp).Encode(cfg); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// Load reads the TOML config at path, returning Default() unmodified if
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
