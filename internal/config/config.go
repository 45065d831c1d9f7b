package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Mode selects the deletion backend.
type Mode string

const (
	// ModeTrash relocates paths to ~/.Trash (recoverable until emptied).
	ModeTrash Mode = "move-to-trash"
	// ModePermanent erases paths outright.
	ModePermanent Mode = "permanent-delete"
)

// Config is the optional user configuration. Everything has a working
// default; the file only exists for users who want to override it.
type Config struct {
	// Mode picks the deletion backend. Default: move-to-trash.
	Mode Mode `json:"mode"`

	// Protected paths are never resolved into a cleanup plan.
	Protected []string `json:"protected"`

	// Exclude removes category ids from the catalog for this user.
	Exclude []string `json:"exclude"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Mode: ModeTrash}
}

// Path returns the config file location under the XDG config directory.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "xcsweep", "config.json")
}

// Load reads the user configuration, falling back to defaults when the
// file does not exist. A malformed file is an error — silently ignoring a
// typo in "mode" could turn a trash run into a permanent one.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads configuration from an explicit path.
func LoadFrom(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Mode {
	case ModeTrash, ModePermanent:
		return nil
	case "":
		return errors.New("mode must not be empty")
	default:
		return fmt.Errorf("unrecognized mode %q (expected %q or %q)", c.Mode, ModeTrash, ModePermanent)
	}
}
