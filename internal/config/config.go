// Package config reads the optional ~/.config/smartpack/config.yaml file that
// supplies defaults for command-line flags.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/smartpack/internal/constants"
)

// EnvStore overrides the configured store location.
const EnvStore = "SMARTPACK_STORE"

type Config struct {
	// Store is a SQLite path, a .json path, or a postgres:// or redis:// URL.
	Store         string        `yaml:"store"`
	Debug         bool          `yaml:"debug"`
	ExportDir     string        `yaml:"export_dir"`
	AutosaveDelay time.Duration `yaml:"autosave_delay"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Store:         constants.DefaultConfigPath,
		ExportDir:     ".",
		AutosaveDelay: constants.AutosaveDelay,
	}
}

// Load reads path over the defaults and applies the environment override. A
// missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(ExpandPath(path))
	switch {
	case err == nil:
		defer f.Close()
		if err := decode(f, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return Default(), fmt.Errorf("failed to open config %s: %w", path, err)
	}

	if v := strings.TrimSpace(os.Getenv(EnvStore)); v != "" {
		cfg.Store = v
	}
	if cfg.Store == "" {
		cfg.Store = constants.DefaultConfigPath
	}
	if cfg.AutosaveDelay <= 0 {
		cfg.AutosaveDelay = constants.AutosaveDelay
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Write saves cfg to path, creating parent directories.
func Write(path string, cfg Config) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// Dir returns the directory holding smartpack's config, logs, and backups.
func Dir() string {
	return filepath.Dir(ExpandPath(constants.DefaultConfigFile))
}
