// Package config loads lvmaze.yaml: the logging block, the store block and
// the difficulty table. Every section is optional and falls back to its
// package default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmaze/level"
	"github.com/katalvlaran/lvmaze/logger"
	"github.com/katalvlaran/lvmaze/store"
)

// Environment overrides for the store block.
const (
	EnvDBDriver = "LVMAZE_DB_DRIVER"
	EnvDBPath   = "LVMAZE_DB_PATH"
)

// ErrInvalidConfig wraps parse and validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of lvmaze.yaml.
type Config struct {
	Logging logger.Config `yaml:"logging"`
	Store   store.Config  `yaml:"store"`
	Levels  level.Table   `yaml:"levels"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: logger.DefaultConfig(),
		Store:   store.DefaultConfig(),
		Levels:  level.Default(),
	}
}

// Load reads path over the defaults and applies environment overrides.
// A missing file yields the defaults; an empty path skips the file entirely.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := decode(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
			}
		}
	}

	cfg.Logging = cfg.Logging.ApplyEnv()
	if v := os.Getenv(EnvDBDriver); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Store.SQLitePath = v
	}

	cfg.Levels = cfg.Levels.Normalize()
	if err := cfg.Levels.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := store.NewDialect(cfg.Store.Driver); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Write renders cfg as YAML to w, e.g. to seed an editable lvmaze.yaml.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	return enc.Close()
}
