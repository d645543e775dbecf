// Package config loads engine configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/richtext/internal/engine/textbuf"
)

var (
	// ErrInvalidCapacity indicates a negative history capacity.
	ErrInvalidCapacity = errors.New("history capacity must not be negative")

	// ErrInvalidMaxSize indicates a document size limit that is negative
	// or beyond the engine's hard cap.
	ErrInvalidMaxSize = errors.New("max document size out of range")

	// ErrInvalidLogLevel indicates an unknown log level name.
	ErrInvalidLogLevel = errors.New("unknown log level")
)

// Config holds the tunable engine settings. Zero values mean "use the
// engine default".
type Config struct {
	History HistoryConfig `toml:"history"`
	Limits  LimitsConfig  `toml:"limits"`
	Log     LogConfig     `toml:"log"`
}

type HistoryConfig struct {
	// Capacity bounds the undo stack. Zero means the default of 100.
	Capacity int `toml:"capacity"`
}

type LimitsConfig struct {
	// MaxDocumentSize caps content length in runes. Zero means the
	// engine's built-in limit.
	MaxDocumentSize int `toml:"max_document_size"`
}

type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// Development switches to the human-readable console encoder.
	Development bool `toml:"development"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path and merges it over the defaults. A missing file is
// not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every setting against its allowed range.
func (c Config) Validate() error {
	if c.History.Capacity < 0 {
		return ErrInvalidCapacity
	}
	if c.Limits.MaxDocumentSize < 0 || c.Limits.MaxDocumentSize > textbuf.MaxDocumentSize {
		return ErrInvalidMaxSize
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level)
	}
	return nil
}
