// Package config loads the optional drills.toml file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/aretw0/drills/pkg/adapters/fs"
	"github.com/aretw0/drills/pkg/core"
	"github.com/aretw0/drills/pkg/wordfreq"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "drills.toml"

// Config mirrors drills.toml.
type Config struct {
	Notes    NotesConfig    `toml:"notes"`
	WordFreq WordFreqConfig `toml:"wordfreq"`
}

// NotesConfig is the [notes] table: where the notes tool keeps its document
// and how it stamps dates.
type NotesConfig struct {
	File       string `toml:"file"`
	DateLayout string `toml:"date_layout"`
	ReadOnly   bool   `toml:"read_only"`
}

// WordFreqConfig is the [wordfreq] table.
type WordFreqConfig struct {
	Width int `toml:"width"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	var cfg Config
	applyDefaults(&cfg)
	return cfg
}

// Load reads path, fills unset values with defaults and validates the result.
// An empty path loads DefaultFile if it exists, and Default() otherwise.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	applyDefaults(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

// Validate checks values that defaults cannot repair.
func Validate(cfg Config) error {
	if cfg.WordFreq.Width < 0 {
		return fmt.Errorf("wordfreq.width must be positive, got %d", cfg.WordFreq.Width)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Notes.File == "" {
		cfg.Notes.File = fs.DefaultPath
	}
	if cfg.Notes.DateLayout == "" {
		cfg.Notes.DateLayout = core.DefaultDateLayout
	}
	if cfg.WordFreq.Width == 0 {
		cfg.WordFreq.Width = wordfreq.DefaultWidth
	}
}
