package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/drills/pkg/core"
)

// DefaultPath is where the notes tool keeps its document, relative to the working directory.
const DefaultPath = "notes/notes.json"

// Repository implements core.Repository on top of a single file.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer
	format     string
}

// Config holds the configuration for the file repository.
type Config struct {
	Path        string
	ReadOnly    bool
	Logger      *slog.Logger
	Serializers map[string]Serializer // Extra or overriding serializers keyed by extension (e.g. ".json").
}

// NewRepository creates a new file-backed repository.
// The serializer is picked from the file extension; unknown extensions fall back to JSON.
func NewRepository(config Config) *Repository {
	if config.Path == "" {
		config.Path = DefaultPath
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	serializers := DefaultSerializers()
	for ext, s := range config.Serializers {
		serializers[strings.ToLower(ext)] = s
	}

	format := strings.ToLower(filepath.Ext(config.Path))
	s, ok := serializers[format]
	if !ok {
		config.Logger.Debug("Unknown notes extension, using JSON", "path", config.Path)
		format = ".json"
		s = serializers[format]
	}

	return &Repository{
		Path:       config.Path,
		config:     config,
		serializer: s,
		format:     format,
	}
}

// Load reads and parses the notes file.
//
// A missing or blank file yields no notes. A document that cannot be parsed
// returns an error wrapping core.ErrMalformed.
func (r *Repository) Load(ctx context.Context) ([]core.Note, error) {
	data, err := os.ReadFile(r.Path)
	if errors.Is(err, os.ErrNotExist) {
		r.config.Logger.Debug("Notes file not found", "path", r.Path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.Path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		r.config.Logger.Debug("Notes file is empty", "path", r.Path)
		return nil, nil
	}

	notes, err := r.serializer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}
	return notes, nil
}

// Store serializes notes and atomically replaces the file, creating parent directories.
func (r *Repository) Store(ctx context.Context, notes []core.Note) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	data, err := r.serializer.Encode(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize notes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	if err := writeFileAtomic(r.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	r.config.Logger.Debug("Notes written", "path", r.Path, "notes", len(notes), "bytes", len(data))
	return nil
}

var _ core.Repository = (*Repository)(nil)
